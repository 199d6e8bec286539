package link

import (
	"github.com/robotalks/rover.go/pkg/rover"
)

// Mux fans one controller out over several transports: transmitted
// frames go to every transport, received bytes are drained in transport
// order, earlier transports first. Sources deliver whole frames at a
// time in practice (a single serial peer, or a broker message carrying
// a complete frame), and the protocol's start delimiter resynchronizes
// the parser if an interleave ever garbles a frame.
type Mux struct {
	Transports []rover.Transport
}

// NewMux creates a Mux over the given transports.
func NewMux(transports ...rover.Transport) *Mux {
	return &Mux{Transports: transports}
}

// Add appends transports to the Mux.
func (m *Mux) Add(transports ...rover.Transport) *Mux {
	m.Transports = append(m.Transports, transports...)
	return m
}

// Transmit implements rover.Transport.
func (m *Mux) Transmit(line string) {
	for _, t := range m.Transports {
		t.Transmit(line)
	}
}

// ReceiveByte implements rover.Transport.
func (m *Mux) ReceiveByte() (byte, bool) {
	for _, t := range m.Transports {
		if b, ok := t.ReceiveByte(); ok {
			return b, true
		}
	}
	return 0, false
}
