package link

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	in   []byte
	sent []string
}

func (f *fakeTransport) Transmit(line string) {
	f.sent = append(f.sent, line)
}

func (f *fakeTransport) ReceiveByte() (byte, bool) {
	if len(f.in) == 0 {
		return 0, false
	}
	b := f.in[0]
	f.in = f.in[1:]
	return b, true
}

func TestMuxTransmitFanOut(t *testing.T) {
	a, b := &fakeTransport{}, &fakeTransport{}
	m := NewMux(a).Add(b)
	m.Transmit("<OK>")
	require.Equal(t, []string{"<OK>"}, a.sent)
	require.Equal(t, []string{"<OK>"}, b.sent)
}

func TestMuxReceiveOrder(t *testing.T) {
	a, b := &fakeTransport{in: []byte("A")}, &fakeTransport{in: []byte("B")}
	m := NewMux(a, b)

	// earlier transports drain first
	c, ok := m.ReceiveByte()
	require.True(t, ok)
	require.Equal(t, byte('A'), c)
	c, ok = m.ReceiveByte()
	require.True(t, ok)
	require.Equal(t, byte('B'), c)
	_, ok = m.ReceiveByte()
	require.False(t, ok)
}

func TestMuxEmpty(t *testing.T) {
	m := NewMux()
	m.Transmit("<OK>")
	_, ok := m.ReceiveByte()
	require.False(t, ok)
}
