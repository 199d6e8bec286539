// Package stream adapts any byte stream into the non-blocking
// transport the firmware core polls.
package stream

import (
	"context"
	"io"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/rover.go/pkg/framework"
)

// BufferSize is the capacity of the receive buffer. Bytes arriving
// while the buffer is full are dropped; the frame protocol
// resynchronizes on the next start delimiter.
const BufferSize = 256

// Transport pumps a byte stream into a buffer from a background reader
// so the control loop can poll one byte at a time without blocking.
type Transport struct {
	rwc io.ReadWriteCloser

	recvCh   chan byte
	sendLock sync.Mutex
}

// New creates a Transport over a byte stream.
func New(rwc io.ReadWriteCloser) *Transport {
	return &Transport{
		rwc:    rwc,
		recvCh: make(chan byte, BufferSize),
	}
}

// Transmit implements rover.Transport.
func (t *Transport) Transmit(line string) {
	t.sendLock.Lock()
	defer t.sendLock.Unlock()
	if _, err := io.WriteString(t.rwc, line); err != nil {
		glog.Errorf("transmit error: %v", err)
	}
}

// ReceiveByte implements rover.Transport.
func (t *Transport) ReceiveByte() (byte, bool) {
	select {
	case b := <-t.recvCh:
		return b, true
	default:
		return 0, false
	}
}

// Run implements Runnable, pumping the stream into the receive buffer
// until the context is canceled or the stream ends.
func (t *Transport) Run(ctx context.Context) error {
	return fx.RunWithContextCloser(ctx, t.rwc, func() error {
		buf := make([]byte, 1)
		for {
			n, err := t.rwc.Read(buf)
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			if n == 0 {
				continue
			}
			select {
			case t.recvCh <- buf[0]:
			default:
				glog.V(2).Info("receive buffer full, byte dropped")
			}
		}
	})
}

// AddToLoop implements LoopAdder.
func (t *Transport) AddToLoop(l *fx.Loop) {
	l.AddRunnable(t)
}
