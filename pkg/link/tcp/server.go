// Package tcp exposes the control link on a TCP listener, mainly for
// the simulated rover.
package tcp

import (
	"context"
	"net"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/link/stream"
)

// Server accepts one control connection at a time and exposes it as a
// transport. While no client is connected, transmitted frames are
// dropped and no bytes arrive.
type Server struct {
	Addr string

	lock    sync.RWMutex
	current *stream.Transport
}

// NewServer creates a Server.
func NewServer(addr string) *Server {
	return &Server{Addr: addr}
}

// Transmit implements rover.Transport.
func (s *Server) Transmit(line string) {
	if t := s.transport(); t != nil {
		t.Transmit(line)
	}
}

// ReceiveByte implements rover.Transport.
func (s *Server) ReceiveByte() (byte, bool) {
	if t := s.transport(); t != nil {
		return t.ReceiveByte()
	}
	return 0, false
}

func (s *Server) transport() *stream.Transport {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.current
}

// Run implements Runnable, serving connections until the context is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("control link listening on %s", ln.Addr())
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			glog.Infof("control link connected: %s", conn.RemoteAddr())
			t := stream.New(conn)
			s.lock.Lock()
			s.current = t
			s.lock.Unlock()
			if err := t.Run(ctx); err != nil && err != context.Canceled {
				glog.Warningf("control link lost: %v", err)
			}
			s.lock.Lock()
			if s.current == t {
				s.current = nil
			}
			s.lock.Unlock()
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	})
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(l *fx.Loop) {
	l.AddRunnable(s)
}
