package stream

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTransportReceive(t *testing.T) {
	peer, end := net.Pipe()
	tr := New(end)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tr.Run(ctx)

	go peer.Write([]byte("<OK>"))

	var got []byte
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 4 && time.Now().Before(deadline) {
		if b, ok := tr.ReceiveByte(); ok {
			got = append(got, b)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	require.Equal(t, "<OK>", string(got))
}

func TestTransportTransmit(t *testing.T) {
	peer, end := net.Pipe()
	tr := New(end)
	defer peer.Close()
	defer end.Close()

	go tr.Transmit("<US,17>")

	buf := make([]byte, 7)
	peer.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err := io.ReadFull(peer, buf)
	require.NoError(t, err)
	require.Equal(t, "<US,17>", string(buf))
}

func TestTransportEmptyPoll(t *testing.T) {
	_, end := net.Pipe()
	tr := New(end)
	_, ok := tr.ReceiveByte()
	require.False(t, ok)
}

func TestTransportRunStopsOnCancel(t *testing.T) {
	_, end := net.Pipe()
	tr := New(end)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- tr.Run(ctx) }()
	cancel()
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
