package rover

import (
	"time"
)

// motorRec records motor targets and every actuation call.
type motorRec struct {
	left, right int
	calls       []motorCall
}

type motorCall struct {
	side  Side
	speed int
}

func (m *motorRec) SetMotor(side Side, speed int) {
	if side == Left {
		m.left = speed
	} else {
		m.right = speed
	}
	m.calls = append(m.calls, motorCall{side, speed})
}

// rangerStub replays scripted raw samples, falling back to a fixed
// value when the script runs out.
type rangerStub struct {
	samples []int
	value   int
	polled  int
}

func (r *rangerStub) MeasureDistanceCM() int {
	r.polled++
	if len(r.samples) > 0 {
		v := r.samples[0]
		r.samples = r.samples[1:]
		return v
	}
	return r.value
}

// linkRec is a scriptable transport: bytes pushed with push are served
// one at a time, transmitted frames are recorded.
type linkRec struct {
	in     []byte
	sent   []string
	onSend func()
}

func (l *linkRec) Transmit(line string) {
	if l.onSend != nil {
		l.onSend()
	}
	l.sent = append(l.sent, line)
}

func (l *linkRec) ReceiveByte() (byte, bool) {
	if len(l.in) == 0 {
		return 0, false
	}
	b := l.in[0]
	l.in = l.in[1:]
	return b, true
}

func (l *linkRec) push(frame string) {
	l.in = append(l.in, frame...)
}

// randStub replays scripted Intn results.
type randStub struct {
	vals []int
}

func (r *randStub) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

func newTestController() (*Controller, *motorRec, *rangerStub, *linkRec) {
	motors, ranger, link := &motorRec{}, &rangerStub{}, &linkRec{}
	c := New(motors, ranger, link)
	c.Rand = &randStub{}
	return c, motors, ranger, link
}

// runFrame feeds a whole frame through Tick, one byte per iteration.
func runFrame(c *Controller, link *linkRec, now time.Time, frame string) {
	link.push(frame)
	for len(link.in) > 0 {
		c.Tick(now)
	}
}
