package rover

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBootAnnounce(t *testing.T) {
	c, _, _, link := newTestController()
	c.Boot()
	require.Equal(t, []string{"<OK>"}, link.sent)
}

func TestTickConsumesOneBytePerIteration(t *testing.T) {
	c, _, _, link := newTestController()
	link.push("<OK>")
	c.Tick(t0)
	c.Tick(t0)
	c.Tick(t0)
	require.Empty(t, link.sent)
	c.Tick(t0)
	require.Equal(t, []string{"<OK>"}, link.sent)
}

func TestExploreActivationDeferredOneIteration(t *testing.T) {
	c, motors, _, link := newTestController()
	runFrame(c, link, t0, "<XA,1>")
	// activation stopped the motors but the explore machine has not
	// run yet within the activating iteration
	require.True(t, c.explore.active)
	require.Equal(t, phaseChooseDirection, c.explore.phase)
	require.Equal(t, []motorCall{{Left, 0}, {Right, 0}}, motors.calls)

	c.Tick(t0)
	require.Equal(t, phaseChooseDirectionWait, c.explore.phase)
}

type fakeControlContext struct {
	now       time.Time
	triggered bool
}

func (f *fakeControlContext) Context() context.Context { return context.Background() }
func (f *fakeControlContext) Time() time.Time          { return f.now }
func (f *fakeControlContext) TriggerNext()             { f.triggered = true }

func TestControlTriggersNextWhileBusy(t *testing.T) {
	c, _, _, link := newTestController()
	link.push("<OK>")

	cc := &fakeControlContext{now: t0}
	require.NoError(t, c.Control(cc))
	require.True(t, cc.triggered)

	for len(link.in) > 0 {
		require.NoError(t, c.Control(cc))
	}
	cc.triggered = false
	require.NoError(t, c.Control(cc))
	require.False(t, cc.triggered)
	require.Equal(t, []string{"<OK>"}, link.sent)
}
