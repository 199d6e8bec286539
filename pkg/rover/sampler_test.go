package rover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilterRecurrence(t *testing.T) {
	c, _, ranger, _ := newTestController()
	c.ranging.enabled = true
	ranger.samples = []int{100, 80, 80, 60, 120, 90}

	var want float64
	now := t0
	for _, raw := range []int{100, 80, 80, 60, 120, 90} {
		c.tickRanging(now)
		want = filterKeep*want + filterTake*float64(raw)
		require.InDelta(t, want, c.ranging.filtered, 1e-9)
		now = now.Add(SampleInterval)
	}
	require.Equal(t, 6, ranger.polled)
}

func TestNoSampleBeforeDue(t *testing.T) {
	c, _, ranger, _ := newTestController()
	c.ranging.enabled = true
	c.tickRanging(t0)
	c.tickRanging(t0)
	c.tickRanging(t0.Add(SampleInterval - time.Millisecond))
	require.Equal(t, 1, ranger.polled)
	c.tickRanging(t0.Add(SampleInterval))
	require.Equal(t, 2, ranger.polled)
}

func TestScheduleAdvancesWhileDisabled(t *testing.T) {
	c, _, ranger, _ := newTestController()
	c.tickRanging(t0)
	require.Zero(t, ranger.polled)
	// the due time advanced even though no sample was taken, so
	// re-enabling does not cause an immediate catch-up sample
	c.ranging.enabled = true
	c.tickRanging(t0.Add(10 * time.Millisecond))
	require.Zero(t, ranger.polled)
	c.tickRanging(t0.Add(SampleInterval))
	require.Equal(t, 1, ranger.polled)
}

func TestFilteredUntouchedWhileDisabled(t *testing.T) {
	c, _, ranger, _ := newTestController()
	ranger.value = 200
	c.ranging.filtered = 33
	c.tickRanging(t0)
	c.tickRanging(t0.Add(SampleInterval))
	require.Equal(t, 33.0, c.ranging.filtered)
}
