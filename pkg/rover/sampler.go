package rover

import (
	"math"
	"time"
)

// SampleInterval is the cadence of the periodic ranging sampler.
const SampleInterval = 50 * time.Millisecond

// Exponential filter weights: on every periodic sample the estimate
// follows filtered = filterKeep*filtered + filterTake*raw.
const (
	filterKeep = 0.9
	filterTake = 0.1
)

// rangingState holds the periodic sampler state. filtered is written
// only by tickRanging and is stale whenever enabled is false.
type rangingState struct {
	enabled  bool
	filtered float64
	sampleAt time.Time
}

// tickRanging advances the sampler if a sample is due. The schedule
// advances whether or not ranging is enabled, so re-enabling never
// causes a catch-up burst.
func (c *Controller) tickRanging(now time.Time) {
	if now.Before(c.ranging.sampleAt) {
		return
	}
	c.ranging.sampleAt = now.Add(SampleInterval)
	if !c.ranging.enabled {
		return
	}
	raw := c.Ranger.MeasureDistanceCM()
	c.ranging.filtered = filterKeep*c.ranging.filtered + filterTake*float64(raw)
}

// readDistance returns the filtered estimate when periodic ranging is
// running, else one fresh raw sample. It never waits for the periodic
// sampler, and a stale filtered value is never reported.
func (c *Controller) readDistance() int {
	if c.ranging.enabled {
		return int(math.Round(c.ranging.filtered))
	}
	return c.Ranger.MeasureDistanceCM()
}
