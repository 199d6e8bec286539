// Package sim provides a simulated rover: differential-drive
// kinematics inside a square arena with a forward-looking range finder.
package sim

import (
	"flag"
	"math"
	"time"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/rover"
)

// Config defines the simulated arena and robot.
type Config struct {
	ArenaSize  float64 // side (cm) of the square arena
	WheelBase  float64 // distance (cm) between the wheels
	SpeedScale float64 // ground speed (cm/s) per unit of wheel speed
}

var defaultConfig = Config{
	ArenaSize:  400,
	WheelBase:  12,
	SpeedScale: 0.12,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.ArenaSize, "arena-size", defaultConfig.ArenaSize, "Side (cm) of the square arena.")
	flag.Float64Var(&defaultConfig.WheelBase, "wheel-base", defaultConfig.WheelBase, "Distance (cm) between the wheels.")
	flag.Float64Var(&defaultConfig.SpeedScale, "speed-scale", defaultConfig.SpeedScale, "Ground speed (cm/s) per unit of wheel speed.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewWorld creates the simulated world with the robot centered.
func (c *Config) NewWorld() *World {
	return &World{
		conf: *c,
		x:    c.ArenaSize / 2,
		y:    c.ArenaSize / 2,
	}
}

// World is the simulated robot and its arena. It implements the motor
// and range finder contracts of the firmware core. All state is touched
// only from the control loop, so no locking is needed.
type World struct {
	conf Config

	x, y    float64 // cm
	heading float64 // radians
	left    int
	right   int
	last    time.Time
}

// SetMotor implements rover.MotorDriver.
func (w *World) SetMotor(side rover.Side, speed int) {
	if side == rover.Left {
		w.left = speed
	} else {
		w.right = speed
	}
}

// MeasureDistanceCM implements rover.RangeFinder.
func (w *World) MeasureDistanceCM() int {
	return int(math.Round(w.wallDistance()))
}

// Pose reports the current position (cm) and heading (radians).
func (w *World) Pose() (x, y, heading float64) {
	return w.x, w.y, w.heading
}

// Control implements Controller, integrating the pose once per loop
// iteration. Register the world before the firmware controller so the
// pose is current when the ranging sampler reads it.
func (w *World) Control(cc fx.ControlContext) error {
	now := cc.Time()
	if !w.last.IsZero() {
		w.step(now.Sub(w.last).Seconds())
	}
	w.last = now
	return nil
}

// AddToLoop implements LoopAdder.
func (w *World) AddToLoop(l *fx.Loop) {
	l.AddController(w)
}

// step advances the differential-drive pose by dt seconds.
func (w *World) step(dt float64) {
	vl := float64(w.left) * w.conf.SpeedScale
	vr := float64(w.right) * w.conf.SpeedScale
	v := (vl + vr) / 2
	omega := (vr - vl) / w.conf.WheelBase
	w.heading = normalizeAngle(w.heading + omega*dt)
	w.x = clampCoord(w.x+v*dt*math.Cos(w.heading), w.conf.ArenaSize)
	w.y = clampCoord(w.y+v*dt*math.Sin(w.heading), w.conf.ArenaSize)
}

// wallDistance casts a ray along the heading to the nearest wall.
func (w *World) wallDistance() float64 {
	d := rayToWall(w.x, math.Cos(w.heading), w.conf.ArenaSize)
	if dy := rayToWall(w.y, math.Sin(w.heading), w.conf.ArenaSize); dy < d {
		d = dy
	}
	if math.IsInf(d, 1) {
		d = w.conf.ArenaSize
	}
	return d
}

// rayToWall solves pos + t*dir = 0 or = size for the nearest t >= 0.
func rayToWall(pos, dir, size float64) float64 {
	switch {
	case dir > 0:
		return (size - pos) / dir
	case dir < 0:
		return -pos / dir
	}
	return math.Inf(1)
}

func clampCoord(v, size float64) float64 {
	if v < 0 {
		return 0
	}
	if v > size {
		return size
	}
	return v
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
