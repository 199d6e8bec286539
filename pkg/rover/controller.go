package rover

import (
	"math/rand"
	"time"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/wire"
)

// Controller is the firmware core. It owns all process state and
// advances it from a single cooperative loop; nothing here blocks
// except the raw distance measurement, which is bounded by the range
// finder itself.
type Controller struct {
	Motors MotorDriver
	Ranger RangeFinder
	Link   Transport
	Rand   Rand

	parser   wire.Parser
	ranging  rangingState
	explore  exploreState
	consumed bool
}

// New creates a Controller with a time-seeded random source.
func New(motors MotorDriver, ranger RangeFinder, link Transport) *Controller {
	return &Controller{
		Motors: motors,
		Ranger: ranger,
		Link:   link,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Boot announces the controller on the link. Call it once before the
// first Tick.
func (c *Controller) Boot() {
	c.Link.Transmit(wire.Frame(wire.MnemonicPing))
}

// Tick advances one control iteration in fixed order: ranging sample if
// due, at most one input byte, dispatch of a completed command, explore
// machine if active. A command that just activated explore mode hands
// the motors over starting with the next iteration.
func (c *Controller) Tick(now time.Time) {
	c.tickRanging(now)
	wasActive := c.explore.active
	if b, ok := c.Link.ReceiveByte(); ok {
		c.consumed = true
		if cmd, done := c.parser.Feed(b); done {
			c.dispatch(cmd)
		}
	} else {
		c.consumed = false
	}
	if wasActive && c.explore.active {
		c.tickExplore(now)
	}
}

// Control implements Controller, requesting an immediate next iteration
// while input bytes keep arriving so frames drain at one byte per
// iteration without waiting out the loop interval.
func (c *Controller) Control(cc fx.ControlContext) error {
	c.Tick(cc.Time())
	if c.consumed {
		cc.TriggerNext()
	}
	return nil
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.AddController(c)
}

func (c *Controller) stopMotors() {
	c.Motors.SetMotor(Left, 0)
	c.Motors.SetMotor(Right, 0)
}
