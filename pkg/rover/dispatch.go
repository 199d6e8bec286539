package rover

import (
	"github.com/robotalks/rover.go/pkg/wire"
)

// dispatch applies one completed command. Side effects always land
// before the reply frame goes out, so a peer blocking on the reply is
// guaranteed the action already happened. Unknown mnemonics are dropped
// without a reply, and while explore mode is active every mnemonic
// except OK, US and XA is dropped so manual commands cannot fight the
// autonomous controller.
func (c *Controller) dispatch(cmd wire.Command) {
	switch cmd.Mnemonic {
	case wire.MnemonicPing:
		c.Link.Transmit(wire.Frame(wire.MnemonicPing))
		return
	case wire.MnemonicRangingRead:
		c.Link.Transmit(wire.Frame(wire.MnemonicRangingRead, c.readDistance()))
		return
	case wire.MnemonicExplore:
		on := cmd.Params[0] != 0
		c.setExplore(on)
		c.Link.Transmit(wire.Frame(wire.MnemonicExplore, onOff(on)))
		return
	}

	if c.explore.active {
		return
	}

	switch cmd.Mnemonic {
	case wire.MnemonicDriveWheels:
		l, r := clampSpeed(cmd.Params[0]), clampSpeed(cmd.Params[1])
		c.Motors.SetMotor(Left, l)
		c.Motors.SetMotor(Right, r)
		// the clamped values are echoed so a peer can detect clamping
		c.Link.Transmit(wire.Frame(wire.MnemonicDriveWheels, l, r))
	case wire.MnemonicLeftWheel:
		v := clampSpeed(cmd.Params[0])
		c.Motors.SetMotor(Left, v)
		c.Link.Transmit(wire.Frame(wire.MnemonicLeftWheel, v))
	case wire.MnemonicRightWheel:
		v := clampSpeed(cmd.Params[0])
		c.Motors.SetMotor(Right, v)
		c.Link.Transmit(wire.Frame(wire.MnemonicRightWheel, v))
	case wire.MnemonicRangingAuto:
		on := cmd.Params[0] != 0
		c.ranging.enabled = on
		c.Link.Transmit(wire.Frame(wire.MnemonicRangingAuto, onOff(on)))
	}
}

// setExplore toggles the autonomous explore mode. Turning it on forces
// periodic ranging on and hands the (stopped) motors to the explore
// machine; turning it off forces ranging off and stops everything.
func (c *Controller) setExplore(on bool) {
	c.stopMotors()
	if on {
		c.ranging.enabled = true
		c.explore = exploreState{active: true, phase: phaseChooseDirection}
	} else {
		c.ranging.enabled = false
		c.explore = exploreState{}
	}
}

func onOff(on bool) int {
	if on {
		return 1
	}
	return 0
}
