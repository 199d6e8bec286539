package rover

import (
	"time"

	"github.com/robotalks/rover.go/pkg/wire"
)

// Explore behavior tuning: spin briefly toward a random direction,
// search for an open gap, drive until an obstacle or a timeout, then
// back up and start over.
const (
	// ObstacleThresholdCM separates "gap ahead" from "obstacle ahead"
	// on the filtered distance estimate.
	ObstacleThresholdCM = 25

	// TurnSpeed and BackupSpeed are fixed wheel speeds for the turning
	// and reversing phases.
	TurnSpeed   = 120
	BackupSpeed = 120

	// DriveSpeedMin and DriveSpeedMax bound the randomly chosen forward
	// speed of each drive run.
	DriveSpeedMin = 160
	DriveSpeedMax = 190

	turnHold   = 300 * time.Millisecond
	backupHold = 1200 * time.Millisecond

	gapSearchMinMS = 2000
	gapSearchMaxMS = 3000
	driveRunMinMS  = 3000
	driveRunMaxMS  = 5000
)

type explorePhase int

const (
	phaseChooseDirection explorePhase = iota
	phaseChooseDirectionWait
	phaseFindGap
	phaseDriveUntilObstacle
	phaseBackup
	phaseBackupWait
)

// exploreState holds the autonomous behavior state. While active is
// true, periodic ranging is forced on and manual drive commands are
// suppressed by the dispatcher.
type exploreState struct {
	active   bool
	phase    explorePhase
	deadline time.Time
	speed    int
}

// tickExplore advances the behavior one step, using the filtered
// distance estimate as feedback. The cycle has no terminal phase; it
// repeats until explore mode is deactivated externally.
func (c *Controller) tickExplore(now time.Time) {
	switch c.explore.phase {
	case phaseChooseDirection:
		dir := 1
		if c.Rand.Intn(2) == 0 {
			dir = -1
		}
		c.Motors.SetMotor(Left, dir*TurnSpeed)
		c.Motors.SetMotor(Right, -dir*TurnSpeed)
		c.explore.phase = phaseChooseDirectionWait
		c.explore.deadline = now.Add(turnHold)
	case phaseChooseDirectionWait:
		if !now.Before(c.explore.deadline) {
			c.explore.phase = phaseFindGap
			c.explore.deadline = now.Add(c.randDuration(gapSearchMinMS, gapSearchMaxMS))
		}
	case phaseFindGap:
		// keep turning from the previous phase until a gap opens up
		if c.ranging.filtered > ObstacleThresholdCM {
			c.stopMotors()
			c.explore.phase = phaseDriveUntilObstacle
			c.explore.deadline = now.Add(c.randDuration(driveRunMinMS, driveRunMaxMS))
			c.explore.speed = c.randBetween(DriveSpeedMin, DriveSpeedMax)
		} else if !now.Before(c.explore.deadline) {
			c.stopMotors()
			c.explore.phase = phaseChooseDirection
		}
	case phaseDriveUntilObstacle:
		if c.ranging.filtered <= ObstacleThresholdCM {
			c.stopMotors()
			c.Link.Transmit(wire.Frame(wire.MnemonicObstacle))
			c.explore.phase = phaseBackup
		} else if !now.Before(c.explore.deadline) {
			c.stopMotors()
			c.Link.Transmit(wire.Frame(wire.MnemonicDirChange))
			c.explore.phase = phaseChooseDirection
		} else {
			c.Motors.SetMotor(Left, c.explore.speed)
			c.Motors.SetMotor(Right, c.explore.speed)
		}
	case phaseBackup:
		c.Motors.SetMotor(Left, -BackupSpeed)
		c.Motors.SetMotor(Right, -BackupSpeed)
		c.explore.phase = phaseBackupWait
		c.explore.deadline = now.Add(backupHold)
	case phaseBackupWait:
		if !now.Before(c.explore.deadline) {
			c.stopMotors()
			c.explore.phase = phaseChooseDirection
		}
	}
}

func (c *Controller) randDuration(minMS, maxMS int) time.Duration {
	return time.Duration(c.randBetween(minMS, maxMS)) * time.Millisecond
}

// randBetween returns a uniform value in [min, max).
func (c *Controller) randBetween(min, max int) int {
	return min + c.Rand.Intn(max-min)
}
