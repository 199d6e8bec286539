package rover

// Side identifies one wheel of the differential drive.
type Side int

// Wheel sides.
const (
	Left Side = iota
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SpeedLimit bounds the signed wheel speed accepted by motor drivers.
const SpeedLimit = 255

// MotorDriver actuates one wheel. The speed is signed and already
// clamped into [-SpeedLimit, SpeedLimit] by the caller.
type MotorDriver interface {
	SetMotor(side Side, speed int)
}

// RangeFinder takes one raw distance sample in whole centimeters.
// The call may block for the duration of the measurement pulse, bounded
// by the hardware timeout; it must not fail, returning a best-effort or
// sentinel value instead.
type RangeFinder interface {
	MeasureDistanceCM() int
}

// Transport carries frames between the controller and its peer.
// ReceiveByte must never block: it reports false when no byte is
// pending. Transmit is best-effort; delivery failures are invisible to
// the firmware core.
type Transport interface {
	Transmit(line string)
	ReceiveByte() (byte, bool)
}

// Rand is the source of the explore machine's randomized choices,
// injectable so tests can replay deterministic sequences.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// clampSpeed constrains a requested wheel speed into the actuator range.
func clampSpeed(v int) int {
	if v > SpeedLimit {
		return SpeedLimit
	}
	if v < -SpeedLimit {
		return -SpeedLimit
	}
	return v
}
