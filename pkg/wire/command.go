package wire

import (
	"strconv"
)

// Frame delimiters and the parameter separator.
const (
	FrameStart byte = '<'
	FrameEnd   byte = '>'
	Separator  byte = ','
)

// MnemonicLen is the exact length of a command mnemonic.
const MnemonicLen = 2

// MaxParams is the maximum number of parameters in one frame.
const MaxParams = 3

// MaxParamDigits bounds the digits of a single parameter.
const MaxParamDigits = 6

// Recognized mnemonics.
const (
	MnemonicPing        = "OK"
	MnemonicDriveWheels = "DW"
	MnemonicLeftWheel   = "LW"
	MnemonicRightWheel  = "RW"
	MnemonicRangingAuto = "UA"
	MnemonicRangingRead = "US"
	MnemonicExplore     = "XA"

	// Unsolicited notifications sent while explore mode is active.
	MnemonicObstacle  = "XO"
	MnemonicDirChange = "XC"
)

// Command is a completed, well-formed command received from the wire.
// Parameter slots beyond the ones present in the frame are zero.
type Command struct {
	Mnemonic string
	Params   [MaxParams]int
}

// Frame encodes a mnemonic and parameters as one wire frame.
func Frame(mnemonic string, params ...int) string {
	b := make([]byte, 0, 16)
	b = append(b, FrameStart)
	b = append(b, mnemonic...)
	for _, p := range params {
		b = append(b, Separator)
		b = strconv.AppendInt(b, int64(p), 10)
	}
	b = append(b, FrameEnd)
	return string(b)
}
