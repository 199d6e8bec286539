package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	require.Equal(t, "<OK>", Frame(MnemonicPing))
	require.Equal(t, "<DW,255,-255>", Frame(MnemonicDriveWheels, 255, -255))
	require.Equal(t, "<US,17>", Frame(MnemonicRangingRead, 17))
	require.Equal(t, "<XA,0>", Frame(MnemonicExplore, 0))
}

func TestFrameParsesBack(t *testing.T) {
	var p Parser
	cmds := feedAll(&p, Frame(MnemonicDriveWheels, -120, 120))
	require.Len(t, cmds, 1)
	require.Equal(t, Command{Mnemonic: MnemonicDriveWheels, Params: [MaxParams]int{-120, 120, 0}}, cmds[0])
}
