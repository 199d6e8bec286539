package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func feedAll(p *Parser, in string) (cmds []Command) {
	for i := 0; i < len(in); i++ {
		if cmd, ok := p.Feed(in[i]); ok {
			cmds = append(cmds, cmd)
		}
	}
	return
}

func TestParserValidFrames(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		cmd  Command
	}{
		{"no params", "<OK>", Command{Mnemonic: "OK"}},
		{"one param", "<LW,80>", Command{Mnemonic: "LW", Params: [MaxParams]int{80, 0, 0}}},
		{"two params", "<DW,100,-100>", Command{Mnemonic: "DW", Params: [MaxParams]int{100, -100, 0}}},
		{"three params", "<AB,1,2,3>", Command{Mnemonic: "AB", Params: [MaxParams]int{1, 2, 3}}},
		{"negative", "<LW,-255>", Command{Mnemonic: "LW", Params: [MaxParams]int{-255, 0, 0}}},
		{"zero", "<UA,0>", Command{Mnemonic: "UA", Params: [MaxParams]int{0, 0, 0}}},
		{"six digits", "<LW,123456>", Command{Mnemonic: "LW", Params: [MaxParams]int{123456, 0, 0}}},
		{"negative six digits", "<LW,-654321>", Command{Mnemonic: "LW", Params: [MaxParams]int{-654321, 0, 0}}},
		{"leading zeros", "<LW,007>", Command{Mnemonic: "LW", Params: [MaxParams]int{7, 0, 0}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Parser
			cmds := feedAll(&p, tc.in)
			require.Len(t, cmds, 1)
			require.Equal(t, tc.cmd, cmds[0])
			// the parser is idle again and accepts a fresh frame
			cmds = feedAll(&p, "<OK>")
			require.Len(t, cmds, 1)
			require.Equal(t, Command{Mnemonic: "OK"}, cmds[0])
		})
	}
}

func TestParserMalformedFrames(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"mnemonic too short", "<A>"},
		{"mnemonic too long", "<ABC>"},
		{"lowercase mnemonic", "<ok>"},
		{"separator after one letter", "<A,1>"},
		{"missing end delimiter", "<DW,100,100"},
		{"non-digit in param", "<DW,1a0>"},
		{"seven digits", "<LW,1234567>"},
		{"sign inside param", "<LW,1-2>"},
		{"double sign", "<LW,--1>"},
		{"fourth param", "<AB,1,2,3,4>"},
		{"bare end delimiter", ">"},
		{"garbage outside frame", "hello"},
		{"space in frame", "<DW, 1>"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Parser
			require.Empty(t, feedAll(&p, tc.in))
			// a valid frame afterwards still parses (self-resynchronization)
			cmds := feedAll(&p, "<DW,1,2>")
			require.Len(t, cmds, 1)
			require.Equal(t, Command{Mnemonic: "DW", Params: [MaxParams]int{1, 2, 0}}, cmds[0])
		})
	}
}

func TestParserRestartMidFrame(t *testing.T) {
	var p Parser
	// a fresh start delimiter abandons the unfinished frame
	cmds := feedAll(&p, "<DW,100<OK>")
	require.Len(t, cmds, 1)
	require.Equal(t, Command{Mnemonic: "OK"}, cmds[0])

	cmds = feedAll(&p, "<DW,1<DW,5,6>")
	require.Len(t, cmds, 1)
	require.Equal(t, Command{Mnemonic: "DW", Params: [MaxParams]int{5, 6, 0}}, cmds[0])
}

func TestParserIdleIgnoresNoise(t *testing.T) {
	var p Parser
	require.Empty(t, feedAll(&p, ">>,,12AB-\x00\xff"))
	cmds := feedAll(&p, "<US>")
	require.Len(t, cmds, 1)
	require.Equal(t, Command{Mnemonic: "US"}, cmds[0])
}

func TestParserBackToBackFrames(t *testing.T) {
	var p Parser
	cmds := feedAll(&p, "<LW,10><RW,-20><OK>")
	require.Len(t, cmds, 3)
	require.Equal(t, Command{Mnemonic: "LW", Params: [MaxParams]int{10, 0, 0}}, cmds[0])
	require.Equal(t, Command{Mnemonic: "RW", Params: [MaxParams]int{-20, 0, 0}}, cmds[1])
	require.Equal(t, Command{Mnemonic: "OK"}, cmds[2])
}
