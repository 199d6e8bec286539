package wire

// Parser incrementally decodes command frames one byte at a time.
// Malformed input never produces an error: the parser silently drops
// back to idle and waits for the next start delimiter.
type Parser struct {
	state    parseState
	mnemonic [MnemonicLen]byte
	mlen     int
	params   [MaxParams]int
	value    int
	digits   int
	negative bool
}

type parseState int

const (
	stateIdle     parseState = iota // waiting for start delimiter
	stateMnemonic                   // collecting the two-letter mnemonic
	stateParam1                     // collecting parameter 1
	stateParam2
	stateParam3
)

// Feed consumes one byte. ok is true exactly when the byte just closed
// a well-formed frame, in which case cmd carries the completed command.
func (p *Parser) Feed(b byte) (cmd Command, ok bool) {
	// A start delimiter resynchronizes from any state, including the
	// middle of an unfinished frame.
	if b == FrameStart {
		p.restart()
		return
	}
	switch p.state {
	case stateIdle:
		// discard
	case stateMnemonic:
		return p.feedMnemonic(b)
	default:
		return p.feedParam(b)
	}
	return
}

func (p *Parser) restart() {
	*p = Parser{state: stateMnemonic}
}

func (p *Parser) abort() {
	p.state = stateIdle
}

func (p *Parser) feedMnemonic(b byte) (Command, bool) {
	switch {
	case b >= 'A' && b <= 'Z' && p.mlen < MnemonicLen:
		p.mnemonic[p.mlen] = b
		p.mlen++
	case b == Separator && p.mlen == MnemonicLen:
		p.state = stateParam1
	case b == FrameEnd && p.mlen == MnemonicLen:
		return p.complete(), true
	default:
		p.abort()
	}
	return Command{}, false
}

func (p *Parser) feedParam(b byte) (Command, bool) {
	switch {
	case b >= '0' && b <= '9':
		if p.digits >= MaxParamDigits {
			p.abort()
			break
		}
		p.value = p.value*10 + int(b-'0')
		p.digits++
	case b == '-' && p.digits == 0 && !p.negative:
		// a sign is only valid as the very first character of a parameter
		p.negative = true
	case b == Separator:
		if p.state == stateParam3 {
			// the protocol caps a frame at 3 parameters
			p.abort()
			break
		}
		p.closeParam()
		p.state++
	case b == FrameEnd:
		p.closeParam()
		return p.complete(), true
	default:
		p.abort()
	}
	return Command{}, false
}

// closeParam applies the sign exactly once and stores the finished
// parameter in its slot.
func (p *Parser) closeParam() {
	if p.negative {
		p.value = -p.value
	}
	p.params[int(p.state-stateParam1)] = p.value
	p.value, p.digits, p.negative = 0, 0, false
}

func (p *Parser) complete() Command {
	cmd := Command{Mnemonic: string(p.mnemonic[:]), Params: p.params}
	p.state = stateIdle
	return cmd
}
