package sh

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/rover.go/pkg/wire"
)

// Shell provides ishell backed interactive console over a rover link.
type Shell struct {
	Interactive bool

	Shell *ishell.Shell

	conn    io.ReadWriteCloser
	parser  wire.Parser
	replyCh chan reply
}

// reply is a solicited frame decoded from the link.
type reply struct {
	cmd wire.Command
	raw string
}

const (
	shellKey     = "$shell"
	replyTimeout = time.Second
)

var (
	// flags

	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&PingCmd,
		&DriveCmd,
		&LeftCmd,
		&RightCmd,
		&StopCmd,
		&RangeCmd,
		&SonarCmd,
		&ExploreCmd,
		&RawCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell over an established link.
func New(conn io.ReadWriteCloser) *Shell {
	s := &Shell{
		Interactive: !evalOnly,

		Shell:   ishell.New(),
		conn:    conn,
		replyCh: make(chan reply, 16),
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("rover > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	go s.readLoop()
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// readLoop decodes frames off the link. Unsolicited events are printed
// as they come, everything else is queued for the command in flight.
func (s *Shell) readLoop() {
	var raw []byte
	var buf [1]byte
	for {
		if _, err := s.conn.Read(buf[:]); err != nil {
			return
		}
		b := buf[0]
		if b == wire.FrameStart {
			raw = raw[:0]
		}
		raw = append(raw, b)
		cmd, ok := s.parser.Feed(b)
		if !ok {
			continue
		}
		switch cmd.Mnemonic {
		case wire.MnemonicObstacle:
			s.Shell.Println("! obstacle detected")
		case wire.MnemonicDirChange:
			s.Shell.Println("! changing direction")
		default:
			select {
			case s.replyCh <- reply{cmd: cmd, raw: string(raw)}:
			default:
			}
		}
	}
}

// do writes a frame and waits for the next solicited reply.
func (s *Shell) do(c *ishell.Context, frame string) (reply, bool) {
	// drop stale replies from earlier timeouts
	for {
		select {
		case <-s.replyCh:
			continue
		default:
		}
		break
	}
	if _, err := io.WriteString(s.conn, frame); err != nil {
		c.Err(err)
		return reply{}, false
	}
	select {
	case r := <-s.replyCh:
		return r, true
	case <-time.After(replyTimeout):
		c.Err(fmt.Errorf("reply timeout"))
		return reply{}, false
	}
}

func intArg(c *ishell.Context, n int) (int, error) {
	if n >= len(c.Args) {
		return 0, fmt.Errorf("argument %d expected", n+1)
	}
	v, err := strconv.Atoi(c.Args[n])
	if err != nil {
		return 0, fmt.Errorf("bad number %q", c.Args[n])
	}
	return v, nil
}

func onOffArg(c *ishell.Context) (int, error) {
	if len(c.Args) == 0 {
		return 1, nil
	}
	switch c.Args[0] {
	case "on", "1":
		return 1, nil
	case "off", "0":
		return 0, nil
	}
	return 0, fmt.Errorf("expected on or off, got %q", c.Args[0])
}

// doSimple sends a frame and prints the echoed reply.
func doSimple(c *ishell.Context, frame string) {
	s := ShellFrom(c)
	if r, ok := s.do(c, frame); ok {
		c.Println(r.raw)
	}
}

var (
	// PingCmd checks the link is alive.
	PingCmd = ishell.Cmd{
		Name:    "ping",
		Aliases: []string{"ok"},
		Help:    "",
		Func: func(c *ishell.Context) {
			doSimple(c, wire.Frame(wire.MnemonicPing))
		},
	}

	// DriveCmd sets both wheel speeds.
	DriveCmd = ishell.Cmd{
		Name:    "drive",
		Aliases: []string{"dw"},
		Help:    "LEFT RIGHT",
		Func: func(c *ishell.Context) {
			l, err := intArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			r, err := intArg(c, 1)
			if err != nil {
				c.Err(err)
				return
			}
			doSimple(c, wire.Frame(wire.MnemonicDriveWheels, l, r))
		},
	}

	// LeftCmd sets the left wheel speed.
	LeftCmd = ishell.Cmd{
		Name:    "left",
		Aliases: []string{"lw"},
		Help:    "SPEED",
		Func: func(c *ishell.Context) {
			v, err := intArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			doSimple(c, wire.Frame(wire.MnemonicLeftWheel, v))
		},
	}

	// RightCmd sets the right wheel speed.
	RightCmd = ishell.Cmd{
		Name:    "right",
		Aliases: []string{"rw"},
		Help:    "SPEED",
		Func: func(c *ishell.Context) {
			v, err := intArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			doSimple(c, wire.Frame(wire.MnemonicRightWheel, v))
		},
	}

	// StopCmd stops both wheels.
	StopCmd = ishell.Cmd{
		Name: "stop",
		Help: "",
		Func: func(c *ishell.Context) {
			doSimple(c, wire.Frame(wire.MnemonicDriveWheels, 0, 0))
		},
	}

	// RangeCmd toggles continuous ranging.
	RangeCmd = ishell.Cmd{
		Name:    "range",
		Aliases: []string{"ua"},
		Help:    "on|off",
		Func: func(c *ishell.Context) {
			v, err := onOffArg(c)
			if err != nil {
				c.Err(err)
				return
			}
			doSimple(c, wire.Frame(wire.MnemonicRangingAuto, v))
		},
	}

	// SonarCmd reads the current distance.
	SonarCmd = ishell.Cmd{
		Name:    "sonar",
		Aliases: []string{"us"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if r, ok := s.do(c, wire.Frame(wire.MnemonicRangingRead)); ok {
				c.Printf("%d cm\n", r.cmd.Params[0])
			}
		},
	}

	// ExploreCmd toggles autonomous exploration.
	ExploreCmd = ishell.Cmd{
		Name:    "explore",
		Aliases: []string{"xa"},
		Help:    "on|off",
		Func: func(c *ishell.Context) {
			v, err := onOffArg(c)
			if err != nil {
				c.Err(err)
				return
			}
			doSimple(c, wire.Frame(wire.MnemonicExplore, v))
		},
	}

	// RawCmd writes a frame verbatim.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "FRAME",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("frame expected"))
				return
			}
			doSimple(c, c.Args[0])
		},
	}
)

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}
