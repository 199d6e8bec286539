// Package serialport opens the serial device carrying the control link.
package serialport

import (
	"flag"
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/robotalks/rover.go/pkg/link/stream"
)

// Config selects the serial device of the control link.
type Config struct {
	Device string
	Baud   int
}

var defaultConfig = Config{
	Baud: 115200,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "serial", defaultConfig.Device, "Serial device of the control link.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate of the control link.")
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

// OpenPort opens the configured serial device as a raw byte stream.
func (c *Config) OpenPort() (io.ReadWriteCloser, error) {
	if c.Device == "" {
		return nil, fmt.Errorf("serial device must be specified")
	}
	port, err := serial.Open(c.Device, &serial.Mode{BaudRate: c.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", c.Device, err)
	}
	return port, nil
}

// Open opens the configured device wrapped as a frame transport.
func (c *Config) Open() (*stream.Transport, error) {
	port, err := c.OpenPort()
	if err != nil {
		return nil, err
	}
	return stream.New(port), nil
}
