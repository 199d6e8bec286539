package mqtt

import (
	"context"
	"flag"
	"os"

	"github.com/denisbrodbeck/machineid"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	fx "github.com/robotalks/rover.go/pkg/framework"
)

// Config configures the MQTT bridge.
type Config struct {
	// BrokerURL specifies the MQTT broker to use,
	// e.g. mqtt://host:port/topic-prefix. Empty disables the bridge.
	BrokerURL string
	// DeviceID names the device in the topic layout.
	DeviceID string
}

var defaultConfig Config

func init() {
	defaultConfig.BrokerURL = os.Getenv("ROVER_MQTT_URL")
	if id, err := machineid.ID(); err == nil {
		defaultConfig.DeviceID = id
	} else {
		defaultConfig.DeviceID = "rover"
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.BrokerURL, "mqtt", defaultConfig.BrokerURL, "MQTT broker URL, empty disables the bridge.")
	flag.StringVar(&defaultConfig.DeviceID, "id", defaultConfig.DeviceID, "Device ID used in MQTT topics.")
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

// NewBridge creates the Bridge, or nil when no broker is configured.
func (c *Config) NewBridge() (*Bridge, error) {
	if c.BrokerURL == "" {
		return nil, nil
	}
	opts, prefix, err := ClientOptionsFromURL(c.BrokerURL)
	if err != nil {
		return nil, err
	}
	if opts.ClientID == "" {
		opts.SetClientID("rover:" + c.DeviceID)
	}
	b := &Bridge{
		DeviceID:    c.DeviceID,
		topicPrefix: prefix,
		recvCh:      make(chan byte, recvBufferSize),
	}
	opts.SetOnConnectHandler(b.onConnect)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		glog.Warningf("mqtt connection lost: %v", err)
	})
	b.client = paho.NewClient(opts)
	return b, nil
}

// recvBufferSize is the capacity of the command byte buffer. Whole
// frames arrive per broker message, so this bounds pending frames, not
// single commands.
const recvBufferSize = 1024

// Bridge is a second command source and event sink for the firmware
// core, implementing the same transport contract as the serial link.
type Bridge struct {
	DeviceID string

	client      paho.Client
	topicPrefix string
	recvCh      chan byte
}

func (b *Bridge) topic(suffix string) string {
	return b.topicPrefix + "rover/" + b.DeviceID + "/" + suffix
}

func (b *Bridge) onConnect(paho.Client) {
	glog.Infof("mqtt connected, device %q", b.DeviceID)
	b.client.Subscribe(b.topic("cmd"), 0, func(_ paho.Client, msg paho.Message) {
		for _, c := range msg.Payload() {
			select {
			case b.recvCh <- c:
			default:
				glog.V(2).Info("mqtt command buffer full, byte dropped")
			}
		}
	})
}

// Transmit implements rover.Transport, publishing the frame as an
// event.
func (b *Bridge) Transmit(line string) {
	b.client.Publish(b.topic("events"), 0, false, []byte(line))
}

// ReceiveByte implements rover.Transport.
func (b *Bridge) ReceiveByte() (byte, bool) {
	select {
	case c := <-b.recvCh:
		return c, true
	default:
		return 0, false
	}
}

// Run implements Runnable, keeping the broker connection alive until
// the context is canceled.
func (b *Bridge) Run(ctx context.Context) error {
	if token := b.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	<-ctx.Done()
	b.client.Disconnect(0)
	return ctx.Err()
}

// AddToLoop implements LoopAdder.
func (b *Bridge) AddToLoop(l *fx.Loop) {
	l.AddRunnable(b)
}
