package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/link"
	"github.com/robotalks/rover.go/pkg/link/tcp"
	"github.com/robotalks/rover.go/pkg/rover"
	"github.com/robotalks/rover.go/pkg/sim"
	"github.com/robotalks/rover.go/pkg/telemetry/mqtt"
)

var listenAddr = ":9120"

func init() {
	flag.StringVar(&listenAddr, "listen", listenAddr, "TCP address accepting control connections.")
	sim.SetupFlags()
	mqtt.SetupFlags()
}

func main() {
	flag.Parse()

	world := sim.NewConfig().NewWorld()
	server := tcp.NewServer(listenAddr)
	mux := link.NewMux(server)

	bridge, err := mqtt.NewConfig().NewBridge()
	if err != nil {
		log.Fatalln(err)
	}

	ctl := rover.New(world, world, mux)

	loop := fx.NewLoop().Add(world, server, ctl)
	if bridge != nil {
		mux.Add(bridge)
		loop.Add(bridge)
	}

	ctl.Boot()
	loop.RunOrFail()
}
