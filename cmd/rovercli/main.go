package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"io"
	"log"
	"net"

	"github.com/robotalks/rover.go/pkg/cli/sh"
	"github.com/robotalks/rover.go/pkg/link/serialport"
)

var connectAddr string

func init() {
	flag.StringVar(&connectAddr, "connect", connectAddr, "TCP address of a rover, overrides -serial.")
	serialport.SetupFlags()
}

func main() {
	flag.Parse()

	var conn io.ReadWriteCloser
	var err error
	if connectAddr != "" {
		conn, err = net.Dial("tcp", connectAddr)
	} else {
		conn, err = serialport.NewConfig().OpenPort()
	}
	if err != nil {
		log.Fatalln(err)
	}
	defer conn.Close()

	sh.New(conn).Run(flag.Args()...)
}
