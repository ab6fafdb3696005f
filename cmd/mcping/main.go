package main

import (
	"flag"
	"fmt"
	"log"

	mcping "github.com/realDragonium/mcping"
)

func main() {
	addr := flag.String("addr", "localhost", "the server address")
	port := flag.Uint("port", uint(mcping.DefaultPort), "the server port")
	protocol := flag.Int("protocol", mcping.DefaultProtocolVersion, "the protocol version number to send in the handshake")
	timeout := flag.Duration("timeout", mcping.DefaultDialTimeout, "dial and per packet io timeout")
	doPing := flag.Bool("ping", true, "whether to measure the round trip time too")
	flag.Parse()

	cfg := mcping.NewConnectionConfig(*addr).
		WithPort(uint16(*port)).
		WithProtocolVersion(*protocol).
		WithDialTimeout(*timeout).
		WithIODeadline(*timeout)

	conn, err := cfg.Connect()
	if err != nil {
		log.Fatalf("connecting: %v", err)
	}
	defer conn.Close()

	status, err := conn.Status()
	if err != nil {
		log.Fatalf("status query failed: %v", err)
	}

	fmt.Printf("version: %s (protocol %d)\n", status.Version.Name, status.Version.Protocol)
	fmt.Printf("description: %s\n", status.Description)
	fmt.Printf("%d of %d player(s) online\n", status.Players.Online, status.Players.Max)
	for _, player := range status.Players.Sample {
		fmt.Printf("  %s (%s)\n", player.Name, player.ID)
	}
	if status.Favicon != "" {
		fmt.Printf("favicon: %d bytes\n", len(status.Favicon))
	}

	if *doPing {
		latency, err := conn.Ping()
		if err != nil {
			log.Fatalf("ping failed: %v", err)
		}
		fmt.Printf("latency: %s\n", latency)
	}
}
