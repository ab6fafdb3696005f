package module

import (
	"time"

	mcping "github.com/realDragonium/mcping"
)

type ServerState byte

const (
	Unknown ServerState = iota
	Online
	Offline
)

func (state ServerState) String() string {
	var text string
	switch state {
	case Unknown:
		text = "Unknown"
	case Online:
		text = "Online"
	case Offline:
		text = "Offline"
	}
	return text
}

type StateAgent interface {
	State() ServerState
}

// NewMcServerState probes whether a server accepts tcp connections
// at all, no packets are exchanged. The result is cached for the
// cooldown so callers can ask as often as they like.
func NewMcServerState(cooldown time.Duration, connCreator mcping.ConnectionCreator) StateAgent {
	return &mcServerState{
		state:       Unknown,
		cooldown:    cooldown,
		connCreator: connCreator,
		startTime:   time.Time{},
	}
}

type mcServerState struct {
	state       ServerState
	cooldown    time.Duration
	startTime   time.Time
	connCreator mcping.ConnectionCreator
}

func (server *mcServerState) State() ServerState {
	if time.Since(server.startTime) <= server.cooldown {
		return server.state
	}
	server.startTime = time.Now()
	connFunc := server.connCreator.Conn()
	conn, err := connFunc()
	if err != nil {
		server.state = Offline
	} else {
		server.state = Online
		conn.Close()
	}
	return server.state
}

type AlwaysOnlineState struct{}

func (agent AlwaysOnlineState) State() ServerState {
	return Online
}

type AlwaysOfflineState struct{}

func (agent AlwaysOfflineState) State() ServerState {
	return Offline
}
