package mcping

import (
	"fmt"
	"net"
	"time"

	"github.com/realDragonium/mcping/mc"
)

type ConnectionState byte

const (
	StateDisconnected ConnectionState = iota
	StateHandshaking
	StateAwaitingStatus
	StateStatusReceived
	StateAwaitingPong
	StatePongReceived
)

func (state ConnectionState) String() string {
	var text string
	switch state {
	case StateDisconnected:
		text = "Disconnected"
	case StateHandshaking:
		text = "Handshaking"
	case StateAwaitingStatus:
		text = "AwaitingStatus"
	case StateStatusReceived:
		text = "StatusReceived"
	case StateAwaitingPong:
		text = "AwaitingPong"
	case StatePongReceived:
		text = "PongReceived"
	}
	return text
}

// Connection owns one open socket and walks it through the server
// list ping exchange. It is not safe for concurrent use; open more
// Connections instead. Once a call fails the connection is stuck in
// an intermediate state on purpose, framing can no longer be trusted
// so the caller has to reconnect.
type Connection struct {
	netConn net.Conn
	conn    mc.McConn
	state   ConnectionState

	address         string
	port            uint16
	protocolVersion int
	ioDeadline      time.Duration
}

func (c *Connection) State() ConnectionState {
	return c.state
}

// Status performs the handshake/request/response exchange and
// returns the decoded server status. Repeating the call on the same
// connection is allowed, the protocol permits multiple status
// requests on one socket.
func (c *Connection) Status() (ServerStatus, error) {
	if c.state != StateHandshaking && c.state != StateStatusReceived {
		return ServerStatus{}, fmt.Errorf("%w: status needs %v or %v, connection is %v",
			ErrInvalidConnState, StateHandshaking, StateStatusReceived, c.state)
	}
	defer c.clearDeadline()

	handshake := mc.ServerBoundHandshake{
		ProtocolVersion: c.protocolVersion,
		ServerAddress:   c.address,
		ServerPort:      c.port,
		NextState:       mc.StatusState,
	}

	// Handshake and request are pipelined, the server only answers
	// after the request anyway.
	c.setDeadline()
	if err := c.conn.WritePacket(handshake.Marshal()); err != nil {
		return ServerStatus{}, fmt.Errorf("writing handshake packet: %w", err)
	}
	if err := c.conn.WritePacket(mc.ServerBoundRequest{}.Marshal()); err != nil {
		return ServerStatus{}, fmt.Errorf("writing status request packet: %w", err)
	}
	c.state = StateAwaitingStatus

	pk, err := c.conn.ReadPacket()
	if err != nil {
		return ServerStatus{}, fmt.Errorf("reading status response packet: %w", err)
	}
	response, err := mc.UnmarshalClientBoundResponse(pk)
	if err != nil {
		return ServerStatus{}, err
	}

	status, err := UnmarshalServerStatus([]byte(response.JSONResponse))
	if err != nil {
		return ServerStatus{}, err
	}

	c.state = StateStatusReceived
	return status, nil
}

// Ping measures the round trip to the server. Only valid once a
// status response has been received.
func (c *Connection) Ping() (time.Duration, error) {
	if c.state != StateStatusReceived && c.state != StatePongReceived {
		return 0, fmt.Errorf("%w: ping needs %v, connection is %v",
			ErrInvalidConnState, StateStatusReceived, c.state)
	}
	defer c.clearDeadline()

	ping := mc.NewServerBoundPing()
	start := time.Now()

	c.setDeadline()
	if err := c.conn.WritePacket(ping.Marshal()); err != nil {
		return 0, fmt.Errorf("writing ping packet: %w", err)
	}
	c.state = StateAwaitingPong

	pk, err := c.conn.ReadPacket()
	if err != nil {
		return 0, fmt.Errorf("reading pong packet: %w", err)
	}
	pong, err := mc.UnmarshalClientBoundPong(pk)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	if pong.Payload != ping.Payload {
		return 0, fmt.Errorf("%w: sent %d, received %d", ErrPingMismatch, ping.Payload, pong.Payload)
	}

	c.state = StatePongReceived
	return elapsed, nil
}

// Close shuts the socket down. There is no goodbye packet in this
// part of the protocol, closing the transport is all there is.
func (c *Connection) Close() error {
	c.state = StateDisconnected
	return c.netConn.Close()
}

func (c *Connection) setDeadline() {
	if c.ioDeadline > 0 {
		c.netConn.SetDeadline(time.Now().Add(c.ioDeadline))
	}
}

func (c *Connection) clearDeadline() {
	if c.ioDeadline > 0 {
		c.netConn.SetDeadline(time.Time{})
	}
}
