package mcping

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/realDragonium/mcping/mc"
)

const (
	// DefaultPort is the port minecraft servers listen on unless
	// told otherwise.
	DefaultPort uint16 = 25565

	// DefaultProtocolVersion is the protocol version sent in the
	// handshake when the caller doesnt pick one. Status queries work
	// against any modern server regardless of this number.
	DefaultProtocolVersion = 578

	// DefaultDialTimeout bounds the tcp connect, not the exchange
	// afterwards.
	DefaultDialTimeout = 5 * time.Second
)

// ConnectionConfig collects everything needed to open a status
// connection. Build one with NewConnectionConfig, tweak it with the
// With* methods and call Connect.
type ConnectionConfig struct {
	address         string
	port            uint16
	protocolVersion int
	dialTimeout     time.Duration
	ioDeadline      time.Duration
	connCreator     ConnectionCreator
}

func NewConnectionConfig(address string) *ConnectionConfig {
	return &ConnectionConfig{
		address:         address,
		port:            DefaultPort,
		protocolVersion: DefaultProtocolVersion,
		dialTimeout:     DefaultDialTimeout,
	}
}

func (cfg *ConnectionConfig) WithPort(port uint16) *ConnectionConfig {
	cfg.port = port
	return cfg
}

func (cfg *ConnectionConfig) WithProtocolVersion(version int) *ConnectionConfig {
	cfg.protocolVersion = version
	return cfg
}

func (cfg *ConnectionConfig) WithDialTimeout(timeout time.Duration) *ConnectionConfig {
	cfg.dialTimeout = timeout
	return cfg
}

// WithIODeadline puts a deadline on every single read and write on
// the socket. Without one a dead peer can stall a call forever.
func (cfg *ConnectionConfig) WithIODeadline(deadline time.Duration) *ConnectionConfig {
	cfg.ioDeadline = deadline
	return cfg
}

// WithConnCreator replaces the default tcp dialer, for callers that
// need to decorate the connection (PROXY protocol, socks, tests).
func (cfg *ConnectionConfig) WithConnCreator(creator ConnectionCreator) *ConnectionConfig {
	cfg.connCreator = creator
	return cfg
}

func (cfg *ConnectionConfig) Addr() string {
	return net.JoinHostPort(cfg.address, strconv.Itoa(int(cfg.port)))
}

// Connect opens the tcp connection and returns a Connection in the
// handshaking state. It never retries, that choice belongs to the
// caller.
func (cfg *ConnectionConfig) Connect() (*Connection, error) {
	creator := cfg.connCreator
	if creator == nil {
		dialer := net.Dialer{Timeout: cfg.dialTimeout}
		creator = BasicConnCreator(cfg.Addr(), dialer)
	}

	netConn, err := creator.Conn()()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return &Connection{
		netConn:         netConn,
		conn:            mc.NewMcConn(netConn),
		state:           StateHandshaking,
		address:         cfg.address,
		port:            cfg.port,
		protocolVersion: cfg.protocolVersion,
		ioDeadline:      cfg.ioDeadline,
	}, nil
}

// Connect is a convenience wrapper for querying a server on the
// default port with the default protocol version.
func Connect(address string) (*Connection, error) {
	return NewConnectionConfig(address).Connect()
}
