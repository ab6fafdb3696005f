package config

import (
	"net"
	"time"

	mcping "github.com/realDragonium/mcping"
)

// MainConfigFileName is skipped when reading target configs from
// the same directory.
const MainConfigFileName = "mcpingd.json"

// McPingConfig is the daemon wide configuration.
type McPingConfig struct {
	MetricsBind  string `json:"metricsBind"`
	PollInterval string `json:"pollInterval"`
	LogLevel     string `json:"logLevel"`

	PidFile string `json:"pidFile"`
}

func DefaultMcPingConfig() McPingConfig {
	return McPingConfig{
		MetricsBind:  ":9100",
		PollInterval: "15s",
		LogLevel:     "info",
		PidFile:      "/run/mcpingd.pid",
	}
}

// TargetConfig describes one server to poll. Durations are strings
// in the file and get parsed when the config is turned into a
// connection config.
type TargetConfig struct {
	FilePath string
	Name     string `json:"name"`
	Address  string `json:"address"`
	Port     uint16 `json:"port"`

	ProtocolVersion   int    `json:"protocolVersion"`
	DialTimeout       string `json:"dialTimeout"`
	IODeadline        string `json:"ioDeadline"`
	SendProxyProtocol bool   `json:"sendProxyProtocol"`

	StatusCooldown string `json:"statusCooldown"`
	StateCooldown  string `json:"stateCooldown"`
}

func DefaultTargetConfig() TargetConfig {
	return TargetConfig{
		Port:              mcping.DefaultPort,
		ProtocolVersion:   mcping.DefaultProtocolVersion,
		DialTimeout:       "5s",
		IODeadline:        "5s",
		SendProxyProtocol: false,
		StatusCooldown:    "10s",
		StateCooldown:     "10s",
	}
}

// ConnectionConfig converts the file values into a client config,
// wiring in the PROXY protocol creator when asked for.
func (cfg TargetConfig) ConnectionConfig() (*mcping.ConnectionConfig, error) {
	dialTimeout, err := time.ParseDuration(cfg.DialTimeout)
	if err != nil {
		return nil, err
	}
	ioDeadline, err := time.ParseDuration(cfg.IODeadline)
	if err != nil {
		return nil, err
	}

	connCfg := mcping.NewConnectionConfig(cfg.Address).
		WithPort(cfg.Port).
		WithProtocolVersion(cfg.ProtocolVersion).
		WithDialTimeout(dialTimeout).
		WithIODeadline(ioDeadline)

	if cfg.SendProxyProtocol {
		dialer := net.Dialer{Timeout: dialTimeout}
		creator := mcping.ProxyProtoConnCreator(mcping.BasicConnCreator(connCfg.Addr(), dialer))
		connCfg = connCfg.WithConnCreator(creator)
	}

	return connCfg, nil
}

func (cfg TargetConfig) StatusCooldownDuration() (time.Duration, error) {
	return time.ParseDuration(cfg.StatusCooldown)
}

func (cfg TargetConfig) StateCooldownDuration() (time.Duration, error) {
	return time.ParseDuration(cfg.StateCooldown)
}
