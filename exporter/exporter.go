package exporter

import (
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	mcping "github.com/realDragonium/mcping"
	"github.com/realDragonium/mcping/config"
	"github.com/realDragonium/mcping/module"
)

var (
	serverUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mcping",
		Name:      "server_up",
		Help:      "Whether the last status poll of the server succeeded",
	}, []string{"host"})
	playersOnline = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mcping",
		Name:      "players_online",
		Help:      "The number of players currently on the server",
	}, []string{"host"})
	playersMax = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mcping",
		Name:      "players_max",
		Help:      "The player limit of the server",
	}, []string{"host"})
	pingDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mcping",
		Name:      "ping_duration_seconds",
		Help:      "Round trip time of the last ping to the server",
	}, []string{"host"})
)

// Target couples a name with the two ways of asking about a server,
// the cheap tcp probe and the full status exchange.
type Target struct {
	Name   string
	Status module.StatusCache
	State  module.StateAgent
}

func NewTarget(cfg config.TargetConfig) (Target, error) {
	connCfg, err := cfg.ConnectionConfig()
	if err != nil {
		return Target{}, err
	}
	statusCooldown, err := cfg.StatusCooldownDuration()
	if err != nil {
		return Target{}, err
	}
	stateCooldown, err := cfg.StateCooldownDuration()
	if err != nil {
		return Target{}, err
	}
	dialTimeout, err := time.ParseDuration(cfg.DialTimeout)
	if err != nil {
		return Target{}, err
	}

	creator := mcping.BasicConnCreator(connCfg.Addr(), net.Dialer{Timeout: dialTimeout})
	return Target{
		Name:   cfg.Name,
		Status: module.NewStatusCache(connCfg, statusCooldown),
		State:  module.NewMcServerState(stateCooldown, creator),
	}, nil
}

func NewPoller(targets []Target, interval time.Duration, log logrus.FieldLogger) *Poller {
	return &Poller{
		targets:  targets,
		interval: interval,
		log:      log,
		closeCh:  make(chan struct{}),
	}
}

// Poller refreshes the metrics of every target on an interval.
type Poller struct {
	targets  []Target
	interval time.Duration
	log      logrus.FieldLogger
	closeCh  chan struct{}
}

func (p *Poller) Run() {
	p.Poll()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.Poll()
		case <-p.closeCh:
			return
		}
	}
}

func (p *Poller) Close() {
	close(p.closeCh)
}

func (p *Poller) Poll() {
	for i := range p.targets {
		p.pollTarget(p.targets[i])
	}
}

func (p *Poller) pollTarget(target Target) {
	// A tcp probe first, no point in a full status exchange when
	// nothing is listening.
	if target.State.State() != module.Online {
		serverUp.WithLabelValues(target.Name).Set(0)
		p.log.WithField("host", target.Name).Debug("server is offline")
		return
	}

	status, latency, err := target.Status.Status()
	if err != nil {
		serverUp.WithLabelValues(target.Name).Set(0)
		p.log.WithField("host", target.Name).Warnf("status poll failed: %v", err)
		return
	}

	serverUp.WithLabelValues(target.Name).Set(1)
	playersOnline.WithLabelValues(target.Name).Set(float64(status.Players.Online))
	playersMax.WithLabelValues(target.Name).Set(float64(status.Players.Max))
	pingDuration.WithLabelValues(target.Name).Set(latency.Seconds())
}
