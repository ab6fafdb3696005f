package module

import (
	"time"

	mcping "github.com/realDragonium/mcping"
)

type StatusCache interface {
	Status() (mcping.ServerStatus, time.Duration, error)
}

// NewStatusCache queries a server through a fresh connection and
// remembers the answer, errors included, for the cooldown. It keeps
// pollers from hammering a server that is asked about more often
// than it changes.
func NewStatusCache(cfg *mcping.ConnectionConfig, cooldown time.Duration) StatusCache {
	return &statusCache{
		cfg:      cfg,
		cooldown: cooldown,
	}
}

type statusCache struct {
	cfg      *mcping.ConnectionConfig
	cooldown time.Duration

	status    mcping.ServerStatus
	latency   time.Duration
	err       error
	cacheTime time.Time
}

func (cache *statusCache) Status() (mcping.ServerStatus, time.Duration, error) {
	if !cache.cacheTime.IsZero() && time.Since(cache.cacheTime) < cache.cooldown {
		return cache.status, cache.latency, cache.err
	}
	cache.status, cache.latency, cache.err = cache.newStatus()
	cache.cacheTime = time.Now()
	return cache.status, cache.latency, cache.err
}

func (cache *statusCache) newStatus() (mcping.ServerStatus, time.Duration, error) {
	conn, err := cache.cfg.Connect()
	if err != nil {
		return mcping.ServerStatus{}, 0, err
	}
	defer conn.Close()

	status, err := conn.Status()
	if err != nil {
		return mcping.ServerStatus{}, 0, err
	}
	latency, err := conn.Ping()
	if err != nil {
		return mcping.ServerStatus{}, 0, err
	}
	return status, latency, nil
}
