package exporter

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"

	mcping "github.com/realDragonium/mcping"
	"github.com/realDragonium/mcping/config"
	"github.com/realDragonium/mcping/module"
)

func configTargetFixture() config.TargetConfig {
	cfg := config.DefaultTargetConfig()
	cfg.Name = "lobby"
	cfg.Address = "mc.example.com"
	return cfg
}

type fakeStatusCache struct {
	status    mcping.ServerStatus
	latency   time.Duration
	err       error
	callCount int
}

func (cache *fakeStatusCache) Status() (mcping.ServerStatus, time.Duration, error) {
	cache.callCount++
	return cache.status, cache.latency, cache.err
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestPoller_Poll_OnlineServer(t *testing.T) {
	cache := &fakeStatusCache{
		status: mcping.ServerStatus{
			Players: mcping.ServerPlayers{Online: 12, Max: 64},
		},
		latency: 42 * time.Millisecond,
	}
	target := Target{
		Name:   "poll-online",
		Status: cache,
		State:  module.AlwaysOnlineState{},
	}
	poller := NewPoller([]Target{target}, time.Minute, testLogger())

	poller.Poll()

	if got := testutil.ToFloat64(serverUp.WithLabelValues(target.Name)); got != 1 {
		t.Errorf("server_up: got: %v; want: %v", got, 1)
	}
	if got := testutil.ToFloat64(playersOnline.WithLabelValues(target.Name)); got != 12 {
		t.Errorf("players_online: got: %v; want: %v", got, 12)
	}
	if got := testutil.ToFloat64(playersMax.WithLabelValues(target.Name)); got != 64 {
		t.Errorf("players_max: got: %v; want: %v", got, 64)
	}
	if got := testutil.ToFloat64(pingDuration.WithLabelValues(target.Name)); got != 0.042 {
		t.Errorf("ping_duration_seconds: got: %v; want: %v", got, 0.042)
	}
}

func TestPoller_Poll_OfflineServerSkipsStatus(t *testing.T) {
	cache := &fakeStatusCache{}
	target := Target{
		Name:   "poll-offline",
		Status: cache,
		State:  module.AlwaysOfflineState{},
	}
	poller := NewPoller([]Target{target}, time.Minute, testLogger())

	poller.Poll()

	if got := testutil.ToFloat64(serverUp.WithLabelValues(target.Name)); got != 0 {
		t.Errorf("server_up: got: %v; want: %v", got, 0)
	}
	if cache.callCount != 0 {
		t.Errorf("expected the status cache to be left alone but it was called %v times", cache.callCount)
	}
}

func TestPoller_Poll_StatusError(t *testing.T) {
	cache := &fakeStatusCache{
		err: errors.New("no status for you"),
	}
	target := Target{
		Name:   "poll-error",
		Status: cache,
		State:  module.AlwaysOnlineState{},
	}
	poller := NewPoller([]Target{target}, time.Minute, testLogger())

	poller.Poll()

	if got := testutil.ToFloat64(serverUp.WithLabelValues(target.Name)); got != 0 {
		t.Errorf("server_up: got: %v; want: %v", got, 0)
	}
}

func TestPoller_RunAndClose(t *testing.T) {
	cache := &fakeStatusCache{
		status: mcping.ServerStatus{
			Players: mcping.ServerPlayers{Online: 1, Max: 2},
		},
	}
	target := Target{
		Name:   "poll-run",
		Status: cache,
		State:  module.AlwaysOnlineState{},
	}
	poller := NewPoller([]Target{target}, time.Hour, testLogger())

	doneCh := make(chan struct{})
	go func() {
		poller.Run()
		close(doneCh)
	}()
	poller.Close()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("poller didnt stop after Close")
	}
	if cache.callCount != 1 {
		t.Errorf("expected one initial poll but the cache was called %v times", cache.callCount)
	}
}

func TestNewTarget(t *testing.T) {
	cfg := configTargetFixture()

	target, err := NewTarget(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if target.Name != "lobby" {
		t.Errorf("name: got: %v; want: %v", target.Name, "lobby")
	}
	if target.Status == nil {
		t.Error("expected a status cache to be wired up")
	}
	if target.State == nil {
		t.Error("expected a state agent to be wired up")
	}
}

func TestNewTarget_BadDuration(t *testing.T) {
	cfg := configTargetFixture()
	cfg.StatusCooldown = "never"

	_, err := NewTarget(cfg)

	if err == nil {
		t.Error("expected an error for a broken duration")
	}
}
