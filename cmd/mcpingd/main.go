package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cloudflare/tableflip"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/realDragonium/mcping/config"
	"github.com/realDragonium/mcping/exporter"
	mclog "github.com/realDragonium/mcping/log"
)

var log = mclog.Log

func main() {
	cfgDir := flag.String("config", "/etc/mcpingd", "`Path` to the config directory")
	flag.Parse()

	mainCfg, err := config.ReadMcPingConfig(filepath.Join(*cfgDir, config.MainConfigFileName))
	if err != nil {
		log.Fatalf("reading main config: %v", err)
	}
	if err := mclog.SetLevel(mainCfg.LogLevel); err != nil {
		log.Fatalf("parsing log level: %v", err)
	}

	targetCfgs, err := config.ReadTargetConfigs(*cfgDir)
	if err != nil {
		log.Fatalf("reading target configs: %v", err)
	}
	if errs := config.VerifyConfigs(targetCfgs); len(errs) > 0 {
		for _, err := range errs {
			log.Error(err)
		}
		log.Fatalf("%d broken target config(s)", len(errs))
	}

	targets := make([]exporter.Target, 0, len(targetCfgs))
	for _, targetCfg := range targetCfgs {
		target, err := exporter.NewTarget(targetCfg)
		if err != nil {
			log.Fatalf("building target '%s': %v", targetCfg.Name, err)
		}
		targets = append(targets, target)
	}

	pollInterval, err := time.ParseDuration(mainCfg.PollInterval)
	if err != nil {
		log.Fatalf("parsing poll interval: %v", err)
	}

	upg, err := tableflip.New(tableflip.Options{
		PIDFile: mainCfg.PidFile,
	})
	if err != nil {
		panic(err)
	}
	defer upg.Stop()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP)
		for range sig {
			if err := upg.Upgrade(); err != nil {
				log.Errorf("upgrade failed: %v", err)
			}
		}
	}()

	ln, err := upg.Listen("tcp", mainCfg.MetricsBind)
	if err != nil {
		log.Fatalf("cant listen on %s: %v", mainCfg.MetricsBind, err)
	}
	defer ln.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := http.Server{Handler: mux}
	go server.Serve(ln)

	poller := exporter.NewPoller(targets, pollInterval, log)
	go poller.Run()

	log.Infof("polling %d target(s), metrics on %s", len(targets), mainCfg.MetricsBind)
	if err := upg.Ready(); err != nil {
		panic(err)
	}
	<-upg.Exit()

	poller.Close()
	server.Close()
	log.Info("shutting down")
}
