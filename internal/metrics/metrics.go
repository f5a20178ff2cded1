// Package metrics exposes prometheus counters for the channel lifecycle.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"odyssey-voice/internal/config"
	"odyssey-voice/internal/crash"
	"odyssey-voice/internal/logger"
)

var (
	ChannelsSpawned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "odyssey_channels_spawned_total",
		Help: "Temporary channels created from base channels.",
	})
	ChannelsReaped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "odyssey_channels_reaped_total",
		Help: "Empty channels deleted by the debounced reaper.",
	})
	SweepDeletions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "odyssey_sweep_deletions_total",
		Help: "Records or channels removed by the reconciliation sweep.",
	})
	GuardDisconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "odyssey_guard_disconnects_total",
		Help: "Banned members disconnected by the join guard.",
	})
	ClaimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "odyssey_claim_conflicts_total",
		Help: "Claim attempts that lost to a concurrent claim.",
	})
)

// Serve starts the prometheus endpoint when enabled in configuration
func Serve(cfg *config.Config) {
	if !cfg.Metrics.Enabled {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:         cfg.Metrics.ListenAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	crash.SafeGoroutine("metrics", func() {
		logger.Infof("Metrics listening on %s", cfg.Metrics.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Metrics server error: %v", err)
		}
	})
}
