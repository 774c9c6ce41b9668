package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "daypass"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_requests_total", Help: "Hotel searches by tab."},
		[]string{"tab"},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_results",
			Help:    "Hotels returned per search.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
	IngestRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ingest_runs_total", Help: "Snapshot refreshes by outcome."},
		[]string{"outcome"}, // ok|empty|error
	)
	IngestLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "ingest_duration_seconds",
			Help:    "Snapshot refresh duration seconds.",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)
	SnapshotHotels = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "snapshot_hotels", Help: "Hotels in the last good snapshot."},
	)
	SnapshotFetched = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "snapshot_fetched_timestamp_seconds", Help: "Fetch time of the last good snapshot."},
	)
)

// Serve exposes /metrics on its own listener. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests, HTTPLatency,
		ExternalRequests, ExternalLatency,
		CacheEvents,
		SearchRequests, SearchResults,
		IngestRuns, IngestLatency, SnapshotHotels, SnapshotFetched,
	)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveSearch(tab string, results int) {
	SearchRequests.WithLabelValues(tab).Inc()
	SearchResults.Observe(float64(results))
}
