package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	plotRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydroplot_plot_requests_total",
		Help: "Plot form submissions by outcome.",
	}, []string{"outcome"})

	plotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hydroplot_plot_duration_seconds",
		Help:    "End-to-end time to serve one plot request.",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hydroplot_cache_hits_total",
		Help: "Plot pages served from the response cache.",
	})
)
