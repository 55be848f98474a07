// Package metrics exposes Prometheus counters for row processing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsProcessed tracks rows that passed through the adapter, by outcome:
	// "scored" when the analyzed field held text, "skipped" when it was null.
	RowsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_rows_processed_total",
			Help: "Rows processed by the sentiment adapter, by outcome (scored/skipped)",
		},
		[]string{"outcome"},
	)

	// DownstreamRejections tracks pushes refused by the downstream consumer.
	DownstreamRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_downstream_rejections_total",
			Help: "Row pushes refused by the downstream consumer",
		},
	)

	// StreamsCompleted tracks incoming streams that reached end-of-stream.
	StreamsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_streams_completed_total",
			Help: "Incoming streams that reached end-of-stream",
		},
	)
)
