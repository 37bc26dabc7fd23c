package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BulkWrites counts batched metafield write submissions by outcome
// (success, item_error, transport_error)
var BulkWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bulk_metafield_writes_total",
	Help: "Batched metafield write submissions by outcome.",
}, []string{"outcome"})

// BulkEntries counts individual metafield entries written by successful batches
var BulkEntries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "bulk_metafield_entries_total",
	Help: "Metafield entries written by successful batches.",
})

// StagedProducts counts products newly added to the staging list
var StagedProducts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "staged_products_total",
	Help: "Products newly added to the staging list.",
})
