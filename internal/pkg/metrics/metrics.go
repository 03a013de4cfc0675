// Package metrics holds the Prometheus collectors of the print-shop backend.
// Collectors register on the default registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printshop_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrderWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printshop_order_writes_total",
		Help: "Total number of committed order row writes, by resulting status.",
	},
		[]string{"status"},
	)

	HistoryEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printshop_history_entries_total",
		Help: "Total number of history entries recorded.",
	})

	AggregatesWrittenTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printshop_aggregates_written_total",
		Help: "Total number of committed writes, by aggregate type.",
	},
		[]string{"type"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printshop_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printshop_notifications_total",
		Help: "Total number of notifications handled by workers, by kind and result.",
	},
		[]string{"kind", "result"},
	)

	NotificationQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "printshop_notification_queue_depth",
		Help: "Current number of messages waiting in the in-memory notification queue.",
	})

	ExportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printshop_export_rows_total",
		Help: "Total number of order rows exported, by target.",
	},
		[]string{"target"},
	)
)
