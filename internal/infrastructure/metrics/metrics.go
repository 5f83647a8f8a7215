// Package metrics provides Prometheus instrumentation for the ordenes service.
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"ordenes_taller/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SweepResultOK        = "ok"
	SweepResultFailed    = "failed"
	SweepResultCancelled = "cancelled"
	SweepResultSkipped   = "skipped"
)

var (
	// SweepsTotal counts alert sweeps by outcome.
	SweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordenes",
		Name:      "alert_sweeps_total",
		Help:      "Total number of alert sweeps by result.",
	}, []string{"result"})

	// AlertsTotal counts orders that produced an alert, by kind.
	AlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordenes",
		Name:      "alerts_total",
		Help:      "Total number of orders alerted by kind.",
	}, []string{"kind"})

	NotificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordenes",
		Name:      "notifications_created_total",
		Help:      "Total number of notification records written by the alert sweep.",
	})

	// SweepOrderErrorsTotal counts per-order failures isolated by the sweep.
	SweepOrderErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordenes",
		Name:      "alert_sweep_order_errors_total",
		Help:      "Total number of orders that failed evaluation during a sweep.",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ordenes",
		Name:      "alert_sweep_duration_seconds",
		Help:      "Duration of alert sweeps in seconds.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})

	// HTTPRequestsTotal counts HTTP requests by method, route, and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordenes",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordenes",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})
)

// ObserveSweep records the outcome of one sweep run. Partial counts are recorded even when
// the run was cancelled.
func ObserveSweep(res entities.SweepResult, err error, d time.Duration) {
	SweepDuration.Observe(d.Seconds())
	SweepsTotal.WithLabelValues(SweepOutcome(err)).Inc()

	AlertsTotal.WithLabelValues(string(entities.AlertKindRojo)).Add(float64(res.AlertasRojas))
	AlertsTotal.WithLabelValues(string(entities.AlertKindAmarillo)).Add(float64(res.AlertasAmarillas))
	NotificationsCreatedTotal.Add(float64(res.NotificacionesCreadas))
	SweepOrderErrorsTotal.Add(float64(res.Errores))
}

func SweepOutcome(err error) string {
	switch {
	case err == nil:
		return SweepResultOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return SweepResultCancelled
	default:
		return SweepResultFailed
	}
}

// GinMiddleware records request count and latency, labelled by the matched route template
// so path parameters don't blow up cardinality.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
