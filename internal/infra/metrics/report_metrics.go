// Package metrics exposes Prometheus instrumentation for the report pipeline.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

const (
	metricPrefix = "gestor_"

	resultSuccess = "success"
	resultError   = "error"
	resultCancel  = "canceled"
)

// ReportMetrics bundles report pipeline metrics.
type ReportMetrics struct {
	computeTotal   *prometheus.CounterVec
	computeLatency *prometheus.HistogramVec
	exportTotal    *prometheus.CounterVec
	exportLatency  *prometheus.HistogramVec
	recordWrites   *prometheus.CounterVec
}

var _ adapter.ReportMetrics = (*ReportMetrics)(nil)

// NewReportMetrics constructs report metrics and registers them on reg.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	m := &ReportMetrics{
		computeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_compute_total",
				Help: "Total report aggregations by period and result",
			},
			[]string{"period", "result"},
		),
		computeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_compute_latency_seconds",
				Help:    "Report fetch and aggregate latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"period"},
		),
		exportTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		),
		exportLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_export_latency_seconds",
				Help:    "Report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		recordWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_record_writes_total",
				Help: "Total report label writes by action and result",
			},
			[]string{"action", "result"},
		),
	}
	reg.MustRegister(
		m.computeTotal,
		m.computeLatency,
		m.exportTotal,
		m.exportLatency,
		m.recordWrites,
	)
	return m
}

// ObserveComputation records one fetch and aggregate cycle.
func (m *ReportMetrics) ObserveComputation(period entity.ReportPeriod, duration time.Duration, err error) {
	m.computeTotal.WithLabelValues(string(period), result(err)).Inc()
	m.computeLatency.WithLabelValues(string(period)).Observe(duration.Seconds())
}

// ObserveExport records one generator run.
func (m *ReportMetrics) ObserveExport(format entity.ReportFormat, duration time.Duration, err error) {
	m.exportTotal.WithLabelValues(string(format), result(err)).Inc()
	m.exportLatency.WithLabelValues(string(format)).Observe(duration.Seconds())
}

// IncRecordWrite counts a label write.
func (m *ReportMetrics) IncRecordWrite(action string, err error) {
	m.recordWrites.WithLabelValues(action, result(err)).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func result(err error) string {
	if errors.Is(err, context.Canceled) {
		return resultCancel
	}
	if err != nil {
		return resultError
	}
	return resultSuccess
}
