package rowstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter prometheus.Counter
//	    getHistogram  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordInsert is called after each row insertion.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each row removal.
	RecordRemove(duration time.Duration, err error)

	// RecordGet is called after each row read.
	RecordGet(duration time.Duration, err error)

	// RecordUpdate is called after each row update.
	RecordUpdate(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(time.Duration, error)    {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	GetCount         atomic.Int64
	GetErrors        atomic.Int64
	GetTotalNanos    atomic.Int64
	UpdateCount      atomic.Int64
	UpdateErrors     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(duration time.Duration, err error) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(duration time.Duration, err error) {
	b.UpdateCount.Add(1)
	if err != nil {
		b.UpdateErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of a BasicMetricsCollector.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertErrors   int64
	InsertAvgNanos int64
	RemoveCount    int64
	RemoveErrors   int64
	GetCount       int64
	GetErrors      int64
	GetAvgNanos    int64
	UpdateCount    int64
	UpdateErrors   int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		InsertCount:  b.InsertCount.Load(),
		InsertErrors: b.InsertErrors.Load(),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveErrors: b.RemoveErrors.Load(),
		GetCount:     b.GetCount.Load(),
		GetErrors:    b.GetErrors.Load(),
		UpdateCount:  b.UpdateCount.Load(),
		UpdateErrors: b.UpdateErrors.Load(),
	}
	if s.InsertCount > 0 {
		s.InsertAvgNanos = b.InsertTotalNanos.Load() / s.InsertCount
	}
	if s.GetCount > 0 {
		s.GetAvgNanos = b.GetTotalNanos.Load() / s.GetCount
	}
	return s
}
