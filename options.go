package rowstore

// Options contains configuration options for a Store.
type Options struct {
	// Logger receives structured logs for table lifecycle and row
	// operations. Defaults to a noop logger.
	Logger *Logger

	// Metrics receives operation timings. Defaults to a noop collector.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options for a Store.
var DefaultOptions = Options{}

// WithLogger sets the logger used by the store and its tables.
func WithLogger(logger *Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics sets the metrics collector used by the store and its tables.
func WithMetrics(metrics MetricsCollector) func(*Options) {
	return func(o *Options) {
		o.Metrics = metrics
	}
}
