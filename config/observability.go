package config

// ObservabilityConfig contains metrics configuration.
type ObservabilityConfig struct {
	Metrics MetricsConfig
}

// MetricsConfig configures the StatsD metrics sink.
type MetricsConfig struct {
	// Enabled turns metric emission on.
	Enabled bool `env:"METRICS_ENABLED" envDefault:"false"`

	// StatsdAddress is the UDP host:port of a StatsD-compatible sink.
	StatsdAddress string `env:"STATSD_ADDRESS"`
}

// IsEnabled reports whether metrics should be emitted.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled && c.StatsdAddress != ""
}
