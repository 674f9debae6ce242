package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// TextfilePath receives the collected metrics in Prometheus text format
	// when a command finishes, for pickup by node_exporter's textfile collector
	TextfilePath string `mapstructure:"textfile_path"`
}
