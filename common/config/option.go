package config

// Option is a function that configures a Config
type Option func(*Config)

// WithServiceName sets the service name
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithEnvironment sets the deployment environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithOtelEndpoint sets the OpenTelemetry exporter endpoint and enables export
func WithOtelEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.OtelEnabled = true
		c.OtelEndpoint = endpoint
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log format
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithPort sets the HTTP listen port
func WithPort(port string) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithStoreBackend selects the document store implementation
func WithStoreBackend(backend string) Option {
	return func(c *Config) {
		c.StoreBackend = backend
	}
}

// WithDataFilePath sets the data file path used by the file backend
func WithDataFilePath(path string) Option {
	return func(c *Config) {
		c.DataFilePath = path
	}
}

// WithSimulatedDelay enables random latency injection between min and max milliseconds
func WithSimulatedDelay(minMs, maxMs int) Option {
	return func(c *Config) {
		c.SimulateDelayEnabled = true
		c.SimulateDelayMinMs = minMs
		c.SimulateDelayMaxMs = maxMs
	}
}
