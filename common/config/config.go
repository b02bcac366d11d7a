package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Initialize a minimal logger for config loading phase
var configLogger = logrus.New()

func init() {
	// Configure minimal logger - output to stderr, text format
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

// Constants for keys and validation lists
const (
	envConfigFile = "CONFIG_FILE"

	keyServiceName              = "service_name"
	keyServiceVersion           = "service_version"
	keyEnvironment              = "environment"
	keyPort                     = "port"
	keyLogLevel                 = "log_level"
	keyLogFormat                = "log_format"
	keyOtelEnabled              = "otel_enabled"
	keyOtelEndpoint             = "otel_exporter_otlp_endpoint"
	keyOtelInsecure             = "otel_exporter_insecure"
	keyOtelSampleRatio          = "otel_sample_ratio"
	keyOtelBatchTimeout         = "otel_batch_timeout"
	keyStoreBackend             = "store_backend"
	keyDataFilePath             = "data_file_path"
	keyMongoURL                 = "mongo_db_url"
	keyMongoDatabase            = "mongo_db_name"
	keyPostgresDSN              = "postgres_dsn"
	keyRedisURL                 = "redis_url"
	keyFirestoreProjectID       = "firestore_project_id"
	keyFirestoreCredentialsFile = "firestore_credentials_file"
	keyShutdownTotalTimeout     = "shutdown_total_timeout"
	keyShutdownServerTimeout    = "shutdown_server_timeout"
	keyShutdownOtelMinTimeout   = "shutdown_otel_min_timeout"
	keySimulateDelayEnabled     = "simulate_delay_enabled"
	keySimulateDelayMinMs       = "simulate_delay_min_ms"
	keySimulateDelayMaxMs       = "simulate_delay_max_ms"
	keySimulateErrorEnabled     = "simulate_random_error_enabled"
	keySimulateErrorChance      = "simulate_overall_error_chance"
)

// Supported storage backends.
const (
	BackendMemory    = "memory"
	BackendFile      = "file"
	BackendMongo     = "mongo"
	BackendPostgres  = "postgres"
	BackendRedis     = "redis"
	BackendFirestore = "firestore"
)

var (
	// Allowed values for validation
	allowedLogLevels  = []string{"debug", "info", "warn", "error"}
	allowedLogFormats = []string{"text", "json"}
	allowedBackends   = []string{BackendMemory, BackendFile, BackendMongo, BackendPostgres, BackendRedis, BackendFirestore}
)

// Config holds all configuration settings
type Config struct {
	// Service information
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Environment    string `mapstructure:"environment"`

	// OpenTelemetry configuration
	OtelEnabled      bool          `mapstructure:"otel_enabled"`
	OtelEndpoint     string        `mapstructure:"otel_exporter_otlp_endpoint"`
	OtelInsecure     bool          `mapstructure:"otel_exporter_insecure"`
	OtelSampleRatio  float64       `mapstructure:"otel_sample_ratio"`
	OtelBatchTimeout time.Duration `mapstructure:"otel_batch_timeout"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Application-specific settings
	Port string `mapstructure:"port"`

	// Storage
	StoreBackend             string `mapstructure:"store_backend"`
	DataFilePath             string `mapstructure:"data_file_path"`
	MongoURL                 string `mapstructure:"mongo_db_url"`
	MongoDatabase            string `mapstructure:"mongo_db_name"`
	PostgresDSN              string `mapstructure:"postgres_dsn"`
	RedisURL                 string `mapstructure:"redis_url"`
	FirestoreProjectID       string `mapstructure:"firestore_project_id"`
	FirestoreCredentialsFile string `mapstructure:"firestore_credentials_file"`

	// Shutdown timeouts
	ShutdownTotalTimeout   time.Duration `mapstructure:"shutdown_total_timeout"`
	ShutdownServerTimeout  time.Duration `mapstructure:"shutdown_server_timeout"`
	ShutdownOtelMinTimeout time.Duration `mapstructure:"shutdown_otel_min_timeout"`

	// Debug simulation
	SimulateDelayEnabled       bool    `mapstructure:"simulate_delay_enabled"`
	SimulateDelayMinMs         int     `mapstructure:"simulate_delay_min_ms"`
	SimulateDelayMaxMs         int     `mapstructure:"simulate_delay_max_ms"`
	SimulateRandomErrorEnabled bool    `mapstructure:"simulate_random_error_enabled"`
	SimulateOverallErrorChance float64 `mapstructure:"simulate_overall_error_chance"`
}

// NewConfig creates a new Config with the provided options
func NewConfig(opts ...Option) *Config {
	c := NewDefaultConfig()

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoadConfig builds the configuration from defaults, an optional config file
// (CONFIG_FILE) and the environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v, NewDefaultConfig())

	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		configLogger.WithField("file", v.ConfigFileUsed()).Info("Config file loaded")
	}

	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			configLogger.WithError(e).Error("Invalid configuration value")
		}
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	cfg.Log()
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(keyServiceName, d.ServiceName)
	v.SetDefault(keyServiceVersion, d.ServiceVersion)
	v.SetDefault(keyEnvironment, d.Environment)
	v.SetDefault(keyPort, d.Port)
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyLogFormat, d.LogFormat)
	v.SetDefault(keyOtelEnabled, d.OtelEnabled)
	v.SetDefault(keyOtelEndpoint, d.OtelEndpoint)
	v.SetDefault(keyOtelInsecure, d.OtelInsecure)
	v.SetDefault(keyOtelSampleRatio, d.OtelSampleRatio)
	v.SetDefault(keyOtelBatchTimeout, d.OtelBatchTimeout)
	v.SetDefault(keyStoreBackend, d.StoreBackend)
	v.SetDefault(keyDataFilePath, d.DataFilePath)
	v.SetDefault(keyMongoURL, d.MongoURL)
	v.SetDefault(keyMongoDatabase, d.MongoDatabase)
	v.SetDefault(keyPostgresDSN, d.PostgresDSN)
	v.SetDefault(keyRedisURL, d.RedisURL)
	v.SetDefault(keyFirestoreProjectID, d.FirestoreProjectID)
	v.SetDefault(keyFirestoreCredentialsFile, d.FirestoreCredentialsFile)
	v.SetDefault(keyShutdownTotalTimeout, d.ShutdownTotalTimeout)
	v.SetDefault(keyShutdownServerTimeout, d.ShutdownServerTimeout)
	v.SetDefault(keyShutdownOtelMinTimeout, d.ShutdownOtelMinTimeout)
	v.SetDefault(keySimulateDelayEnabled, d.SimulateDelayEnabled)
	v.SetDefault(keySimulateDelayMinMs, d.SimulateDelayMinMs)
	v.SetDefault(keySimulateDelayMaxMs, d.SimulateDelayMaxMs)
	v.SetDefault(keySimulateErrorEnabled, d.SimulateRandomErrorEnabled)
	v.SetDefault(keySimulateErrorChance, d.SimulateOverallErrorChance)
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Validate returns one *FieldError per invalid setting, in declaration order.
func (c *Config) Validate() []error {
	var checks settingChecks

	for _, f := range [][2]string{
		{"ServiceName", c.ServiceName},
		{"ServiceVersion", c.ServiceVersion},
		{"LogLevel", c.LogLevel},
		{"LogFormat", c.LogFormat},
		{"Port", c.Port},
	} {
		checks.required(f[0], f[1])
	}

	checks.oneOf("LogLevel", strings.ToLower(c.LogLevel), allowedLogLevels)
	checks.oneOf("LogFormat", strings.ToLower(c.LogFormat), allowedLogFormats)
	checks.oneOf("StoreBackend", c.StoreBackend, allowedBackends)

	if port, err := strconv.Atoi(c.Port); err == nil {
		within(&checks, "Port", port, 1, 65535)
	} else {
		checks.fail("Port", "%q is not a port number", c.Port)
	}

	within(&checks, "OtelSampleRatio", c.OtelSampleRatio, 0.0, 1.0)
	if c.OtelEnabled {
		checks.required("OtelEndpoint", c.OtelEndpoint)
	}

	for _, f := range c.backendSettings() {
		checks.required(f[0], f[1])
	}

	if c.SimulateDelayEnabled {
		within(&checks, "SimulateDelayMinMs", c.SimulateDelayMinMs, 0, c.SimulateDelayMaxMs)
	}
	within(&checks, "SimulateOverallErrorChance", c.SimulateOverallErrorChance, 0.0, 1.0)

	return checks.errs
}

// Log logs the current configuration
func (c *Config) Log() {
	configLogger.WithFields(logrus.Fields{
		"service_name":      c.ServiceName,
		"service_version":   c.ServiceVersion,
		"environment":       c.Environment,
		"otel_enabled":      c.OtelEnabled,
		"otel_endpoint":     c.OtelEndpoint,
		"otel_insecure":     c.OtelInsecure,
		"otel_sample_ratio": c.OtelSampleRatio,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"port":              c.Port,
		"store_backend":     c.StoreBackend,
		"data_file_path":    c.DataFilePath,
		"shutdown_total":    c.ShutdownTotalTimeout,
		"shutdown_server":   c.ShutdownServerTimeout,
		"shutdown_otel":     c.ShutdownOtelMinTimeout,
	}).Info("Configuration loaded")
}
