package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/gray-logic-sim/internal/device"
)

// Config is the root configuration structure for the simulator.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Logging  LoggingConfig  `yaml:"logging"`
	History  HistoryConfig  `yaml:"history"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Devices  []DeviceConfig `yaml:"devices"`
	REPL     REPLConfig     `yaml:"repl"`
}

// SiteConfig contains site-specific information.
type SiteConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig contains diagnostic logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// HistoryConfig contains command log and history settings.
type HistoryConfig struct {
	// LogFile is the append-only plain-text log. Failing to open it is fatal.
	LogFile string `yaml:"log_file"`

	// Capacity bounds the in-memory command history. Oldest entries are evicted.
	Capacity int `yaml:"capacity"`

	// Restore seeds the in-memory history from the archive at startup.
	// Requires Database.Enabled.
	Restore bool `yaml:"restore"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig contains SQLite history archive settings.
type DatabaseConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// InfluxDBConfig contains InfluxDB connection settings.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// DeviceConfig declares one device to register at startup.
type DeviceConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// REPLConfig contains interactive console settings.
type REPLConfig struct {
	Prompt string `yaml:"prompt"`
	Color  bool   `yaml:"color"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults), skipped if path is empty
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: GRAYLOGIC_SIM_SECTION_KEY
// For example: GRAYLOGIC_SIM_LOG_FILE, GRAYLOGIC_SIM_MQTT_HOST
//
// Parameters:
//   - path: Path to the YAML configuration file, or "" for defaults only
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// DefaultDevices is the device set registered when the config names none.
func DefaultDevices() []DeviceConfig {
	return []DeviceConfig{
		{Name: "Living Room Light", Type: string(device.KindLight)},
		{Name: "Main Thermostat", Type: string(device.KindThermostat)},
		{Name: "Front Door Camera", Type: string(device.KindSecurityCamera)},
	}
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name: "Smart Home",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		History: HistoryConfig{
			LogFile:  "smart_home_log.txt",
			Capacity: 1000,
			Database: DatabaseConfig{
				Path:        "./data/graylogic-sim.db",
				WALMode:     true,
				BusyTimeout: 5,
			},
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "graylogic-sim",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		InfluxDB: InfluxDBConfig{
			URL:           "http://localhost:8086",
			Org:           "graylogic",
			Bucket:        "simulator",
			BatchSize:     100,
			FlushInterval: 10,
		},
		REPL: REPLConfig{
			Prompt: "Enter a command: ",
			Color:  true,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: GRAYLOGIC_SIM_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRAYLOGIC_SIM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// History
	if v := os.Getenv("GRAYLOGIC_SIM_LOG_FILE"); v != "" {
		cfg.History.LogFile = v
	}
	if v := os.Getenv("GRAYLOGIC_SIM_DATABASE_PATH"); v != "" {
		cfg.History.Database.Path = v
	}

	// MQTT
	if v := os.Getenv("GRAYLOGIC_SIM_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("GRAYLOGIC_SIM_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("GRAYLOGIC_SIM_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// InfluxDB
	if v := os.Getenv("GRAYLOGIC_SIM_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of all validation failures, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.History.LogFile == "" {
		errs = append(errs, "history.log_file is required")
	}
	if c.History.Capacity <= 0 {
		errs = append(errs, "history.capacity must be greater than 0")
	}
	if c.History.Database.Enabled && c.History.Database.Path == "" {
		errs = append(errs, "history.database.path is required when the database is enabled")
	}
	if c.History.Restore && !c.History.Database.Enabled {
		errs = append(errs, "history.restore requires history.database.enabled")
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.Enabled && c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required when mqtt is enabled")
	}

	if c.InfluxDB.Enabled && c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required when influxdb is enabled")
	}

	seen := make(map[string]bool, len(c.Devices))
	for i, d := range c.Devices {
		if err := device.ValidateName(d.Name); err != nil {
			errs = append(errs, fmt.Sprintf("devices[%d]: %v", i, err))
		}
		if _, err := device.ParseKind(d.Type); err != nil {
			errs = append(errs, fmt.Sprintf("devices[%d]: %v", i, err))
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Sprintf("devices[%d]: duplicate name %q", i, d.Name))
		}
		seen[d.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// DeviceList returns the configured devices, or DefaultDevices if none are set.
func (c *Config) DeviceList() []DeviceConfig {
	if len(c.Devices) == 0 {
		return DefaultDevices()
	}
	return c.Devices
}
