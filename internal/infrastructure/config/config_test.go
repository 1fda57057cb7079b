package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
site:
  name: "Test House"
history:
  log_file: "/tmp/test_log.txt"
  capacity: 10
  database:
    enabled: true
    path: "/tmp/test.db"
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
devices:
  - name: "Kitchen Light"
    type: light
  - name: "Hall Thermostat"
    type: thermostat
repl:
  color: false
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.Name != "Test House" {
		t.Errorf("Site.Name = %q, want %q", cfg.Site.Name, "Test House")
	}
	if cfg.History.LogFile != "/tmp/test_log.txt" {
		t.Errorf("History.LogFile = %q, want %q", cfg.History.LogFile, "/tmp/test_log.txt")
	}
	if cfg.History.Capacity != 10 {
		t.Errorf("History.Capacity = %d, want 10", cfg.History.Capacity)
	}
	if !cfg.History.Database.Enabled {
		t.Error("History.Database.Enabled = false, want true")
	}
	if len(cfg.DeviceList()) != 2 {
		t.Fatalf("DeviceList() len = %d, want 2", len(cfg.DeviceList()))
	}
	if cfg.DeviceList()[0].Name != "Kitchen Light" {
		t.Errorf("DeviceList()[0].Name = %q, want %q", cfg.DeviceList()[0].Name, "Kitchen Light")
	}
	if cfg.REPL.Color {
		t.Error("REPL.Color = true, want false")
	}
	// Unset values keep their defaults.
	if cfg.REPL.Prompt != "Enter a command: " {
		t.Errorf("REPL.Prompt = %q, want default", cfg.REPL.Prompt)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.History.Capacity != 1000 {
		t.Errorf("History.Capacity = %d, want 1000", cfg.History.Capacity)
	}
	if cfg.History.LogFile != "smart_home_log.txt" {
		t.Errorf("History.LogFile = %q, want smart_home_log.txt", cfg.History.LogFile)
	}
	if got := len(cfg.DeviceList()); got != 3 {
		t.Errorf("DeviceList() len = %d, want 3", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "invalid: [yaml: content")

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	configPath := writeConfig(t, `
history:
  capacity: 0
`)

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for zero capacity, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing log file",
			mutate:  func(c *Config) { c.History.LogFile = "" },
			wantErr: "history.log_file",
		},
		{
			name:    "negative capacity",
			mutate:  func(c *Config) { c.History.Capacity = -1 },
			wantErr: "history.capacity",
		},
		{
			name: "database enabled without path",
			mutate: func(c *Config) {
				c.History.Database.Enabled = true
				c.History.Database.Path = ""
			},
			wantErr: "history.database.path",
		},
		{
			name:    "restore without database",
			mutate:  func(c *Config) { c.History.Restore = true },
			wantErr: "history.restore",
		},
		{
			name:    "invalid QoS",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: "mqtt.qos",
		},
		{
			name: "mqtt enabled without host",
			mutate: func(c *Config) {
				c.MQTT.Enabled = true
				c.MQTT.Broker.Host = ""
			},
			wantErr: "mqtt.broker.host",
		},
		{
			name: "influxdb enabled without url",
			mutate: func(c *Config) {
				c.InfluxDB.Enabled = true
				c.InfluxDB.URL = ""
			},
			wantErr: "influxdb.url",
		},
		{
			name: "unknown device type",
			mutate: func(c *Config) {
				c.Devices = []DeviceConfig{{Name: "Toaster", Type: "toaster"}}
			},
			wantErr: "devices[0]",
		},
		{
			name: "empty device name",
			mutate: func(c *Config) {
				c.Devices = []DeviceConfig{{Name: "", Type: "light"}}
			},
			wantErr: "devices[0]",
		},
		{
			name: "duplicate device name",
			mutate: func(c *Config) {
				c.Devices = []DeviceConfig{
					{Name: "Lamp", Type: "light"},
					{Name: "Lamp", Type: "thermostat"},
				}
			},
			wantErr: "devices[1]: duplicate name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("GRAYLOGIC_SIM_LOG_LEVEL", "debug")
	t.Setenv("GRAYLOGIC_SIM_LOG_FILE", "/custom/log.txt")
	t.Setenv("GRAYLOGIC_SIM_DATABASE_PATH", "/custom/path.db")
	t.Setenv("GRAYLOGIC_SIM_MQTT_HOST", "mqtt.example.com")
	t.Setenv("GRAYLOGIC_SIM_MQTT_USERNAME", "testuser")
	t.Setenv("GRAYLOGIC_SIM_MQTT_PASSWORD", "testpass")
	t.Setenv("GRAYLOGIC_SIM_INFLUXDB_TOKEN", "secret-token")

	applyEnvOverrides(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.History.LogFile != "/custom/log.txt" {
		t.Errorf("History.LogFile = %q, want %q", cfg.History.LogFile, "/custom/log.txt")
	}
	if cfg.History.Database.Path != "/custom/path.db" {
		t.Errorf("History.Database.Path = %q, want %q", cfg.History.Database.Path, "/custom/path.db")
	}
	if cfg.MQTT.Broker.Host != "mqtt.example.com" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "mqtt.example.com")
	}
	if cfg.MQTT.Auth.Username != "testuser" {
		t.Errorf("MQTT.Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "testuser")
	}
	if cfg.MQTT.Auth.Password != "testpass" {
		t.Errorf("MQTT.Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "testpass")
	}
	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.MQTT.Enabled || cfg.InfluxDB.Enabled || cfg.History.Database.Enabled {
		t.Error("defaultConfig should leave optional backends disabled")
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("defaultConfig Logging.Output = %q, want stderr", cfg.Logging.Output)
	}
}
