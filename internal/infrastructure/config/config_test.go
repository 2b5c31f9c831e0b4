package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
device:
  id: "test-aircon"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
remote:
  vendor: "daikin"
  device: "/dev/lirc1"
engine:
  refresh_interval: 10
api:
  host: "0.0.0.0"
  port: 8081
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device.ID != "test-aircon" {
		t.Errorf("Device.ID = %q, want %q", cfg.Device.ID, "test-aircon")
	}

	if cfg.Remote.Vendor != "daikin" {
		t.Errorf("Remote.Vendor = %q, want %q", cfg.Remote.Vendor, "daikin")
	}

	if cfg.Remote.Device != "/dev/lirc1" {
		t.Errorf("Remote.Device = %q, want %q", cfg.Remote.Device, "/dev/lirc1")
	}

	if cfg.Engine.RefreshInterval != 10 {
		t.Errorf("Engine.RefreshInterval = %d, want 10", cfg.Engine.RefreshInterval)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// A minimal file leaves the defaults in place.
	content := `
device:
  id: "test-aircon"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Remote.Vendor != "panasonic" {
		t.Errorf("default Remote.Vendor = %q, want %q", cfg.Remote.Vendor, "panasonic")
	}
	if cfg.Engine.RefreshInterval != 30 {
		t.Errorf("default Engine.RefreshInterval = %d, want 30", cfg.Engine.RefreshInterval)
	}
	if cfg.WebSocket.Path != "/ws" {
		t.Errorf("default WebSocket.Path = %q, want %q", cfg.WebSocket.Path, "/ws")
	}
	if cfg.MQTT.Enabled {
		t.Error("MQTT should be disabled by default")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	content := `
device:
  id: "test-aircon"
remote:
  vendor: "panasonic"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("AIRCON_REMOTE_VENDOR", "hitachi")
	t.Setenv("AIRCON_DATABASE_PATH", "/tmp/override.db")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Remote.Vendor != "hitachi" {
		t.Errorf("Remote.Vendor = %q, want env override %q", cfg.Remote.Vendor, "hitachi")
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("Database.Path = %q, want env override %q", cfg.Database.Path, "/tmp/override.db")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(_ *Config) {},
			wantErr: false,
		},
		{
			name:    "empty device id",
			mutate:  func(c *Config) { c.Device.ID = "" },
			wantErr: true,
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "unknown vendor",
			mutate:  func(c *Config) { c.Remote.Vendor = "toshiba" },
			wantErr: true,
		},
		{
			name:    "vendor case insensitive",
			mutate:  func(c *Config) { c.Remote.Vendor = "Daikin" },
			wantErr: false,
		},
		{
			name:    "zero refresh interval",
			mutate:  func(c *Config) { c.Engine.RefreshInterval = 0 },
			wantErr: true,
		},
		{
			name:    "invalid api port",
			mutate:  func(c *Config) { c.API.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "invalid qos",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
