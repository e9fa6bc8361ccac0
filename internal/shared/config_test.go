package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.SoundCloud.APIURL != "https://api.soundcloud.com" {
			t.Errorf("expected api url https://api.soundcloud.com, got %s", config.SoundCloud.APIURL)
		}

		if config.SoundCloud.ClientID != "your_soundcloud_client_id" {
			t.Errorf("expected placeholder client_id, got %s", config.SoundCloud.ClientID)
		}

		if !config.Player.Enabled {
			t.Error("expected player to be enabled by default")
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.SoundCloud.APIURL != DefaultConfig().SoundCloud.APIURL {
			t.Errorf("created config api url doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[soundcloud]
api_url = "http://localhost:9090"
client_id = "abc123"
requests_per_second = 2.5

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.SoundCloud.APIURL != "http://localhost:9090" {
			t.Errorf("expected api url http://localhost:9090, got %s", config.SoundCloud.APIURL)
		}
		if config.SoundCloud.ClientID != "abc123" {
			t.Errorf("expected client_id abc123, got %s", config.SoundCloud.ClientID)
		}
		if config.SoundCloud.RequestsPerSecond != 2.5 {
			t.Errorf("expected 2.5 requests per second, got %v", config.SoundCloud.RequestsPerSecond)
		}
		if !config.Player.Enabled {
			t.Error("missing [player] section should keep the default")
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Log.Level)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("LoadConfig Invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[soundcloud\napi_url ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("ResolveConfigPath Existing File", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		got, err := ResolveConfigPath(configPath)
		if err != nil {
			t.Fatalf("ResolveConfigPath() error = %v", err)
		}
		if got != configPath {
			t.Errorf("expected %s, got %s", configPath, got)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tc := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) { c.SoundCloud.ClientID = "abc" }},
		{name: "placeholder client id", mutate: func(c *Config) {}, wantErr: ErrMissingCredentials},
		{name: "empty client id", mutate: func(c *Config) { c.SoundCloud.ClientID = "" }, wantErr: ErrMissingCredentials},
		{name: "empty api url", mutate: func(c *Config) {
			c.SoundCloud.ClientID = "abc"
			c.SoundCloud.APIURL = ""
		}, wantErr: ErrInvalidConfig},
		{name: "negative rate", mutate: func(c *Config) {
			c.SoundCloud.ClientID = "abc"
			c.SoundCloud.RequestsPerSecond = -1
		}, wantErr: ErrInvalidConfig},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() unexpected error %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteClientID(t *testing.T) {
	t.Run("creates file from example", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := WriteClientID(configPath, "fresh-id"); err != nil {
			t.Fatalf("WriteClientID() error = %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.SoundCloud.ClientID != "fresh-id" {
			t.Errorf("expected client_id fresh-id, got %s", config.SoundCloud.ClientID)
		}
		if config.SoundCloud.APIURL != DefaultConfig().SoundCloud.APIURL {
			t.Error("other keys should keep their example values")
		}
	})

	t.Run("replaces existing value", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		body := "[soundcloud]\napi_url = \"http://x\"\nclient_id = \"old\"\n"
		if err := os.WriteFile(configPath, []byte(body), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if err := WriteClientID(configPath, "new"); err != nil {
			t.Fatalf("WriteClientID() error = %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.SoundCloud.ClientID != "new" || config.SoundCloud.APIURL != "http://x" {
			t.Errorf("unexpected config %+v", config.SoundCloud)
		}
	})

	t.Run("rejects empty id", func(t *testing.T) {
		err := WriteClientID(filepath.Join(t.TempDir(), "config.toml"), "")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("file without client_id key", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[log]\nlevel = \"info\"\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if err := WriteClientID(configPath, "x"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
