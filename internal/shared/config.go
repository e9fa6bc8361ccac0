package shared

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

//go:embed config.example.toml
var exampleConf []byte

// XDGConfigName is the config path relative to the XDG config directories.
const XDGConfigName = "scplay/config.toml"

const placeholderClientID = "your_soundcloud_client_id"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	SoundCloud SoundCloudConfig `toml:"soundcloud"`
	Player     PlayerConfig     `toml:"player"`
	Log        LogConfig        `toml:"log"`
}

// SoundCloudConfig contains the API endpoint and the static credential token.
type SoundCloudConfig struct {
	APIURL            string  `toml:"api_url"`
	ClientID          string  `toml:"client_id"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// PlayerConfig toggles audio output.
type PlayerConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// ResolveConfigPath returns path when it exists, otherwise the first XDG config file named [XDGConfigName].
//
// Returns [ErrMissingConfig] when neither is present.
func ResolveConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	found, err := xdg.SearchConfigFile(XDGConfigName)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingConfig, path)
	}
	return found, nil
}

// DefaultConfigPath returns the XDG location a new config file is written to.
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile(XDGConfigName)
}

// Validate reports whether the config can reach the API.
func (c *Config) Validate() error {
	if c.SoundCloud.APIURL == "" {
		return fmt.Errorf("%w: soundcloud.api_url is empty", ErrInvalidConfig)
	}
	if c.SoundCloud.ClientID == "" || c.SoundCloud.ClientID == placeholderClientID {
		return fmt.Errorf("%w: soundcloud.client_id is not set", ErrMissingCredentials)
	}
	if c.SoundCloud.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: soundcloud.requests_per_second must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

var clientIDLine = regexp.MustCompile(`(?m)^(\s*client_id\s*=\s*)"[^"]*"`)

// WriteClientID rewrites the client_id value of the config file at path, creating the file from the example when absent.
func WriteClientID(path, clientID string) error {
	if clientID == "" {
		return fmt.Errorf("%w: client id is empty", ErrInvalidArgument)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data = exampleConf
	} else if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if !clientIDLine.Match(data) {
		return fmt.Errorf("%w: no client_id key in %s", ErrInvalidConfig, path)
	}
	updated := clientIDLine.ReplaceAll(data, []byte(fmt.Sprintf(`${1}%q`, clientID)))

	if err := os.WriteFile(path, updated, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
