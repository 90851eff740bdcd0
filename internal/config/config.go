package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultEndpoint     = "http://127.0.0.1:8000"
	DefaultClipboard    = "system"
	DefaultCopyFeedback = 2000 * time.Millisecond
)

type Profile struct {
	Endpoint         string `json:"endpoint"`
	ValidatorProfile string `json:"validator_profile,omitempty"`
	Clipboard        string `json:"clipboard,omitempty"`
	CopyFeedbackMS   int    `json:"copy_feedback_ms,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	path           string
}

// DefaultProfile is the profile written on first start.
func DefaultProfile() Profile {
	return Profile{
		Endpoint:  DefaultEndpoint,
		Clipboard: DefaultClipboard,
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the config at configPath, creating a default one if
// the file does not exist yet.
func LoadConfigFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// Dir returns the directory holding the config file and the log file.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (c *Config) IsValid() bool {
	return c.currentProfile != nil && c.currentProfile.Endpoint != ""
}

func (c *Config) GetEndpoint() string {
	if c.currentProfile == nil || c.currentProfile.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.currentProfile.Endpoint
}

func (c *Config) GetValidatorProfile() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.ValidatorProfile
}

func (c *Config) GetClipboard() string {
	if c.currentProfile == nil || c.currentProfile.Clipboard == "" {
		return DefaultClipboard
	}
	return c.currentProfile.Clipboard
}

func (c *Config) GetCopyFeedback() time.Duration {
	if c.currentProfile == nil || c.currentProfile.CopyFeedbackMS <= 0 {
		return DefaultCopyFeedback
	}
	return time.Duration(c.currentProfile.CopyFeedbackMS) * time.Millisecond
}

// Override replaces fields of the active profile for this run only.
// Empty values leave the stored setting in place. Nothing is saved.
func (c *Config) Override(endpoint, validatorProfile, clipboard string) {
	if c.currentProfile == nil {
		p := DefaultProfile()
		c.currentProfile = &p
	}
	if endpoint != "" {
		c.currentProfile.Endpoint = endpoint
	}
	if validatorProfile != "" {
		c.currentProfile.ValidatorProfile = validatorProfile
	}
	if clipboard != "" {
		c.currentProfile.Clipboard = clipboard
	}
}

func getConfigPath() (string, error) {
	var configDir string

	// Use TEXTVALIDATOR_HOME if set, otherwise use user's home directory
	if home := os.Getenv("TEXTVALIDATOR_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".textvalidator", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": DefaultProfile(),
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
