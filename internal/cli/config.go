package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration
type Config struct {
	DefaultProfile string             `json:"default_profile" yaml:"default_profile"`
	Profiles       map[string]Profile `json:"profiles" yaml:"profiles"`
}

// Profile represents a configuration profile for different environments.
// Tokens are the provider session carried between runs.
type Profile struct {
	Name         string    `json:"name" yaml:"name"`
	APIURL       string    `json:"api_url" yaml:"api_url"`
	AccessToken  string    `json:"access_token,omitempty" yaml:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	TokenExpiry  time.Time `json:"token_expiry,omitempty" yaml:"token_expiry,omitempty"`
	UserID       string    `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Email        string    `json:"email,omitempty" yaml:"email,omitempty"`
}

// validateConfigPath validates that the config path is safe
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid config path: path traversal not allowed")
	}

	if !filepath.IsAbs(cleanPath) {
		return fmt.Errorf("invalid config path: must be absolute path")
	}

	return nil
}

// LoadConfig loads the configuration from file
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	config := &Config{
		Profiles: make(map[string]Profile),
	}

	if validateErr := validateConfigPath(configPath); validateErr != nil {
		return nil, fmt.Errorf("config path validation failed: %w", validateErr)
	}

	// If config file doesn't exist, return empty config
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return config, nil
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Path is validated by validateConfigPath
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to file
func SaveConfig(config *Config) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if validateErr := validateConfigPath(configPath); validateErr != nil {
		return fmt.Errorf("config path validation failed: %w", validateErr)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(configPath), 0750); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetCurrentProfile returns the current active profile
func GetCurrentProfile() (*Profile, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	profileName := config.DefaultProfile
	if profileName == "" {
		profileName = "default"
	}

	// Check for environment override
	if envProfile := viper.GetString("profile"); envProfile != "" {
		profileName = envProfile
	}

	profile, exists := config.Profiles[profileName]
	if !exists {
		return nil, fmt.Errorf("profile '%s' not found", profileName)
	}

	return &profile, nil
}

// AddProfile adds a new profile to the configuration
func AddProfile(profile Profile) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	config.Profiles[profile.Name] = profile

	// Set as default if it's the first profile
	if config.DefaultProfile == "" {
		config.DefaultProfile = profile.Name
	}

	return SaveConfig(config)
}

// RemoveProfile removes a profile from the configuration
func RemoveProfile(profileName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, exists := config.Profiles[profileName]; !exists {
		return fmt.Errorf("profile '%s' not found", profileName)
	}

	delete(config.Profiles, profileName)

	if config.DefaultProfile == profileName {
		config.DefaultProfile = ""
		for name := range config.Profiles {
			config.DefaultProfile = name
			break
		}
	}

	return SaveConfig(config)
}

// SetCurrentProfile sets the default profile
func SetCurrentProfile(profileName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, exists := config.Profiles[profileName]; !exists {
		return fmt.Errorf("profile '%s' not found", profileName)
	}

	config.DefaultProfile = profileName
	return SaveConfig(config)
}

// ListProfiles returns all available profiles
func ListProfiles() ([]Profile, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(config.Profiles))
	for _, profile := range config.Profiles {
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// saveProfileIdentity records the signed-in account on the profile so status
// and profile listings work without decoding the stored token.
func saveProfileIdentity(profileName, userID, email string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}
	profile := config.Profiles[profileName]
	profile.Name = profileName
	profile.UserID = userID
	profile.Email = email
	config.Profiles[profileName] = profile
	if config.DefaultProfile == "" {
		config.DefaultProfile = profileName
	}
	return SaveConfig(config)
}

// profileTokenStore persists provider tokens in the active profile so the
// session survives between runs.
type profileTokenStore struct {
	profileName string
}

func newProfileTokenStore(profileName string) *profileTokenStore {
	if profileName == "" {
		profileName = "default"
	}
	return &profileTokenStore{profileName: profileName}
}

func (s *profileTokenStore) LoadToken() (*oauth2.Token, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	profile, exists := config.Profiles[s.profileName]
	if !exists || profile.AccessToken == "" {
		return nil, nil
	}
	return &oauth2.Token{
		AccessToken:  profile.AccessToken,
		RefreshToken: profile.RefreshToken,
		TokenType:    profile.TokenType,
		Expiry:       profile.TokenExpiry,
	}, nil
}

func (s *profileTokenStore) SaveToken(token *oauth2.Token) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}
	profile := config.Profiles[s.profileName]
	profile.Name = s.profileName
	profile.AccessToken = token.AccessToken
	profile.RefreshToken = token.RefreshToken
	profile.TokenType = token.TokenType
	profile.TokenExpiry = token.Expiry
	config.Profiles[s.profileName] = profile
	if config.DefaultProfile == "" {
		config.DefaultProfile = s.profileName
	}
	return SaveConfig(config)
}

func (s *profileTokenStore) ClearToken() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	profile, exists := config.Profiles[s.profileName]
	if !exists {
		return nil
	}
	profile.AccessToken = ""
	profile.RefreshToken = ""
	profile.TokenType = ""
	profile.TokenExpiry = time.Time{}
	profile.UserID = ""
	profile.Email = ""
	config.Profiles[s.profileName] = profile
	return SaveConfig(config)
}
