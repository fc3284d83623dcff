// Package config loads the tool configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/helpmd/go-helpmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidPerPage  = errors.New("perPage must be between 1 and 250")
)

// Defaults applied by DefaultConfig and for zero-valued fields after load.
const (
	DefaultBaseURL      = "https://api.intercom.io"
	DefaultTokenEnv     = "INTERCOM_ACCESS_TOKEN"
	DefaultLocale       = "en"
	DefaultPerPage      = 25
	DefaultWorkspaceDir = "."
)

// Config holds all configuration for the sync tool.
type Config struct {
	Workspace     string `yaml:"workspace"`     // Local article directory
	BaseURL       string `yaml:"baseUrl"`       // API endpoint
	TokenEnv      string `yaml:"tokenEnv"`      // Env var holding the access token
	DefaultLocale string `yaml:"defaultLocale"` // Locale for articles without one
	PerPage       int    `yaml:"perPage"`       // Page size for article listing
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Workspace:     DefaultWorkspaceDir,
		BaseURL:       DefaultBaseURL,
		TokenEnv:      DefaultTokenEnv,
		DefaultLocale: DefaultLocale,
		PerPage:       DefaultPerPage,
	}
}

// Validate checks field values. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, u.Scheme)
	}
	if c.PerPage < 1 || c.PerPage > 250 {
		return fmt.Errorf("%w: got %d", ErrInvalidPerPage, c.PerPage)
	}
	return nil
}

// Token reads the access token from the configured environment variable.
func (c *Config) Token() string {
	return os.Getenv(c.TokenEnv)
}

// applyDefaults fills zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.Workspace == "" {
		c.Workspace = DefaultWorkspaceDir
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TokenEnv == "" {
		c.TokenEnv = DefaultTokenEnv
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = DefaultLocale
	}
	if c.PerPage == 0 {
		c.PerPage = DefaultPerPage
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-helpmd/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-helpmd", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
