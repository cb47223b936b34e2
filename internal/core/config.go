// Package core contains the business logic for umsebenzi: the connection
// configuration store and the interactive project and task flows that sit
// between the prompts and the remote API.
package core

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// ConfigFileName is the name of the persisted configuration file.
const ConfigFileName = "umsebenzi.toml"

// ErrConfigUnavailable is returned when the configuration file is missing,
// unreadable or incomplete. Commands that need the network cannot continue.
var ErrConfigUnavailable = errors.New("configuration unavailable, run `umsebenzi config add`")

// ConfigurationManager loads and saves the host and credential pair.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	SaveConfig(cfg *models.Config) error
	ValidateConfig(cfg *models.Config) error
	Path() string
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// and writing a TOML file.
type viperConfigManager struct {
	path string
}

// NewConfigurationManager creates a ConfigurationManager for the file at path.
// An empty path resolves to DefaultConfigPath.
func NewConfigurationManager(path string) ConfigurationManager {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &viperConfigManager{path: path}
}

// DefaultConfigPath returns UMSEBENZI_CONFIG when set, otherwise
// <user config dir>/umsebenzi/umsebenzi.toml. If the user config dir cannot
// be determined the file is looked up in the working directory.
func DefaultConfigPath() string {
	if p := os.Getenv("UMSEBENZI_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(dir, "umsebenzi", ConfigFileName)
}

func (cm *viperConfigManager) Path() string {
	return cm.path
}

func (cm *viperConfigManager) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(cm.path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("UMSEBENZI")
	v.AutomaticEnv()
	v.SetDefault("auth_scheme", models.DefaultAuthScheme)
	return v
}

// LoadConfig reads the configuration file. Environment variables
// UMSEBENZI_HOST, UMSEBENZI_CREDENTIALS and UMSEBENZI_AUTH_SCHEME override the
// file values. Any failure wraps ErrConfigUnavailable.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	v := cm.newViper()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is acceptable only if the environment supplies
		// everything.
		if !isNotFound(err) || v.GetString("host") == "" || v.GetString("credentials") == "" {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrConfigUnavailable, cm.path, err)
		}
	}

	cfg := &models.Config{
		Host:        strings.TrimSpace(v.GetString("host")),
		Credentials: strings.TrimSpace(v.GetString("credentials")),
		AuthScheme:  strings.TrimSpace(v.GetString("auth_scheme")),
	}
	if err := cm.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	return cfg, nil
}

func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

// SaveConfig validates cfg and writes it, creating the parent directory.
func (cm *viperConfigManager) SaveConfig(cfg *models.Config) error {
	if err := cm.ValidateConfig(cfg); err != nil {
		return err
	}
	if dir := filepath.Dir(cm.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	// Two concurrent `config add` runs must not interleave their writes.
	unlock, err := lockFile(cm.path + ".lock")
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("host", cfg.Host)
	v.Set("credentials", cfg.Credentials)
	if cfg.AuthScheme != "" && cfg.AuthScheme != models.DefaultAuthScheme {
		v.Set("auth_scheme", cfg.AuthScheme)
	}
	if err := v.WriteConfigAs(cm.path); err != nil {
		return fmt.Errorf("writing %s: %w", cm.path, err)
	}
	// The file holds a credential.
	if err := os.Chmod(cm.path, 0o600); err != nil {
		return fmt.Errorf("restricting %s: %w", cm.path, err)
	}
	return nil
}

// ValidateConfig checks that the host is an absolute http(s) URL and that a
// token is present.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string
	if err := ValidateHost(cfg.Host); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.Credentials == "" {
		errs = append(errs, "credentials must not be empty")
	}
	if strings.ContainsAny(cfg.AuthScheme, " \t") {
		errs = append(errs, fmt.Sprintf("auth_scheme %q must be a single word", cfg.AuthScheme))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ValidateHost reports whether host is usable as the API base URL.
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host must not be empty")
	}
	u, err := url.Parse(host)
	if err != nil {
		return fmt.Errorf("host %q is not a valid URL: %v", host, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("host %q must be an absolute http(s) URL", host)
	}
	return nil
}
