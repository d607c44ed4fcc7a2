// =============================================================================
// CSV to SEPA XML Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration and
// resolving the debtor (sending party) profile.
//
// CONFIGURATION FILE (config.yaml, optional):
//   log_file:   path of the rotating log file
//   report_dir: directory for rejection reports (default: next to the input)
//   debtor:     default sending-party name / IBAN / BIC
//
// Every setting has a default, so the tool runs without any configuration
// file present. CLI flags override the configured debtor per invocation;
// unset flags fall back field by field to the configured defaults. No
// validation is performed on overrides here - validating the debtor is the
// caller's responsibility before building a document.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULT DEBTOR PROFILE
// =============================================================================

// Default sending-party values, used when neither the configuration file
// nor the CLI provides an override.
const (
	DefaultCompanyName = "Your Company Name"
	DefaultCompanyIBAN = "DE89370400440532013000"
	DefaultCompanyBIC  = "COBADEFFXXX"
)

// DefaultLogFile is where the converter logs when no log_file is configured.
const DefaultLogFile = "sepa_converter.log"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// LogFile is the path of the rotating log file.
	// Default: "sepa_converter.log"
	LogFile string `yaml:"log_file"`

	// ReportDir is the directory where rejection reports are written.
	// Empty means "same directory as the input file".
	ReportDir string `yaml:"report_dir"`

	// Debtor holds the default sending-party profile.
	Debtor DebtorProfile `yaml:"debtor"`
}

// DebtorProfile identifies the sending party of a credit transfer. It is
// resolved once per conversion and immutable for the duration of one
// document build.
type DebtorProfile struct {
	Name string `yaml:"name"`
	IBAN string `yaml:"iban"`
	BIC  string `yaml:"bic"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file at path. A missing file is not an
// error: the defaults are returned so the converter works out of the box.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in every unset option.
func applyDefaults(cfg *Config) {
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.Debtor.Name == "" {
		cfg.Debtor.Name = DefaultCompanyName
	}
	if cfg.Debtor.IBAN == "" {
		cfg.Debtor.IBAN = DefaultCompanyIBAN
	}
	if cfg.Debtor.BIC == "" {
		cfg.Debtor.BIC = DefaultCompanyBIC
	}
}

// =============================================================================
// DEBTOR RESOLUTION
// =============================================================================

// ResolveDebtor applies per-invocation overrides on top of the configured
// defaults. Any empty override keeps the configured value.
func (c *Config) ResolveDebtor(name, iban, bic string) DebtorProfile {
	profile := c.Debtor
	if name != "" {
		profile.Name = name
	}
	if iban != "" {
		profile.IBAN = iban
	}
	if bic != "" {
		profile.BIC = bic
	}
	return profile
}
