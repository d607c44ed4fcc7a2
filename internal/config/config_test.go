package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultCompanyName, cfg.Debtor.Name)
	assert.Equal(t, DefaultCompanyIBAN, cfg.Debtor.IBAN)
	assert.Equal(t, DefaultCompanyBIC, cfg.Debtor.BIC)
	assert.Empty(t, cfg.ReportDir)
}

func TestLoadPartialFileKeepsDefaultsForUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_file: custom.log
debtor:
  name: ACME GmbH
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.log", cfg.LogFile)
	assert.Equal(t, "ACME GmbH", cfg.Debtor.Name)
	// Unset debtor fields fall back to the built-in profile.
	assert.Equal(t, DefaultCompanyIBAN, cfg.Debtor.IBAN)
	assert.Equal(t, DefaultCompanyBIC, cfg.Debtor.BIC)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debtor: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveDebtorOverridesPerField(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	profile := cfg.ResolveDebtor("Override Corp", "", "BNPAFRPP")
	assert.Equal(t, "Override Corp", profile.Name)
	assert.Equal(t, DefaultCompanyIBAN, profile.IBAN, "unset override keeps the configured value")
	assert.Equal(t, "BNPAFRPP", profile.BIC)

	// Resolution never mutates the configuration.
	assert.Equal(t, DefaultCompanyName, cfg.Debtor.Name)
}
