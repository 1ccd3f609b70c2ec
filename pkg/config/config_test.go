package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FACTURE_ROOT", "")
	t.Setenv("FACTURE_INVOICE_DIR", "")
	t.Setenv("FACTURE_CUSTOMER_FILE", "")
	t.Setenv("FACTURE_SETTINGS_FILE", "")
	t.Setenv("FACTURE_BUILD_DIR", "")
	t.Setenv("MISTRAL_API_KEY", "")
	t.Setenv("MISTRAL_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, cwd, cfg.Root)
	assert.Empty(t, cfg.InvoiceDir)
	assert.Empty(t, cfg.CustomerFile)
	assert.Empty(t, cfg.SettingsFile)
	assert.Empty(t, cfg.BuildDir)
	assert.Empty(t, cfg.Mistral.APIKey)
	assert.Empty(t, cfg.Mistral.APIURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FACTURE_ROOT", "/srv/invoicing")
	t.Setenv("FACTURE_INVOICE_DIR", "/srv/invoicing/bills")
	t.Setenv("FACTURE_CUSTOMER_FILE", "/srv/invoicing/clients.yaml")
	t.Setenv("FACTURE_SETTINGS_FILE", "/srv/invoicing/conf.yaml")
	t.Setenv("FACTURE_BUILD_DIR", "/tmp/facture-build")
	t.Setenv("MISTRAL_API_KEY", "secret")
	t.Setenv("MISTRAL_API_URL", "http://localhost:9999")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/invoicing", cfg.Root)
	assert.Equal(t, "/srv/invoicing/bills", cfg.InvoiceDir)
	assert.Equal(t, "/srv/invoicing/clients.yaml", cfg.CustomerFile)
	assert.Equal(t, "/srv/invoicing/conf.yaml", cfg.SettingsFile)
	assert.Equal(t, "/tmp/facture-build", cfg.BuildDir)
	assert.Equal(t, "secret", cfg.Mistral.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.Mistral.APIURL)
}

func TestLoadEnvFile(t *testing.T) {
	// t.Setenv registers the restore; godotenv only fills vars that are
	// truly unset, so clear them afterwards
	t.Setenv("FACTURE_ROOT", "placeholder")
	t.Setenv("MISTRAL_API_KEY", "placeholder")
	require.NoError(t, os.Unsetenv("FACTURE_ROOT"))
	require.NoError(t, os.Unsetenv("MISTRAL_API_KEY"))

	envPath := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(envPath,
		[]byte("FACTURE_ROOT=/from/env/file\nMISTRAL_API_KEY=file-key\n"), 0o644))

	cfg, err := Load(envPath)
	require.NoError(t, err)

	assert.Equal(t, "/from/env/file", cfg.Root)
	assert.Equal(t, "file-key", cfg.Mistral.APIKey)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load .env file")
}
