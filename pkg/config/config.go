// Package config provides configuration management for the invoicing tool.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration. Every field has a
// matching command-line flag which, when set, takes precedence.
type Config struct {
	Root         string
	InvoiceDir   string
	CustomerFile string
	SettingsFile string
	BuildDir     string
	Mistral      MistralConfig
}

// MistralConfig represents Mistral API configuration. A key set here
// overrides the one stored in the workspace settings document.
type MistralConfig struct {
	APIKey string
	APIURL string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	root := os.Getenv("FACTURE_ROOT")
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve current directory: %w", err)
		}
		root = cwd
	}

	config := &Config{
		Root:         root,
		InvoiceDir:   os.Getenv("FACTURE_INVOICE_DIR"),
		CustomerFile: os.Getenv("FACTURE_CUSTOMER_FILE"),
		SettingsFile: os.Getenv("FACTURE_SETTINGS_FILE"),
		BuildDir:     os.Getenv("FACTURE_BUILD_DIR"),
		Mistral: MistralConfig{
			APIKey: os.Getenv("MISTRAL_API_KEY"),
			APIURL: os.Getenv("MISTRAL_API_URL"),
		},
	}

	return config, nil
}
