// Package cmd provides CLI commands for facture.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/config"
	"github.com/plouvier/facture/pkg/store"
	"github.com/plouvier/facture/pkg/workspace"
)

// levelTrace sits below slog.LevelDebug, matching the fourth -d step.
const levelTrace = slog.LevelDebug - 4

var (
	cfgFile      string
	rootPath     string
	invoiceDir   string
	customerFile string
	settingsFile string
	buildDir     string
	debugCount   int

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "facture",
	Short: "Manage invoices and customers in a plain-file workspace",
	Long: `facture is a single-user invoicing tool backed by plain YAML files.

A workspace is a directory holding one file per invoice, a customer
document and a settings document. Invoices are immutable: a mistake is
fixed by a cancellation invoice, never by editing history.

Example:
  facture init
  facture invoice create
  facture stats month`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging, one -d per level: warn, info, debug, trace
		logLevel := slog.LevelWarn
		switch debugCount {
		case 0:
		case 1:
			logLevel = slog.LevelInfo
		case 2:
			logLevel = slog.LevelDebug
		default:
			logLevel = levelTrace
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)

		c, err := config.Load(cfgFile)
		exitOnError(err)
		cfg = c
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", "", "workspace root path (default is the current directory)")
	rootCmd.PersistentFlags().StringVar(&invoiceDir, "invoice-dir", "", "custom invoice directory")
	rootCmd.PersistentFlags().StringVar(&customerFile, "customer-file", "", "custom customer file")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings-file", "", "custom settings file")
	rootCmd.PersistentFlags().StringVar(&buildDir, "build-dir", "", "custom build directory")
	rootCmd.PersistentFlags().CountVarP(&debugCount, "debug", "d", "increase logging verbosity, repeatable")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(generateAllCmd)
}

// workspaceRoot resolves the root, flag first, then environment, then the
// current directory picked up by config.Load.
func workspaceRoot() string {
	if rootPath != "" {
		return rootPath
	}
	return cfg.Root
}

// workspaceOptions merges flag and environment overrides for the child paths.
func workspaceOptions() workspace.Options {
	opts := workspace.Options{
		InvoiceDir:   cfg.InvoiceDir,
		CustomerFile: cfg.CustomerFile,
		SettingsFile: cfg.SettingsFile,
		BuildDir:     cfg.BuildDir,
	}
	if invoiceDir != "" {
		opts.InvoiceDir = invoiceDir
	}
	if customerFile != "" {
		opts.CustomerFile = customerFile
	}
	if settingsFile != "" {
		opts.SettingsFile = settingsFile
	}
	if buildDir != "" {
		opts.BuildDir = buildDir
	}
	return opts
}

// openStore opens the workspace read-only and exits when it is missing.
// Every command except init goes through here.
func openStore() *store.Store {
	layout, err := workspace.Open(workspaceRoot(), workspaceOptions())
	exitOnError(err)
	return store.New(layout)
}

// Helper function to handle errors and exit.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error : %v\n", err)
		os.Exit(1)
	}
}
