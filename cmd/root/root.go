// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Sandeep0076/budget-sage/internal/common"
	"github.com/Sandeep0076/budget-sage/internal/config"
	"github.com/Sandeep0076/budget-sage/internal/store"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	DataDir string
	Output  string
	Format  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Conf is the resolved application configuration, populated before any
	// command runs
	Conf *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-sage",
		Short: "A CLI tool to track bills, transactions and budgets.",
		Long: `budget-sage is a CLI tool for personal finance tracking.
It manages recurring bills, records transactions, scans receipts and
reports spending against budgets.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-sage!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Conf = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for all packages with package loggers
			store.SetLogger(Log)
			common.SetLogger(Log)

			// Ensure CSV delimiter is updated after config is loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			} else if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataDir, "data-dir", "d", "", "Data directory (default $HOME/.budget-sage/data)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "json", "Output format (json or xml)")
}

// DataDir resolves the effective data directory: the flag wins, then the
// configuration, then the store's built-in default.
func DataDir() string {
	if SharedFlags.DataDir != "" {
		return SharedFlags.DataDir
	}
	if Conf != nil {
		return Conf.Data.Directory
	}
	return ""
}

// Currency returns the configured default currency.
func Currency() string {
	if Conf != nil {
		return Conf.Currency.Default
	}
	return "EUR"
}
