package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "datavet/internal/config"
	"datavet/internal/logging"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile       string
	debug         bool
	flagLogFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "datavet",
	Short: "datavet: profile, schema-check, and validate census CSV partitions",
	Long: `datavet loads a census income CSV, splits it into train and eval partitions,
computes per-feature statistics, infers a schema from the training side, and
validates the eval side against it. Artifacts are written as protobuf text
files that downstream tools (and the show command) can read back.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.datavet/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format, text or json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: built-in defaults still let every command run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{LogLevel: "info", LogFormat: "text"}
	}
	cfg = c

	// Apply CLI overrides if provided
	level := logging.ParseLevel(cfg.LogLevel)
	if debug {
		level = slog.LevelDebug
	}
	format := cfg.LogFormat
	if rootCmd.PersistentFlags().Changed("log-format") {
		format = flagLogFormat
	}
	logging.Init(level, format)
}
