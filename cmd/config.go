package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "datavet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set datavet configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("data_path: %s\n", cfg.DataPath)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("eval_fraction: %.3f\n", cfg.EvalFraction)
		fmt.Printf("random_state: %d\n", cfg.RandomState)
		fmt.Printf("anomaly_injection: %t\n", cfg.AnomalyInjection)
		fmt.Printf("write_facets_html: %t\n", cfg.WriteFacetsHTML)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		fmt.Printf("log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_path":
			cfg.DataPath = val
		case "output_dir":
			cfg.OutputDir = val
		case "eval_fraction":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid eval_fraction: %v (must be a float in [0, 1])", val)
			}
			cfg.EvalFraction = f
		case "random_state":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for random_state: %w", err)
			}
			cfg.RandomState = i
		case "anomaly_injection":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for anomaly_injection: %w", err)
			}
			cfg.AnomalyInjection = b
		case "write_facets_html":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for write_facets_html: %w", err)
			}
			cfg.WriteFacetsHTML = b
		case "log_level":
			switch val {
			case "debug", "info", "warn", "warning", "error":
				cfg.LogLevel = val
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn, or error)", val)
			}
		case "log_format":
			switch val {
			case "text", "json":
				cfg.LogFormat = val
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
