package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataPath         string  `mapstructure:"data_path" yaml:"data_path"`
	OutputDir        string  `mapstructure:"output_dir" yaml:"output_dir"`
	EvalFraction     float64 `mapstructure:"eval_fraction" yaml:"eval_fraction"`
	RandomState      int64   `mapstructure:"random_state" yaml:"random_state"`
	AnomalyInjection bool    `mapstructure:"anomaly_injection" yaml:"anomaly_injection"`
	WriteFacetsHTML  bool    `mapstructure:"write_facets_html" yaml:"write_facets_html"`
	LogLevel         string  `mapstructure:"log_level" yaml:"log_level"`
	LogFormat        string  `mapstructure:"log_format" yaml:"log_format"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.datavet/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datavet")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flag overrides happen at the
// command layer.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAVET")
	v.AutomaticEnv()

	v.SetDefault("data_path", filepath.Join("data", "adult.data"))
	v.SetDefault("output_dir", "outputs")
	v.SetDefault("eval_fraction", 0.2)
	v.SetDefault("random_state", 42)
	v.SetDefault("anomaly_injection", true)
	v.SetDefault("write_facets_html", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datavet")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// Missing config files are fine; defaults cover everything.
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
