package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultTimeout   = 20 * time.Minute
	defaultLogLevel  = "info"
	defaultLogOutput = "stdout"
	defaultDatadir   = ".snarkvm" // Will be prefixed with user's home directory
)

// Config holds the application configuration
type Config struct {
	Datadir      string
	Timeout      time.Duration
	VerifierOnly bool `mapstructure:"verifier-only"`
	Log          LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig() (*Config, error) {
	v := viper.New()

	// Get user's home directory for default datadir
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		userHomeDir = "."
	}
	defaultDatadirPath := filepath.Join(userHomeDir, defaultDatadir)

	v.SetDefault("datadir", defaultDatadirPath)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("verifier-only", false)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	flag.StringP("datadir", "d", defaultDatadirPath, "data directory for the parameter cache")
	flag.DurationP("timeout", "t", defaultTimeout, "global timeout for downloading all parameters (i.e. 10m or 1h)")
	flag.Bool("verifier-only", false, "download only the verifying keys and the genesis block")
	flag.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	flag.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "snarkvm-params\n\n")
		fmt.Fprintf(os.Stderr, "Downloads and verifies the snarkVM proving and verifying parameters.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: snarkvm-params [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  except for dashes (-) and dots (.) which are replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, SNARKVM_DATADIR or SNARKVM_LOG_LEVEL\n")
	}

	flag.CommandLine.SortFlags = false
	flag.Parse()

	v.SetEnvPrefix("SNARKVM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flag.CommandLine); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}
