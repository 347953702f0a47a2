// Package main implements the resume_agent CLI: JD profiling, evidence
// selection, edit-plan gating and in-place docx bullet editing.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "resume_agent",
	Short:         "Deterministic resume evidence and edit engine",
	Long:          "resume_agent profiles job descriptions, selects verbatim evidence from an experience bank, gates bullet edit plans for review and applies approved edits to a .docx resume in place.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	logLevel   string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed summaries")
}

// loadSettings merges the config file, environment and defaults. Flags
// read by individual commands are applied on top by the caller.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.Getenv)
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newLogger builds the zap logger described by cfg
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// printer returns a verbose-mode printer, or nil when verbose output is off
func printer(cfg *config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stdout)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
