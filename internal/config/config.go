// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/docx"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/selection"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv
const (
	EnvPinned   = "RESUME_PINNED_EXPERIENCES"
	EnvLogLevel = "LOG_LEVEL"
	EnvName     = "ENV"
)

// DefaultEnv is the logger environment used when none is configured
const DefaultEnv = "local"

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JD             string `json:"jd,omitempty" yaml:"jd"`                           // Path to job description (.txt, .md, .html)
	ExperienceBank string `json:"experience_bank,omitempty" yaml:"experience_bank"` // Path to experience bank markdown
	OutDir         string `json:"out_dir,omitempty" yaml:"out_dir"`                 // Artifact directory for dry runs
	Template       string `json:"template,omitempty" yaml:"template"`               // Optional draft markdown template

	// Selection
	MaxExps     int              `json:"max_exps,omitempty" yaml:"max_exps"`
	MaxSnippets int              `json:"max_snippets,omitempty" yaml:"max_snippets"`
	TopK        int              `json:"top_k,omitempty" yaml:"top_k"`
	CoverageK   int              `json:"coverage_k,omitempty" yaml:"coverage_k"`
	Weights     *ranking.Weights `json:"weights,omitempty" yaml:"weights"`
	Pinned      []string         `json:"pinned,omitempty" yaml:"pinned"`

	// Tagging
	BookmarkPrefix  string `json:"bookmark_prefix,omitempty" yaml:"bookmark_prefix"`
	ReservePerGroup *int   `json:"reserve_per_group,omitempty" yaml:"reserve_per_group"`

	// Behavior
	Env      string `json:"env,omitempty" yaml:"env"`             // local, dev or prod
	LogLevel string `json:"log_level,omitempty" yaml:"log_level"` // debug, info, warn, error
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose"`     // Print detailed debug information
}

// Default returns a configuration with every default applied
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// ${VAR} references in YAML files are expanded from the environment.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides pins, log level and environment from variables.
// A set RESUME_PINNED_EXPERIENCES replaces any pins from the file.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvPinned); v != "" {
		c.Pinned = ParsePinned(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvName); v != "" {
		c.Env = v
	}
}

// ParsePinned splits a comma-separated list of experience ids
func ParsePinned(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.MaxExps <= 0 {
		c.MaxExps = selection.DefaultMaxExps
	}
	if c.MaxSnippets <= 0 {
		c.MaxSnippets = selection.DefaultMaxSnippets
	}
	if c.TopK <= 0 {
		c.TopK = parsing.DefaultTopK
	}
	if c.CoverageK <= 0 {
		c.CoverageK = parsing.DefaultCoverageK
	}
	if c.Weights == nil {
		w := ranking.DefaultWeights()
		c.Weights = &w
	}
	if c.BookmarkPrefix == "" {
		c.BookmarkPrefix = docx.DefaultPrefix
	}
	if c.ReservePerGroup == nil {
		n := docx.DefaultReservePerGroup
		c.ReservePerGroup = &n
	}
	if c.Env == "" {
		c.Env = DefaultEnv
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.MaxExps < 0 {
		return fmt.Errorf("config error: 'max_exps' must be non-negative")
	}
	if c.MaxSnippets < 0 {
		return fmt.Errorf("config error: 'max_snippets' must be non-negative")
	}
	if c.TopK < 0 || c.CoverageK < 0 {
		return fmt.Errorf("config error: 'top_k' and 'coverage_k' must be non-negative")
	}
	if c.ReservePerGroup != nil && *c.ReservePerGroup < 0 {
		return fmt.Errorf("config error: 'reserve_per_group' must be non-negative")
	}
	if w := c.Weights; w != nil {
		if w.OverlapMultiplier < 0 || w.HardSkillBonus < 0 || w.RecencyMaxBonus < 0 || w.PinnedBonus < 0 {
			return fmt.Errorf("config error: weights must be non-negative")
		}
		// One extra matched term must outweigh a single hard skill match plus
		// the flat recency and pinned bonuses. Hard skill bonuses accumulate
		// per match, so this does not bound experiences with many of them.
		if w.OverlapMultiplier <= w.HardSkillBonus+w.RecencyMaxBonus+w.PinnedBonus {
			return fmt.Errorf("config error: 'weights.overlap_multiplier' must exceed hard_skill_bonus + recency_max_bonus + pinned_bonus (%d), got %d",
				w.HardSkillBonus+w.RecencyMaxBonus+w.PinnedBonus, w.OverlapMultiplier)
		}
	}
	if c.BookmarkPrefix != "" && !prefixPattern.MatchString(c.BookmarkPrefix) {
		return fmt.Errorf("config error: 'bookmark_prefix' must be alphanumeric and start with a letter, got %q", c.BookmarkPrefix)
	}

	switch c.Env {
	case "", "local", "dev", "prod":
	default:
		return fmt.Errorf("config error: 'env' must be local, dev or prod, got %q", c.Env)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: 'log_level' must be debug, info, warn or error, got %q", c.LogLevel)
	}

	// Validate file paths exist (if specified)
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description not found: %s", c.JD)
		}
	}
	if c.ExperienceBank != "" {
		if _, err := os.Stat(c.ExperienceBank); os.IsNotExist(err) {
			return fmt.Errorf("config error: experience bank not found: %s", c.ExperienceBank)
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.ExperienceBank == "" {
		result.ExperienceBank = defaults.ExperienceBank
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.BookmarkPrefix == "" {
		result.BookmarkPrefix = defaults.BookmarkPrefix
	}
	if result.Env == "" {
		result.Env = defaults.Env
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.MaxExps == 0 {
		result.MaxExps = defaults.MaxExps
	}
	if result.MaxSnippets == 0 {
		result.MaxSnippets = defaults.MaxSnippets
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.CoverageK == 0 {
		result.CoverageK = defaults.CoverageK
	}

	// Pointer and slice fields: use default if unset
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.ReservePerGroup == nil {
		result.ReservePerGroup = defaults.ReservePerGroup
	}
	if len(result.Pinned) == 0 {
		result.Pinned = defaults.Pinned
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// SelectionOptions returns the scoring and snippet options for this configuration
func (c *Config) SelectionOptions() selection.Options {
	opts := selection.DefaultOptions()
	if c.Weights != nil {
		opts.Weights = *c.Weights
	}
	if c.MaxSnippets > 0 {
		opts.MaxSnippets = c.MaxSnippets
	}
	opts.Pinned = append([]string(nil), c.Pinned...)
	return opts
}

// TagOptions returns the bookmark tagging options for this configuration
func (c *Config) TagOptions() docx.TagOptions {
	opts := docx.DefaultTagOptions()
	if c.BookmarkPrefix != "" {
		opts.Prefix = c.BookmarkPrefix
	}
	if c.ReservePerGroup != nil {
		opts.ReservePerGroup = *c.ReservePerGroup
	}
	return opts
}
