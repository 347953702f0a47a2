package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the deterministic dry-run pipeline end-to-end",
	Long: `Orchestrates the dry run: profile_jd -> index_evidence -> select_evidence -> coverage_report -> render_draft.

Writes jd_profile.json, evidence_index.json, selected_evidence.json, lint_report.json and tailored_resume.md
into --out-dir (default runs/dry_run/<UTC timestamp>). Configuration can be loaded with --config;
command-line flags override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runJD       string
	runBank     string
	runOutDir   string
	runMaxExps  int
	runSteps    []string
	runTemplate string
	runID       string
)

func init() {
	runCommand.Flags().StringVar(&runJD, "jd", "", "Path to job description file")
	runCommand.Flags().StringVar(&runBank, "bank", "", "Path to experience bank (.md or .docx)")
	runCommand.Flags().StringVar(&runOutDir, "out-dir", "", "Artifact directory (its parent must exist)")
	runCommand.Flags().IntVar(&runMaxExps, "max-exps", 0, "Maximum number of experiences to select")
	runCommand.Flags().StringSliceVar(&runSteps, "steps", nil, "Only run these steps and their dependencies ("+strings.Join(steps.Order, ", ")+")")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Path to a draft markdown template")
	runCommand.Flags().StringVar(&runID, "run-id", "", "Run id recorded in artifacts (random if omitted)")

	// --jd and --bank are validated after merging config

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: config file, environment and defaults
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("jd") {
		cfg.JD = runJD
	}
	if cmd.Flags().Changed("bank") {
		cfg.ExperienceBank = runBank
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = runOutDir
	}
	if cmd.Flags().Changed("max-exps") {
		cfg.MaxExps = runMaxExps
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = runTemplate
	}

	// Step 3: Validate required fields
	if cfg.JD == "" {
		return fmt.Errorf("--jd must be provided (via flag or config)")
	}
	if cfg.ExperienceBank == "" {
		return fmt.Errorf("--bank must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := pipeline.RunOptions{
		MaxExps:      cfg.MaxExps,
		TopK:         cfg.TopK,
		CoverageK:    cfg.CoverageK,
		Selection:    cfg.SelectionOptions(),
		TemplatePath: cfg.Template,
		Steps:        runSteps,
		RunID:        runID,
		Logger:       log,
	}
	if cfg.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", e.Step, e.Message)
		}
	}

	art, dir, err := pipeline.Run(cfg.JD, cfg.ExperienceBank, cfg.OutDir, opts)
	if err != nil {
		return err
	}

	if p := printer(cfg); p != nil {
		p.PrintJDProfile(art.JDProfile)
		p.PrintSelectedEvidence(art.SelectedEvidence)
		p.PrintCoverage(art.Coverage)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run %s complete\n", art.RunID)
	_, _ = fmt.Fprintf(os.Stdout, "Artifacts: %s\n", dir)
	return nil
}
