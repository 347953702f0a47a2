package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lintPlanCmd = &cobra.Command{
	Use:   "lint-plan",
	Short: "Lint an edit plan and gate risky edits for approval",
	Long:  "Compares every old/new bullet pair of an edit plan, flags specificity loss, buzzword drift, new metrics and new acronyms, and writes <plan>.gated.json plus plan_lint_report.json. Edits with specificity loss or buzzword drift get needs_user_ok set.",
	RunE:  runLintPlan,
}

var (
	lintPlanPath string
	lintOutDir   string
)

func init() {
	lintPlanCmd.Flags().StringVar(&lintPlanPath, "plan", "", "Path to edit plan JSON (required)")
	lintPlanCmd.Flags().StringVar(&lintOutDir, "out-dir", "", "Directory for the gated plan and report (defaults to the plan's directory)")

	if err := lintPlanCmd.MarkFlagRequired("plan"); err != nil {
		panic(fmt.Sprintf("failed to mark plan flag as required: %v", err))
	}

	rootCmd.AddCommand(lintPlanCmd)
}

// gatedPlanPath returns <dir>/<plan stem>.gated.json
func gatedPlanPath(dir, plan string) string {
	base := filepath.Base(plan)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".gated.json")
}

func runLintPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	plan, err := schemas.LoadEditPlan(lintPlanPath)
	if err != nil {
		return fmt.Errorf("failed to load edit plan: %w", err)
	}

	gated, report := validation.LintAndGate(*plan)

	// Validate output against schema (non-fatal)
	if err := schemas.ValidateValue(schemafiles.PlanLintReport, report); err != nil {
		log.Warn("lint report failed schema validation", zap.Error(err))
	}

	dir := lintOutDir
	if dir == "" {
		dir = filepath.Dir(lintPlanPath)
	}
	if err := writeJSONOutput(gatedPlanPath(dir, lintPlanPath), gated); err != nil {
		return err
	}
	if err := writeJSONOutput(filepath.Join(dir, "plan_lint_report.json"), report); err != nil {
		return err
	}

	log.Info("plan linted",
		zap.Int("total_edits", report.Summary.TotalEdits),
		zap.Int("flagged_edits", report.Summary.FlaggedEdits),
		zap.String("status", report.Summary.Status))

	if p := printer(cfg); p != nil {
		p.PrintLintReport(&report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Flagged %d of %d edits\n", report.Summary.FlaggedEdits, report.Summary.TotalEdits)
	if report.Summary.Status == types.GateBlocked {
		_, _ = fmt.Fprintf(os.Stdout, "Status: blocked (%d edits need user approval)\n", report.Summary.BlockedEdits)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Status: ready\n")
	}
	return nil
}
