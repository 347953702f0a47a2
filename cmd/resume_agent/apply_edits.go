package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/docx"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var applyEditsCmd = &cobra.Command{
	Use:   "apply-edits",
	Short: "Apply a gated edit plan to a .docx resume in place",
	Long: `Lints and gates the edit plan, then replaces the text of each addressed bullet paragraph while keeping
its formatting. Edits are addressed by bullet_id bookmark first and by old_bullet text second.

Nothing is written while any edit still needs user approval; pass --approve-all to approve every flagged edit.
The edited copy is written to --out together with a JSON manifest next to it.`,
	RunE: runApplyEdits,
}

var (
	applyPlan       string
	applyBase       string
	applyOut        string
	applyApproveAll bool
	applyRunID      string
)

func init() {
	applyEditsCmd.Flags().StringVar(&applyPlan, "plan", "", "Path to edit plan JSON (required)")
	applyEditsCmd.Flags().StringVar(&applyBase, "base", "", "Path to base .docx resume (required)")
	applyEditsCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Path to edited .docx (required, must differ from --base)")
	applyEditsCmd.Flags().BoolVar(&applyApproveAll, "approve-all", false, "Approve every edit flagged for review")
	applyEditsCmd.Flags().StringVar(&applyRunID, "run-id", "", "Run id recorded in the manifest (random if omitted)")

	for _, name := range []string{"plan", "base", "out"} {
		if err := applyEditsCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(applyEditsCmd)
}

func runApplyEdits(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	plan, err := schemas.LoadEditPlan(applyPlan)
	if err != nil {
		return fmt.Errorf("failed to load edit plan: %w", err)
	}

	// Edits addressed only by bullet_id are linted against the bookmarked text.
	base, err := docx.Open(applyBase)
	if err != nil {
		return fmt.Errorf("failed to open base resume: %w", err)
	}
	plan.Edits = base.ResolveOldBullets(plan.Edits)

	gated, report := validation.LintAndGate(*plan)
	if applyApproveAll {
		for i := range gated.Edits {
			if gated.Edits[i].NeedsUserOK {
				gated.Edits[i].UserApproved = true
			}
		}
	}
	if p := printer(cfg); p != nil {
		p.PrintLintReport(&report)
	}

	manifest, err := docx.ApplyEditsToFile(docx.ApplyRequest{
		BasePath:   applyBase,
		OutputPath: applyOut,
		Plan:       gated,
		RunID:      applyRunID,
	})
	if err != nil {
		return fmt.Errorf("failed to apply edits: %w", err)
	}

	result := manifest.Result
	log.Info("edits applied",
		zap.String("run_id", manifest.RunID),
		zap.String("out", applyOut),
		zap.Int("replaced", result.Replaced),
		zap.Int("missing", result.Missing),
		zap.Int("rejected", result.Rejected),
		zap.Int("conflicts", result.Conflicts))
	for _, o := range result.Outcomes {
		if o.DuplicateMatches > 0 {
			log.Warn("bullet text matched several paragraphs; first one edited",
				zap.Int("edit", o.Index), zap.Int("duplicate_matches", o.DuplicateMatches))
		}
	}

	if p := printer(cfg); p != nil {
		p.PrintApplyResult(&result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Replaced %d of %d edits (missing %d, rejected %d, conflicts %d)\n",
		result.Replaced, len(gated.Edits), result.Missing, result.Rejected, result.Conflicts)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", applyOut)
	_, _ = fmt.Fprintf(os.Stdout, "Manifest: %s\n", docx.ManifestPath(applyOut))
	return nil
}
