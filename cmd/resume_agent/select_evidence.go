package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
	"github.com/spf13/cobra"
)

var selectEvidenceCmd = &cobra.Command{
	Use:   "select-evidence",
	Short: "Select the experiences and snippets that best match a job description",
	Long:  "Scores every experience of the bank against the JD keyword profile and writes selected_evidence.json with up to three verbatim snippets per selected experience. Experiences with no keyword overlap are never selected.",
	RunE:  runSelectEvidence,
}

var (
	selectJD      string
	selectBank    string
	selectOut     string
	selectMaxExps int
)

func init() {
	selectEvidenceCmd.Flags().StringVar(&selectJD, "jd", "", "Path to job description file (required)")
	selectEvidenceCmd.Flags().StringVar(&selectBank, "bank", "", "Path to experience bank (.md or .docx) (required)")
	selectEvidenceCmd.Flags().StringVarP(&selectOut, "out", "o", "", "Path to output selected_evidence.json (prints to stdout if omitted)")
	selectEvidenceCmd.Flags().IntVar(&selectMaxExps, "max-exps", 0, "Maximum number of experiences to select")

	if err := selectEvidenceCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}
	if err := selectEvidenceCmd.MarkFlagRequired("bank"); err != nil {
		panic(fmt.Sprintf("failed to mark bank flag as required: %v", err))
	}

	rootCmd.AddCommand(selectEvidenceCmd)
}

func runSelectEvidence(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-exps") {
		cfg.MaxExps = selectMaxExps
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	in, err := pipeline.LoadInputs(selectJD, selectBank)
	if err != nil {
		return err
	}
	art, err := pipeline.BuildArtifacts(in, pipeline.RunOptions{
		MaxExps:   cfg.MaxExps,
		TopK:      cfg.TopK,
		Selection: cfg.SelectionOptions(),
		Steps:     []string{steps.SelectEvidence},
		Logger:    log,
	})
	if err != nil {
		return err
	}

	if p := printer(cfg); p != nil {
		p.PrintSelectedEvidence(art.SelectedEvidence)
	}
	return writeJSONOutput(selectOut, art.SelectedEvidence)
}
