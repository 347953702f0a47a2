package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
	"github.com/spf13/cobra"
)

var profileJDCmd = &cobra.Command{
	Use:   "profile-jd",
	Short: "Extract the ranked keyword profile of a job description",
	Long:  "Reads a job description (.txt, .md, .html or .docx), extracts unigram and bigram terms and writes the ranked jd_profile.json artifact.",
	RunE:  runProfileJD,
}

var (
	profileJDPath string
	profileOut    string
	profileTopK   int
)

func init() {
	profileJDCmd.Flags().StringVar(&profileJDPath, "jd", "", "Path to job description file (required)")
	profileJDCmd.Flags().StringVarP(&profileOut, "out", "o", "", "Path to output jd_profile.json (prints to stdout if omitted)")
	profileJDCmd.Flags().IntVar(&profileTopK, "top-k", 0, "Number of keywords to keep")

	if err := profileJDCmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}

	rootCmd.AddCommand(profileJDCmd)
}

func runProfileJD(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = profileTopK
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, meta, err := ingestion.LoadJobText(profileJDPath)
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	art, err := pipeline.BuildArtifacts(&pipeline.Inputs{JDText: text, JDMeta: meta}, pipeline.RunOptions{
		TopK:   cfg.TopK,
		Steps:  []string{steps.ProfileJD},
		Logger: log,
	})
	if err != nil {
		return err
	}

	if p := printer(cfg); p != nil {
		p.PrintJDProfile(art.JDProfile)
	}
	return writeJSONOutput(profileOut, art.JDProfile)
}

// writeJSONOutput writes v as indented JSON to path, or to stdout when path is empty
func writeJSONOutput(path string, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, _ = os.Stdout.Write(jsonBytes)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
