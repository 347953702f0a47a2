package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/experience"
	"github.com/spf13/cobra"
)

var convertBankCmd = &cobra.Command{
	Use:   "convert-bank",
	Short: "Convert a .docx experience bank to markdown",
	Long:  "Converts a .docx experience bank into the markdown bank format: every 'Company | Title' header line becomes a '## Company | Title | Location | Dates' block holding the paragraphs that follow it.",
	RunE:  runConvertBank,
}

var (
	convertIn  string
	convertOut string
)

func init() {
	convertBankCmd.Flags().StringVarP(&convertIn, "in", "i", "", "Path to .docx experience bank (required)")
	convertBankCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Path to output markdown bank (required)")

	if err := convertBankCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := convertBankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(convertBankCmd)
}

func runConvertBank(_ *cobra.Command, _ []string) error {
	md, err := experience.ConvertDocx(convertIn)
	if err != nil {
		return fmt.Errorf("failed to convert experience bank: %w", err)
	}

	// Parse the result so a bank with no usable blocks fails here
	bank, err := experience.ParseMarkdownBank(md)
	if err != nil {
		return fmt.Errorf("converted bank is invalid: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(convertOut), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(convertOut, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Converted %d experiences\n", len(bank.Experiences))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", convertOut)
	return nil
}
