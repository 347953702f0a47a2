package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/docx"
	"github.com/spf13/cobra"
)

var extractTextCmd = &cobra.Command{
	Use:   "extract-text",
	Short: "Print the paragraph text of a .docx file",
	Long:  "Extracts the non-empty paragraphs of a .docx file as plain text, one paragraph per line.",
	RunE:  runExtractText,
}

var (
	extractIn  string
	extractOut string
)

func init() {
	extractTextCmd.Flags().StringVarP(&extractIn, "in", "i", "", "Path to .docx file (required)")
	extractTextCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Path to output text file (prints to stdout if omitted)")

	if err := extractTextCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractTextCmd)
}

func runExtractText(_ *cobra.Command, _ []string) error {
	doc, err := docx.Open(extractIn)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	text := doc.PlainText()

	if extractOut == "" {
		_, _ = fmt.Fprint(os.Stdout, text)
		return nil
	}
	if err := os.WriteFile(extractOut, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOut)
	return nil
}
