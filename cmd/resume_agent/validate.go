package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/schemas"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against a schema",
	Long:  "Validates a JSON file against one of the built-in schemas (e.g. edit_plan.schema.json) or a schema file on disk. Exits with code 1 when validation fails.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Built-in schema name or path to a schema file (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func isBuiltinSchema(name string) bool {
	for _, n := range schemafiles.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if isBuiltinSchema(validateSchema) {
		var data []byte
		data, err = os.ReadFile(validateJSON)
		if err != nil {
			return fmt.Errorf("failed to read JSON file: %w", err)
		}
		err = schemas.ValidateEmbedded(validateSchema, data)
	} else {
		schemaPath := schemas.ResolveSchemaPath(validateSchema)
		if schemaPath == "" {
			schemaPath = validateSchema
		}
		err = schemas.ValidateJSON(schemaPath, validateJSON)
	}

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed: %s\n", filepath.Base(validateJSON))
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", filepath.Base(validateJSON))
	return nil
}
