package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-tailor/internal/types"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
)

// ParseEditPlan validates raw plan JSON against the edit plan schema, decodes
// it, and checks the struct rules. Malformed plans yield *ValidationError.
func ParseEditPlan(data []byte) (*types.EditPlan, error) {
	if !json.Valid(data) {
		return nil, &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "plan is not valid JSON"}}}
	}
	if err := ValidateEmbedded(schemafiles.EditPlan, data); err != nil {
		return nil, err
	}

	var plan types.EditPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode edit plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, structError(err)
	}
	return &plan, nil
}

// LoadEditPlan reads and parses an edit plan file
func LoadEditPlan(path string) (*types.EditPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edit plan %s: %w", path, err)
	}
	plan, err := ParseEditPlan(data)
	if err != nil {
		return nil, fmt.Errorf("invalid edit plan %s: %w", path, err)
	}
	return plan, nil
}

// structError converts validator field errors into a ValidationError
func structError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate edit plan: %w", err)
	}
	out := &ValidationError{Errors: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q rule", fe.Tag()),
		})
	}
	return out
}
