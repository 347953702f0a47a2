// Package steps defines the dry-run pipeline steps, the artifact each one
// produces, and the dependencies between them.
package steps

import (
	"fmt"
	"sort"
)

// Step names
const (
	ProfileJD      = "profile_jd"
	IndexEvidence  = "index_evidence"
	SelectEvidence = "select_evidence"
	CoverageReport = "coverage_report"
	RenderDraft    = "render_draft"
)

// Step categories
const (
	CategoryIngestion  = "ingestion"
	CategoryExperience = "experience"
	CategoryValidation = "validation"
	CategoryRendering  = "rendering"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Artifact     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	ProfileJD: {
		Name:         ProfileJD,
		Category:     CategoryIngestion,
		Artifact:     "jd_profile.json",
		Dependencies: []string{},
	},
	IndexEvidence: {
		Name:         IndexEvidence,
		Category:     CategoryExperience,
		Artifact:     "evidence_index.json",
		Dependencies: []string{},
	},
	SelectEvidence: {
		Name:         SelectEvidence,
		Category:     CategoryExperience,
		Artifact:     "selected_evidence.json",
		Dependencies: []string{ProfileJD, IndexEvidence},
	},
	CoverageReport: {
		Name:         CoverageReport,
		Category:     CategoryValidation,
		Artifact:     "lint_report.json",
		Dependencies: []string{ProfileJD, SelectEvidence},
	},
	RenderDraft: {
		Name:         RenderDraft,
		Category:     CategoryRendering,
		Artifact:     "tailored_resume.md",
		Dependencies: []string{SelectEvidence},
	},
}

// Order is the execution order of every registered step
var Order = []string{ProfileJD, IndexEvidence, SelectEvidence, CoverageReport, RenderDraft}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s has missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks if all required dependencies for a step are completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}

// Resolve returns the requested steps plus everything they depend on, in
// execution order. No targets means every step.
func Resolve(targets []string) ([]string, error) {
	if len(targets) == 0 {
		return append([]string(nil), Order...), nil
	}

	needed := map[string]bool{}
	var visit func(name string) error
	visit = func(name string) error {
		def, ok := StepRegistry[name]
		if !ok {
			return fmt.Errorf("unknown step: %s", name)
		}
		if needed[name] {
			return nil
		}
		needed[name] = true
		for _, dep := range def.Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		return nil
	}
	for _, target := range targets {
		if err := visit(target); err != nil {
			return nil, err
		}
	}

	resolved := make([]string, 0, len(needed))
	for _, name := range Order {
		if needed[name] {
			resolved = append(resolved, name)
		}
	}
	return resolved, nil
}

// Names returns the registered step names sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(StepRegistry))
	for name := range StepRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
