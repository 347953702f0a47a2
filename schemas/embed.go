// Package schemas holds the JSON Schema documents for the artifacts the
// resume agent reads and writes.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
)

// Schema file names
const (
	EditPlan         = "edit_plan.schema.json"
	JDProfile        = "jd_profile.schema.json"
	EvidenceIndex    = "evidence_index.schema.json"
	SelectedEvidence = "selected_evidence.schema.json"
	PlanLintReport   = "plan_lint_report.schema.json"
	CoverageReport   = "coverage_report.schema.json"
	EditManifest     = "edit_manifest.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Names lists every embedded schema
func Names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Read returns the content of an embedded schema
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}
