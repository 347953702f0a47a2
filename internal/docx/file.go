package docx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// DefaultTaggedPath returns <dir>/<stem>_tagged<ext> for base
func DefaultTaggedPath(base string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_tagged" + ext
}

// ManifestPath returns the manifest location for an output document: the
// same path with a .json extension
func ManifestPath(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".json"
}

// TagFile tags the bullets of base and writes the result to out
func TagFile(base, out string, opts TagOptions) (types.TagResult, error) {
	if err := checkDistinct(base, out); err != nil {
		return types.TagResult{}, err
	}
	doc, err := Open(base)
	if err != nil {
		return types.TagResult{}, err
	}
	result, err := doc.TagBullets(opts)
	if err != nil {
		return types.TagResult{}, err
	}
	if err := ensureParent(out); err != nil {
		return types.TagResult{}, err
	}
	if err := doc.Save(out); err != nil {
		return types.TagResult{}, err
	}
	return result, nil
}

// ApplyRequest describes one edit application run
type ApplyRequest struct {
	BasePath   string
	OutputPath string
	Plan       types.EditPlan
	RunID      string
	CreatedAt  time.Time
}

// ApplyEditsToFile applies a gated plan to the base document and writes the
// edited copy plus its manifest. Nothing is written while any edit still
// needs user approval. When no edit lands, the output is a byte copy of the
// base document.
func ApplyEditsToFile(req ApplyRequest) (*types.EditManifest, error) {
	if err := validation.CheckGate(req.Plan); err != nil {
		return nil, err
	}
	if err := checkDistinct(req.BasePath, req.OutputPath); err != nil {
		return nil, err
	}

	doc, err := Open(req.BasePath)
	if err != nil {
		return nil, err
	}
	result := doc.ApplyEdits(req.Plan.Edits)

	if err := ensureParent(req.OutputPath); err != nil {
		return nil, err
	}
	if result.Replaced == 0 {
		if err := os.WriteFile(req.OutputPath, doc.Raw(), 0644); err != nil {
			return nil, &DocumentError{Message: "failed to write document", Path: req.OutputPath, Cause: err}
		}
	} else if err := doc.Save(req.OutputPath); err != nil {
		return nil, err
	}

	manifest := &types.EditManifest{
		RunID:      req.RunID,
		CreatedAt:  req.CreatedAt.UTC().Format(time.RFC3339),
		BasePath:   req.BasePath,
		OutputPath: req.OutputPath,
		Target: types.ManifestTarget{
			Company: req.Plan.TargetCompany,
			Role:    req.Plan.TargetRole,
		},
		Result: result,
		Edits:  req.Plan.Edits,
	}
	if manifest.RunID == "" {
		manifest.RunID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		manifest.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := WriteManifest(ManifestPath(req.OutputPath), manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// WriteManifest writes the manifest as indented JSON
func WriteManifest(path string, manifest *types.EditManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &DocumentError{Message: "failed to write manifest", Path: path, Cause: err}
	}
	return nil
}

func checkDistinct(base, out string) error {
	if filepath.Clean(base) == filepath.Clean(out) {
		return &DocumentError{Message: "output path must differ from the base document", Path: out}
	}
	return nil
}

func ensureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &DocumentError{Message: "failed to create output directory", Path: path, Cause: err}
	}
	return nil
}
