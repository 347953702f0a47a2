package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
)

// WriteArtifacts writes every artifact present in art into dir and returns
// the written paths in step order. The directory is created when its parent
// exists; otherwise an OutputDirError is returned before anything is written.
func WriteArtifacts(dir string, art *Artifacts) ([]string, error) {
	if err := prepareOutDir(dir, true); err != nil {
		return nil, err
	}

	var written []string
	for _, step := range steps.Order {
		var data []byte
		var err error
		switch step {
		case steps.ProfileJD:
			if art.JDProfile == nil {
				continue
			}
			data, err = marshal(art.JDProfile)
		case steps.IndexEvidence:
			if art.EvidenceIndex == nil {
				continue
			}
			data, err = marshal(art.EvidenceIndex)
		case steps.SelectEvidence:
			if art.SelectedEvidence == nil {
				continue
			}
			data, err = marshal(art.SelectedEvidence)
		case steps.CoverageReport:
			if art.Coverage == nil {
				continue
			}
			data, err = marshal(art.Coverage)
		case steps.RenderDraft:
			if !hasStep(art, steps.RenderDraft) {
				continue
			}
			data = []byte(art.Draft)
		}

		path := filepath.Join(dir, steps.StepRegistry[step].Artifact)
		if err != nil {
			return written, &WriteError{Path: path, Cause: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, &WriteError{Path: path, Cause: err}
		}
		written = append(written, path)
	}
	return written, nil
}

// prepareOutDir makes sure dir exists. With strict set, only dir itself may
// be created; a missing parent is an error.
func prepareOutDir(dir string, strict bool) error {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return &OutputDirError{Path: dir, Message: "exists and is not a directory"}
		}
		return nil
	}

	if strict {
		parent := filepath.Dir(filepath.Clean(dir))
		info, err := os.Stat(parent)
		if err != nil {
			return &OutputDirError{Path: dir, Message: "parent directory does not exist", Cause: err}
		}
		if !info.IsDir() {
			return &OutputDirError{Path: dir, Message: "parent is not a directory"}
		}
		if err := os.Mkdir(dir, 0755); err != nil {
			return &OutputDirError{Path: dir, Message: "failed to create", Cause: err}
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return &OutputDirError{Path: dir, Message: "failed to create", Cause: err}
	}
	return nil
}

func marshal(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func hasStep(art *Artifacts, step string) bool {
	for _, s := range art.Completed {
		if s == step {
			return true
		}
	}
	return false
}
