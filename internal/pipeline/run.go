package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/experience"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/types"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"go.uber.org/zap"
)

// coverageNotes are attached to every coverage report
var coverageNotes = []string{
	"Deterministic run: lexical overlap scoring only.",
	"Evidence snippets never cross paragraph boundaries.",
	"Missing keywords are not necessarily bad; they flag areas to review.",
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	MaxExps      int
	TopK         int
	CoverageK    int
	Selection    selection.Options
	TemplatePath string
	// Steps limits the run to these steps and their dependencies
	Steps      []string
	RunID      string
	Now        func() time.Time
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Inputs are the loaded run inputs
type Inputs struct {
	JDText string
	JDMeta *ingestion.Metadata
	Bank   *experience.Bank
}

// Artifacts holds everything a dry run produces. Steps that were not run
// leave their field nil.
type Artifacts struct {
	RunID            string
	GeneratedAt      time.Time
	Profile          types.KeywordProfile
	JDProfile        *types.JDProfile
	EvidenceIndex    *types.EvidenceIndex
	SelectedEvidence *types.SelectedEvidence
	Coverage         *types.CoverageReport
	Draft            string
	Completed        []string
}

// LoadInputs reads the job description and the experience bank
func LoadInputs(jdPath, bankPath string) (*Inputs, error) {
	text, meta, err := ingestion.LoadJobText(jdPath)
	if err != nil {
		return nil, fmt.Errorf("job description ingestion failed: %w", err)
	}
	bank, err := experience.LoadExperienceBank(bankPath)
	if err != nil {
		return nil, fmt.Errorf("experience bank loading failed: %w", err)
	}
	return &Inputs{JDText: text, JDMeta: meta, Bank: bank}, nil
}

func (o *RunOptions) applyDefaults() {
	if o.MaxExps <= 0 {
		o.MaxExps = selection.DefaultMaxExps
	}
	if o.TopK <= 0 {
		o.TopK = parsing.DefaultTopK
	}
	if o.CoverageK <= 0 {
		o.CoverageK = parsing.DefaultCoverageK
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.StepRegistry[step].Category,
			Message:  message,
			RunID:    opts.RunID,
		})
	}
}

// BuildArtifacts runs the requested steps over the inputs. It performs no
// I/O apart from reading a custom draft template.
func BuildArtifacts(in *Inputs, opts RunOptions) (*Artifacts, error) {
	opts.applyDefaults()
	plan, err := steps.Resolve(opts.Steps)
	if err != nil {
		return nil, err
	}

	generatedAt := opts.Now().UTC()
	stamp := generatedAt.Format(time.RFC3339)
	log := opts.Logger.With(zap.String("run_id", opts.RunID))
	art := &Artifacts{RunID: opts.RunID, GeneratedAt: generatedAt}
	completed := map[string]bool{}
	var selected []types.SelectedExperience

	for _, step := range plan {
		if err := steps.ValidateDependencies(completed, step); err != nil {
			return nil, err
		}

		switch step {
		case steps.ProfileJD:
			art.Profile = parsing.BuildProfile(in.JDText, opts.TopK)
			art.JDProfile = &types.JDProfile{
				RunID:          opts.RunID,
				GeneratedAt:    stamp,
				JDHash:         in.JDMeta.ShortHash(),
				Source:         in.JDMeta.Source,
				Extraction:     parsing.Extraction(opts.TopK),
				KeywordProfile: art.Profile,
			}
			checkSchema(log, schemafiles.JDProfile, art.JDProfile)
			emitProgress(&opts, step, fmt.Sprintf("Extracted %d keywords", len(art.Profile.Keywords)))

		case steps.IndexEvidence:
			art.EvidenceIndex = &types.EvidenceIndex{
				RunID:           opts.RunID,
				GeneratedAt:     stamp,
				ExperienceCount: len(in.Bank.Experiences),
				Experiences:     in.Bank.Experiences,
				SkippedBlocks:   in.Bank.Skipped,
			}
			for _, skipped := range in.Bank.Skipped {
				log.Warn("skipped experience block", zap.String("reason", skipped))
			}
			checkSchema(log, schemafiles.EvidenceIndex, art.EvidenceIndex)
			emitProgress(&opts, step, fmt.Sprintf("Indexed %d experiences", len(in.Bank.Experiences)))

		case steps.SelectEvidence:
			selected, err = selection.SelectTop(art.Profile, in.Bank.Experiences, opts.MaxExps, opts.Selection)
			if err != nil {
				return nil, fmt.Errorf("evidence selection failed: %w", err)
			}
			art.SelectedEvidence = &types.SelectedEvidence{RunID: opts.RunID, GeneratedAt: stamp, Selected: selected}
			checkSchema(log, schemafiles.SelectedEvidence, art.SelectedEvidence)
			emitProgress(&opts, step, fmt.Sprintf("Selected %d of %d experiences", len(selected), len(in.Bank.Experiences)))

		case steps.CoverageReport:
			var texts []string
			for _, exp := range selected {
				for _, sn := range exp.Snippets {
					texts = append(texts, sn.Text)
				}
			}
			cov := parsing.Coverage(art.Profile, texts, opts.CoverageK)
			art.Coverage = &types.CoverageReport{
				RunID:                   opts.RunID,
				GeneratedAt:             stamp,
				SelectedExperienceCount: len(selected),
				TopKeywords:             cov.TopKeywords,
				MissingTopKeywords:      cov.Missing,
				KeywordCoverageRate:     cov.Rate,
				Notes:                   coverageNotes,
			}
			checkSchema(log, schemafiles.CoverageReport, art.Coverage)
			emitProgress(&opts, step, fmt.Sprintf("Keyword coverage %.0f%%", cov.Rate*100))

		case steps.RenderDraft:
			if opts.TemplatePath != "" {
				art.Draft, err = rendering.RenderDraftFile(selected, opts.TemplatePath)
			} else {
				art.Draft, err = rendering.RenderDraft(selected)
			}
			if err != nil {
				return nil, fmt.Errorf("rendering draft failed: %w", err)
			}
			emitProgress(&opts, step, "Rendered draft resume")
		}

		completed[step] = true
		art.Completed = append(art.Completed, step)
		log.Debug("step completed", zap.String("step", step))
	}

	return art, nil
}

// checkSchema validates an artifact against its schema. Failures are logged,
// not returned.
func checkSchema(log *zap.Logger, schema string, v interface{}) {
	if err := schemas.ValidateValue(schema, v); err != nil {
		log.Warn("artifact failed schema validation", zap.String("schema", schema), zap.Error(err))
	}
}

// DefaultOutDir returns runs/dry_run/<UTC timestamp>
func DefaultOutDir(now time.Time) string {
	return filepath.Join("runs", "dry_run", now.UTC().Format("20060102T150405Z"))
}

// Run loads the inputs, builds the artifacts and writes them to outDir. An
// empty outDir selects DefaultOutDir, which is created with its parents; an
// explicit outDir must have an existing parent.
func Run(jdPath, bankPath, outDir string, opts RunOptions) (*Artifacts, string, error) {
	opts.applyDefaults()

	dir := outDir
	strict := true
	if dir == "" {
		dir = DefaultOutDir(opts.Now())
		strict = false
	}
	if err := prepareOutDir(dir, strict); err != nil {
		return nil, "", err
	}

	in, err := LoadInputs(jdPath, bankPath)
	if err != nil {
		return nil, "", err
	}
	art, err := BuildArtifacts(in, opts)
	if err != nil {
		return nil, "", err
	}
	if _, err := WriteArtifacts(dir, art); err != nil {
		return nil, "", err
	}

	opts.Logger.Info("dry run complete",
		zap.String("run_id", art.RunID),
		zap.String("out_dir", dir),
		zap.Strings("steps", art.Completed))
	return art, dir, nil
}
