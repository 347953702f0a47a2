package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

// DraftIntro states how the draft was produced
const DraftIntro = "This file is generated without an LLM. It only quotes existing experience text as draft bullets with evidence references."

const defaultTemplate = `# Tailored Resume Draft

{{.Intro}}
{{range .Sections}}
## {{.Header}}
{{range .Bullets}}
- {{.Text}} {{cite .ExpID .SnippetID}}{{end}}
{{end}}`

// DraftData is the data passed to the draft template
type DraftData struct {
	Intro    string
	Sections []DraftSection
}

// DraftSection is one selected experience
type DraftSection struct {
	ExpID   string
	Header  string
	Bullets []DraftBullet
}

// DraftBullet is one quoted snippet
type DraftBullet struct {
	ExpID     string
	SnippetID string
	Text      string
}

// Citation formats the evidence reference appended to each draft bullet
func Citation(expID, snippetID string) string {
	return fmt.Sprintf("(evidence: %s#%s)", expID, snippetID)
}

// RenderDraft renders the draft markdown for the selected experiences using
// the built-in template
func RenderDraft(selected []types.SelectedExperience) (string, error) {
	tmpl, err := newTemplate(defaultTemplate)
	if err != nil {
		return "", err
	}
	return execute(tmpl, selected)
}

// RenderDraftFile renders the draft with a template read from templatePath
func RenderDraftFile(selected []types.SelectedExperience, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, selected)
}

// BuildDraftData maps selected experiences to template data. Snippet text is
// quoted verbatim.
func BuildDraftData(selected []types.SelectedExperience) DraftData {
	data := DraftData{Intro: DraftIntro, Sections: make([]DraftSection, 0, len(selected))}
	for _, exp := range selected {
		section := DraftSection{ExpID: exp.ExpID, Header: exp.Header}
		for _, sn := range exp.Snippets {
			section.Bullets = append(section.Bullets, DraftBullet{ExpID: exp.ExpID, SnippetID: sn.ID, Text: sn.Text})
		}
		data.Sections = append(data.Sections, section)
	}
	return data
}

// parseTemplate reads and parses a draft template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newTemplate(string(content))
}

func newTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("draft").Funcs(template.FuncMap{
		"cite": Citation,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, selected []types.SelectedExperience) (string, error) {
	var result strings.Builder
	if err := tmpl.Execute(&result, BuildDraftData(selected)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return strings.TrimSpace(result.String()) + "\n", nil
}
