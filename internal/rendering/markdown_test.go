package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedFixture() []types.SelectedExperience {
	return []types.SelectedExperience{
		{
			ExpID:  "acme_analyst",
			Header: "Acme | Analyst | Remote | 2020-2022",
			Snippets: []types.EvidenceSnippet{
				{ID: "sn1", Text: "Built SQL reporting for 40 stores across three regions every week."},
				{ID: "sn2", Text: "Reduced KYC backlog by 200 cases within a single quarter."},
			},
		},
		{
			ExpID:    "globex_engineer",
			Header:   "Globex | Data Engineer | NYC | 2022-Present",
			Snippets: []types.EvidenceSnippet{{ID: "sn1", Text: "Designed Kafka ingestion...", Kind: types.SnippetFallback}},
		},
	}
}

func TestRenderDraft(t *testing.T) {
	out, err := RenderDraft(selectedFixture())
	require.NoError(t, err)

	want := "# Tailored Resume Draft\n\n" +
		DraftIntro + "\n\n" +
		"## Acme | Analyst | Remote | 2020-2022\n\n" +
		"- Built SQL reporting for 40 stores across three regions every week. (evidence: acme_analyst#sn1)\n" +
		"- Reduced KYC backlog by 200 cases within a single quarter. (evidence: acme_analyst#sn2)\n\n" +
		"## Globex | Data Engineer | NYC | 2022-Present\n\n" +
		"- Designed Kafka ingestion... (evidence: globex_engineer#sn1)\n"
	assert.Equal(t, want, out)
}

func TestRenderDraft_NoSelection(t *testing.T) {
	out, err := RenderDraft(nil)
	require.NoError(t, err)
	assert.Equal(t, "# Tailored Resume Draft\n\n"+DraftIntro+"\n", out)
}

func TestCitation(t *testing.T) {
	assert.Equal(t, "(evidence: acme#sn3)", Citation("acme", "sn3"))
}

func TestRenderDraftFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.tmpl")
	content := `{{range .Sections}}{{.ExpID}}:{{len .Bullets}}
{{end}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := RenderDraftFile(selectedFixture(), path)
	require.NoError(t, err)
	assert.Equal(t, "acme_analyst:2\nglobex_engineer:1\n", out)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/template.md")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{.InvalidSyntax{{}}`), 0644))

	_, err := parseTemplate(path)
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderDraftFile_ExecuteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{.Missing.Field}}`), 0644))

	_, err := RenderDraftFile(selectedFixture(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template")
}
