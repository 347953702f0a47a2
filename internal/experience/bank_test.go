package experience

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExperienceBank_ValidFile(t *testing.T) {
	bank, err := LoadExperienceBank(filepath.Join("testdata", "bank.md"))
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 3)

	first := bank.Experiences[0]
	assert.Equal(t, "acme_analyst_2020_2022", first.ID)
	assert.Equal(t, "Acme | Analyst | Remote | 2020-2022", first.Header)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Analyst", first.Title)
	assert.Equal(t, "Remote", first.Location)
	assert.Equal(t, "2020-2022", first.Dates)
	assert.Contains(t, first.Body, "Built SQL reporting")
	assert.Contains(t, first.Body, "- Partnered with finance")
	assert.NotContains(t, first.Body, "Globex")

	assert.Equal(t, "globex_data_engineer_2022_present", bank.Experiences[1].ID)
	assert.Equal(t, "acme_analyst_2020_2022_2", bank.Experiences[2].ID)

	require.Len(t, bank.Skipped, 1)
	assert.Contains(t, bank.Skipped[0], "empty header")
}

func TestLoadExperienceBank_FileNotFound(t *testing.T) {
	_, err := LoadExperienceBank("nonexistent_file.md")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadExperienceBank_NoHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.md")
	require.NoError(t, os.WriteFile(path, []byte("just some notes\nwithout blocks\n"), 0644))

	_, err := LoadExperienceBank(path)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), path)
}

func TestParseMarkdownBank_Empty(t *testing.T) {
	bank, err := ParseMarkdownBank("  \n")
	require.NoError(t, err)
	assert.Empty(t, bank.Experiences)
	assert.Empty(t, bank.Skipped)
}

func TestParseMarkdownBank_HeaderWithoutFields(t *testing.T) {
	bank, err := ParseMarkdownBank("## Freelance consulting (2019)\nSmall analytics projects.\n")
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 1)

	exp := bank.Experiences[0]
	assert.Equal(t, "freelance_consulting_2019", exp.ID)
	assert.Empty(t, exp.Company)
	assert.Empty(t, exp.Dates)
	assert.Equal(t, "Small analytics projects.", exp.Body)
}

func TestParseMarkdownBank_PartialFields(t *testing.T) {
	bank, err := ParseMarkdownBank("## Initech | | Austin\nBody text.")
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 1)

	exp := bank.Experiences[0]
	assert.Equal(t, "initech", exp.ID)
	assert.Equal(t, "Initech", exp.Company)
	assert.Empty(t, exp.Title)
	assert.Equal(t, "Austin", exp.Location)
}

func TestParseMarkdownBank_SkipsUnsluggableHeader(t *testing.T) {
	bank, err := ParseMarkdownBank("## ---\nnothing\n\n## Acme | Analyst\nkept\n")
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 1)
	assert.Equal(t, "acme_analyst", bank.Experiences[0].ID)
	require.Len(t, bank.Skipped, 1)
	assert.Contains(t, bank.Skipped[0], "empty id")
}

func TestParseMarkdownBank_SubheadingsStayInBody(t *testing.T) {
	bank, err := ParseMarkdownBank("## Acme | Analyst\n### Projects\nDashboards.\n")
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 1)
	assert.Equal(t, "### Projects\nDashboards.", bank.Experiences[0].Body)
}

func TestParseMarkdownBank_DuplicateSuffixes(t *testing.T) {
	md := "## Acme\none\n## Acme\ntwo\n## Acme\nthree\n## Acme 2\nfour\n"
	bank, err := ParseMarkdownBank(md)
	require.NoError(t, err)

	ids := make([]string, 0, len(bank.Experiences))
	for _, e := range bank.Experiences {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"acme", "acme_2", "acme_3", "acme_2_2"}, ids)
}

func TestParseMarkdownBank_CRLF(t *testing.T) {
	bank, err := ParseMarkdownBank("## Acme | Analyst\r\nLine one\r\nLine two\r\n")
	require.NoError(t, err)
	require.Len(t, bank.Experiences, 1)
	assert.Equal(t, "Acme | Analyst", bank.Experiences[0].Header)
	assert.Equal(t, "Line one\nLine two", bank.Experiences[0].Body)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "acme_analyst_2020_2022", Slug("Acme Analyst 2020-2022"))
	assert.Equal(t, "a_b", Slug("  __A -- b__ "))
	assert.Empty(t, Slug("---"))
}
