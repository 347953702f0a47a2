package experience

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	blockStart  = regexp.MustCompile(`(?m)^##(?:[ \t]+|$)`)
	nonSlugChar = regexp.MustCompile(`[^a-z0-9]+`)
)

// Bank is the result of parsing an experience bank document
type Bank struct {
	Experiences []types.ExperienceBlock
	// Skipped describes blocks dropped because their header was unusable
	Skipped []string
}

// LoadExperienceBank reads and parses an experience bank. Markdown is the
// canonical format; a .docx work history is converted first.
func LoadExperienceBank(path string) (*Bank, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		md, err := ConvertDocx(path)
		if err != nil {
			return nil, err
		}
		return ParseMarkdownBank(md)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	bank, err := ParseMarkdownBank(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}

// ParseMarkdownBank splits a bank document into blocks. Each block starts with
// a "## Company | Title | Location | Dates" header and runs until the next one.
// Malformed blocks are skipped; duplicate ids get numeric suffixes.
func ParseMarkdownBank(md string) (*Bank, error) {
	md = strings.ReplaceAll(md, "\r\n", "\n")

	locs := blockStart.FindAllStringIndex(md, -1)
	if len(locs) == 0 {
		if strings.TrimSpace(md) == "" {
			return &Bank{Experiences: []types.ExperienceBlock{}}, nil
		}
		return nil, &ParseError{Message: "no \"## \" experience headers found"}
	}

	bank := &Bank{Experiences: make([]types.ExperienceBlock, 0, len(locs))}
	seen := make(map[string]int, len(locs))

	for i, loc := range locs {
		end := len(md)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block, ok := parseBlock(md[loc[1]:end])
		if !ok {
			bank.Skipped = append(bank.Skipped, describeSkipped(i+1, block.Header))
			continue
		}

		block.ID = uniqueID(block.ID, seen)
		bank.Experiences = append(bank.Experiences, block)
	}

	return bank, nil
}

// parseBlock reads one block (header line plus body). ok is false when the
// header cannot produce an id.
func parseBlock(raw string) (types.ExperienceBlock, bool) {
	header, body, _ := strings.Cut(raw, "\n")
	block := types.ExperienceBlock{
		Header: strings.TrimSpace(header),
		Body:   strings.TrimSpace(body),
	}
	if block.Header == "" {
		return block, false
	}

	if strings.Contains(block.Header, "|") {
		fields := strings.Split(block.Header, "|")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		block.Company = field(fields, 0)
		block.Title = field(fields, 1)
		block.Location = field(fields, 2)
		block.Dates = field(fields, 3)
	}

	base := joinNonEmpty(block.Company, block.Title, block.Dates)
	if base == "" {
		base = block.Header
	}
	block.ID = Slug(base)
	return block, block.ID != ""
}

// Slug lowercases s and collapses every run of non-alphanumerics to "_"
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChar.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

func uniqueID(id string, seen map[string]int) string {
	n, dup := seen[id]
	if !dup {
		seen[id] = 1
		return id
	}
	for {
		n++
		candidate := fmt.Sprintf("%s_%d", id, n)
		if _, taken := seen[candidate]; !taken {
			seen[id] = n
			seen[candidate] = 1
			return candidate
		}
	}
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func describeSkipped(n int, header string) string {
	if header == "" {
		return fmt.Sprintf("block %d: empty header", n)
	}
	return fmt.Sprintf("block %d: header %q yields an empty id", n, header)
}
