// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out  io.Writer
	ok   *color.Color
	warn *color.Color
	bad  *color.Color
	bold *color.Color
}

// NewPrinter creates a new Printer that writes to the given writer. Colors
// are only emitted when out is a terminal-backed file.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{
		out:  out,
		ok:   color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed, color.Bold),
		bold: color.New(color.Bold),
	}
	if f, isFile := out.(*os.File); !isFile || color.NoColor || (f != os.Stdout && f != os.Stderr) {
		for _, c := range []*color.Color{p.ok, p.warn, p.bad, p.bold} {
			c.DisableColor()
		}
	}
	return p
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", p.bold.Sprintf("%-*s", boxWidth-4, title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJDProfile outputs the top keywords of a job description profile.
func (p *Printer) PrintJDProfile(profile *types.JDProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("JD hash:  %s\n", profile.JDHash))
	sb.WriteString(fmt.Sprintf("Keywords: %d\n\n", len(profile.Keywords)))

	count := min(len(profile.Keywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		kw := profile.Keywords[i]
		sb.WriteString(fmt.Sprintf("  %-30s %d\n", kw.Keyword, kw.Count))
	}
	if len(profile.Keywords) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Keywords)-count))
	}

	p.printBox("JD KEYWORD PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelectedEvidence outputs the selected experiences with their scores and snippets.
func (p *Printer) PrintSelectedEvidence(selected *types.SelectedEvidence) {
	if selected == nil || len(selected.Selected) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected experiences: %d\n\n", len(selected.Selected)))

	count := min(len(selected.Selected), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := selected.Selected[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, exp.ExpID))
		sb.WriteString(fmt.Sprintf("    Score: %d (overlap %d)\n", exp.Score.Total, exp.Score.OverlapCount))
		if len(exp.Score.MatchedTerms) > 0 {
			sb.WriteString(fmt.Sprintf("    Terms: %s\n", truncate(strings.Join(exp.Score.MatchedTerms, ", "), 40)))
		}
		for _, sn := range exp.Snippets {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", sn.ID, sn.Text))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(selected.Selected) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more experiences", len(selected.Selected)-maxItemsToShow))
	}

	p.printBox("SELECTED EVIDENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCoverage outputs keyword coverage and the missing top keywords.
func (p *Printer) PrintCoverage(report *types.CoverageReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage: %.0f%% of %d top keywords\n", report.KeywordCoverageRate*100, len(report.TopKeywords)))
	if len(report.MissingTopKeywords) > 0 {
		count := min(len(report.MissingTopKeywords), maxItemsToShow*2)
		sb.WriteString(fmt.Sprintf("Missing:  %s", strings.Join(report.MissingTopKeywords[:count], ", ")))
		if len(report.MissingTopKeywords) > count {
			sb.WriteString(fmt.Sprintf(" (+%d)", len(report.MissingTopKeywords)-count))
		}
	}

	p.printBox("KEYWORD COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLintReport outputs the gate status and the issues of every flagged edit.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLintReport(report *types.LintReport) {
	if report == nil {
		return
	}
	if report.Summary.FlaggedEdits == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", p.ok.Sprintf("%-*s", boxWidth-4, fmt.Sprintf("NO ISSUES IN %d EDITS", report.Summary.TotalEdits)))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s (%d flagged, %d blocked of %d)\n\n",
		report.Summary.Status, report.Summary.FlaggedEdits, report.Summary.BlockedEdits, report.Summary.TotalEdits))

	for _, e := range report.Edits {
		if !e.Flagged {
			continue
		}
		ref := e.ExperienceRef
		if e.BulletID != "" {
			ref += " " + e.BulletID
		}
		sb.WriteString(fmt.Sprintf("Edit %d  %s\n", e.Index, ref))
		for _, iss := range e.Issues {
			sb.WriteString(fmt.Sprintf("  ! %s", iss.Kind))
			if len(iss.RemovedTerms) > 0 {
				sb.WriteString(fmt.Sprintf(" -%s", strings.Join(iss.RemovedTerms, ",")))
			}
			if len(iss.AddedTerms) > 0 {
				sb.WriteString(fmt.Sprintf(" +%s", strings.Join(iss.AddedTerms, ",")))
			}
			sb.WriteString("\n")
		}
	}

	title := "PLAN LINT: READY"
	if report.Summary.Status == types.GateBlocked {
		title = "PLAN LINT: BLOCKED"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplyResult outputs the per-edit outcomes of an edit application.
func (p *Printer) PrintApplyResult(result *types.ApplyResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Replaced %d, missing %d, rejected %d, conflicts %d\n",
		result.Replaced, result.Missing, result.Rejected, result.Conflicts))
	if len(result.Outcomes) > 0 {
		sb.WriteString("\n")
	}
	for _, o := range result.Outcomes {
		mark := p.ok.Sprint("✓")
		switch o.Status {
		case types.OutcomeMissing:
			mark = p.warn.Sprint("?")
		case types.OutcomeRejected, types.OutcomeConflict:
			mark = p.bad.Sprint("✗")
		}
		sb.WriteString(fmt.Sprintf("%s edit %d %s", mark, o.Index, o.Status))
		if o.ParagraphIndex != nil {
			sb.WriteString(fmt.Sprintf(" (paragraph %d)", *o.ParagraphIndex))
		}
		if o.Reason != "" {
			sb.WriteString(": " + o.Reason)
		}
		sb.WriteString("\n")
	}

	p.printBox("EDITS APPLIED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTagResult outputs the bookmark counts of a tagging pass.
func (p *Printer) PrintTagResult(result *types.TagResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bullet groups:     %d\n", result.Groups))
	sb.WriteString(fmt.Sprintf("Tagged bullets:    %d\n", result.TaggedBullets))
	sb.WriteString(fmt.Sprintf("Reserve bullets:   %d\n", result.ReserveBulletsAdded))
	if len(result.Bookmarks) > 0 {
		first := result.Bookmarks[0].Name
		last := result.Bookmarks[len(result.Bookmarks)-1].Name
		sb.WriteString(fmt.Sprintf("Bookmarks:         %s .. %s", first, last))
	}

	p.printBox("RESUME TAGGED", strings.TrimSuffix(sb.String(), "\n"))
}
