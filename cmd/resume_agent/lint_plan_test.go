package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatedPlanPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "plan.gated.json"), gatedPlanPath("out", filepath.Join("in", "plan.json")))
}

func TestLintPlanCommand_GatesRiskyEdit(t *testing.T) {
	outDir := t.TempDir()

	output, err := runBinary(t, "lint-plan", "--plan", filepath.Join("testdata", "plan_risky.json"), "--out-dir", outDir)
	require.NoError(t, err, output)
	assert.Contains(t, output, "Flagged 1 of 1 edits")
	assert.Contains(t, output, "Status: blocked")

	data, err := os.ReadFile(filepath.Join(outDir, "plan_risky.gated.json"))
	require.NoError(t, err)
	var gated types.EditPlan
	require.NoError(t, json.Unmarshal(data, &gated))
	require.Len(t, gated.Edits, 1)
	assert.True(t, gated.Edits[0].NeedsUserOK)

	data, err = os.ReadFile(filepath.Join(outDir, "plan_lint_report.json"))
	require.NoError(t, err)
	var report types.LintReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, types.GateBlocked, report.Summary.Status)
	assert.Equal(t, 1, report.Summary.FlaggedEdits)
}

func TestLintPlanCommand_SafePlan(t *testing.T) {
	outDir := t.TempDir()

	output, err := runBinary(t, "lint-plan", "--plan", filepath.Join("testdata", "plan_safe.json"), "--out-dir", outDir)
	require.NoError(t, err, output)
	assert.Contains(t, output, "Flagged 0 of 1 edits")
	assert.Contains(t, output, "Status: ready")
}

func TestLintPlanCommand_InvalidPlan(t *testing.T) {
	output, err := runBinary(t, "lint-plan", "--plan", filepath.Join("testdata", "plan_invalid.json"), "--out-dir", t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, output, "failed to load edit plan")
}
