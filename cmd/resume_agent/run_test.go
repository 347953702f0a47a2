package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_WritesArtifacts(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "run1")

	output, err := runBinary(t, "run",
		"--jd", filepath.Join("testdata", "jd.txt"),
		"--bank", filepath.Join("testdata", "bank.md"),
		"--out-dir", outDir,
		"--run-id", "cli-run")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Run cli-run complete")

	for _, name := range []string{"jd_profile.json", "evidence_index.json", "selected_evidence.json", "lint_report.json", "tailored_resume.md"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	draft, err := os.ReadFile(filepath.Join(outDir, "tailored_resume.md"))
	require.NoError(t, err)
	assert.Contains(t, string(draft), "(evidence: ")
}

func TestRunCommand_Steps(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "run1")

	output, err := runBinary(t, "run",
		"--jd", filepath.Join("testdata", "jd.txt"),
		"--bank", filepath.Join("testdata", "bank.md"),
		"--out-dir", outDir,
		"--steps", "profile_jd")
	require.NoError(t, err, output)

	assert.FileExists(t, filepath.Join(outDir, "jd_profile.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "selected_evidence.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "tailored_resume.md"))
}

func TestRunCommand_MissingOutDirParent(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, "missing", "run1")

	output, err := runBinary(t, "run",
		"--jd", filepath.Join("testdata", "jd.txt"),
		"--bank", filepath.Join("testdata", "bank.md"),
		"--out-dir", outDir)

	assert.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, output, "Error:")
	assert.NoDirExists(t, filepath.Join(root, "missing"))
}

func TestRunCommand_RequiresJD(t *testing.T) {
	output, err := runBinary(t, "run", "--bank", filepath.Join("testdata", "bank.md"))

	assert.Error(t, err)
	assert.Contains(t, output, "--jd must be provided")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	jd, err := filepath.Abs(filepath.Join("testdata", "jd.txt"))
	require.NoError(t, err)
	bank, err := filepath.Abs(filepath.Join("testdata", "bank.md"))
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "jd: " + jd + "\nexperience_bank: " + bank + "\nout_dir: " + filepath.Join(dir, "out") + "\nmax_exps: 1\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	output, err := runBinary(t, "run", "--config", cfgPath)
	require.NoError(t, err, output)
	assert.FileExists(t, filepath.Join(dir, "out", "selected_evidence.json"))
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"bookmark_prefix": "1bad"}`), 0644))

	output, err := runBinary(t, "run", "--config", cfgPath)

	assert.Error(t, err)
	assert.Contains(t, output, "bookmark_prefix")
}

func TestRunCommand_NegativeConfigValueRejected(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_snippets: -1\n"), 0644))

	output, err := runBinary(t, "run", "--config", cfgPath,
		"--jd", filepath.Join("testdata", "jd.txt"), "--bank", filepath.Join("testdata", "bank.md"))

	assert.Error(t, err)
	assert.Contains(t, output, "max_snippets")
}
