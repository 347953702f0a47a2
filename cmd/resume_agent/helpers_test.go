package main

import (
	"archive/zip"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the resume_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_agent ./cmd/resume_agent'", binaryPath)
	}

	return binaryPath
}

// runBinary runs resume_agent with args and an empty environment overlay
func runBinary(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(t), args...)
	cmd.Env = append(os.Environ(), "RESUME_PINNED_EXPERIENCES=", "LOG_LEVEL=", "ENV=local")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func exitCode(err error) int {
	if exitError, ok := err.(*exec.ExitError); ok {
		return exitError.ExitCode()
	}
	return 0
}

const testDocumentHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const testStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style></w:styles>`

// writeResume writes a small .docx resume; lines starting with "- " become bullets
// and lines starting with "# " become headings
func writeResume(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	var body strings.Builder
	body.WriteString(testDocumentHead)
	for _, line := range lines {
		style := ""
		switch {
		case strings.HasPrefix(line, "- "):
			style, line = "ListBullet", strings.TrimPrefix(line, "- ")
		case strings.HasPrefix(line, "# "):
			style, line = "Heading1", strings.TrimPrefix(line, "# ")
		}
		body.WriteString("<w:p>")
		if style != "" {
			body.WriteString(`<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
		}
		body.WriteString("<w:r><w:t>" + line + "</w:t></w:r></w:p>")
	}
	body.WriteString("</w:body></w:document>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml": body.String(),
		"word/styles.xml":   testStyles,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func sampleResume(t *testing.T, dir string) string {
	return writeResume(t, dir,
		"# Experience",
		"Acme | Analyst | 2020-2022",
		"- Led team of 5",
		"- Built SQL reporting for 40 stores",
		"- Reduced KYC backlog by 200 cases",
	)
}
