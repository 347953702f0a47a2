// Package docx reads and edits Word documents in place: it tags bullet
// paragraphs with stable bookmarks and rewrites bullet text without touching
// the surrounding document structure.
package docx

import "fmt"

// DocumentError represents a failure reading, parsing or writing a .docx file
type DocumentError struct {
	Message string
	Path    string
	Cause   error
}

func (e *DocumentError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("document error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("document error: %s", msg)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// StructuralViolationError represents an edit that would change the document skeleton
type StructuralViolationError struct {
	Message        string
	ParagraphIndex int
}

func (e *StructuralViolationError) Error() string {
	if e.ParagraphIndex >= 0 {
		return fmt.Sprintf("structural violation at paragraph %d: %s", e.ParagraphIndex, e.Message)
	}
	return fmt.Sprintf("structural violation: %s", e.Message)
}
