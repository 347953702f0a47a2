// Package pipeline runs the deterministic dry run that turns a job description
// and an experience bank into reviewable artifacts.
package pipeline

import "fmt"

// OutputDirError is returned when the artifact directory cannot be used.
// Nothing has been written when it is returned.
type OutputDirError struct {
	Path    string
	Message string
	Cause   error
}

func (e *OutputDirError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output directory %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("output directory %s: %s", e.Path, e.Message)
}

func (e *OutputDirError) Unwrap() error {
	return e.Cause
}

// WriteError is returned when an artifact file cannot be written
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
