// Package validation lints bullet edit plans and gates risky edits for human review.
package validation

import (
	"fmt"
	"strings"
)

// GatedError reports edits that still need user approval
type GatedError struct {
	Indices []int
}

func (e *GatedError) Error() string {
	idx := make([]string, len(e.Indices))
	for i, n := range e.Indices {
		idx[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("edit plan blocked: %d edit(s) need user approval (indices %s)",
		len(e.Indices), strings.Join(idx, ", "))
}
