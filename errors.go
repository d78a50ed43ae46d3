package controls

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrMismatch matches any *MismatchError via errors.Is.
	ErrMismatch = errors.New("controls: kind mismatch")
	// ErrMissing matches any *MissingError via errors.Is.
	ErrMissing = errors.New("controls: not registered")
)

// MismatchError reports an operation of one kind against a name registered
// under another. It is raised with panic: reusing a name with a different
// schema is a caller bug.
type MismatchError struct {
	Group string
	Name  string
	Want  Kind
	Got   Kind
}

func (e *MismatchError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("controls: %q is %s, not %s", e.Name, e.Got, e.Want)
	}
	return fmt.Sprintf("controls: %s.%s is %s, not %s", e.Group, e.Name, e.Got, e.Want)
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// MissingError reports a lookup of a name that was never registered.
// Suggestion holds the closest registered name, if any is close enough.
type MissingError struct {
	What       string // "group", "action group", "button"
	Name       string
	Suggestion string
}

func (e *MissingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "controls: %s %q is not registered", e.What, e.Name)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// newMissing builds a MissingError, picking the candidate with the smallest
// edit distance as a suggestion. Candidates more than max(len(name)/2, 2)
// edits away are not suggested.
func newMissing(what, name string, candidates []string) *MissingError {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(len(name)/2, 2) {
		best = ""
	}
	return &MissingError{What: what, Name: name, Suggestion: best}
}
