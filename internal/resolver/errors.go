package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCandidates bounds the candidate list carried by AmbiguousError.
const MaxCandidates = 5

var ErrEmptyReference = errors.New("empty reference: pass a name, a URL, or id:<id>")

// WrongURLKindError is returned when a URL names a different entity kind than requested.
type WrongURLKindError struct {
	Want Kind
	Got  Kind
}

func (e *WrongURLKindError) Error() string {
	return fmt.Sprintf("expected a %s URL but got a %s URL", e.Want, e.Got)
}

// Candidate is one entry of an ambiguity report.
type Candidate struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// AmbiguousError lists up to MaxCandidates matches in the order the service returned them.
type AmbiguousError struct {
	Kind       Kind
	Ref        string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q matches several %ss:", e.Ref, e.Kind)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\n  - %s (id:%s)", c.Name, c.ID)
	}
	b.WriteString("\nuse a more specific name, a URL, or id:<id>")
	return b.String()
}

// NotFoundError means no strategy produced an entity. Cause holds the last
// underlying failure, if any.
type NotFoundError struct {
	Kind  Kind
	Ref   string
	Cause error
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found: %q (use a name, a URL, or id:<id>)", e.Kind, e.Ref)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}
