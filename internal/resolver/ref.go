package resolver

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind is the entity kind a reference points at.
type Kind string

const (
	KindTask    Kind = "task"
	KindProject Kind = "project"
)

// RefType tells how a raw reference string should be interpreted.
type RefType int

const (
	RefQuery RefType = iota
	RefURL
	RefExplicitID
)

const explicitIDPrefix = "id:"

// Matches https://app.todoist.com/app/task/buy-milk-6X7rM8997g3RQmvh and .../app/project/2203306141.
var webURLPattern = regexp.MustCompile(`^https?://[^/\s]+/app/([a-z]+)/([^/?#\s]+)`)

// Ref is a parsed reference. Kind is only set for RefURL.
type Ref struct {
	Type  RefType
	Kind  Kind
	ID    string
	Query string
}

// ParseRef classifies a trimmed, non-empty reference.
func ParseRef(ref string) Ref {
	if m := webURLPattern.FindStringSubmatch(ref); m != nil {
		return Ref{Type: RefURL, Kind: Kind(m[1]), ID: idFromSlug(m[2])}
	}
	if strings.HasPrefix(ref, explicitIDPrefix) {
		return Ref{Type: RefExplicitID, ID: strings.TrimSpace(strings.TrimPrefix(ref, explicitIDPrefix))}
	}
	return Ref{Type: RefQuery, Query: ref}
}

// DirectID returns the id named by a URL of the given kind or by an id: reference.
// It makes no remote call and reports false for free-text references.
func DirectID(kind Kind, ref string) (string, bool) {
	parsed := ParseRef(strings.TrimSpace(ref))
	switch {
	case parsed.ID == "":
		return "", false
	case parsed.Type == RefExplicitID:
		return parsed.ID, true
	case parsed.Type == RefURL && parsed.Kind == kind:
		return parsed.ID, true
	}
	return "", false
}

// idFromSlug returns the part after the last hyphen, or the whole segment.
func idFromSlug(seg string) string {
	if i := strings.LastIndex(seg, "-"); i >= 0 && i < len(seg)-1 {
		return seg[i+1:]
	}
	return seg
}

// LooksLikeID reports whether s could be a raw entity id: no whitespace, and
// either all digits or alphanumeric with at least one letter and one digit.
func LooksLikeID(s string) bool {
	if s == "" {
		return false
	}
	var letters, digits int
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			digits++
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			letters++
		default:
			return false
		}
	}
	return letters == 0 || digits > 0
}
