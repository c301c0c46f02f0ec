package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// MaxMinutes bounds a parsed duration to one year.
const MaxMinutes = 365 * 24 * 60

// ParseMinutes parses "30m", "1h", "2h30m" or bare digits (minutes) into minutes.
func ParseMinutes(s string) (int, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, &ParseError{Input: s, Reason: "empty"}
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n < 0 {
			return 0, &ParseError{Input: s, Reason: "negative"}
		}
		if n > MaxMinutes {
			return 0, &ParseError{Input: s, Reason: "longer than a year"}
		}
		return n, nil
	}

	m := durationPattern.FindStringSubmatch(in)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, &ParseError{Input: s, Reason: "unknown format"}
	}

	total := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil || h > MaxMinutes/60 {
			return 0, &ParseError{Input: s, Reason: "longer than a year"}
		}
		total += h * 60
	}
	if m[2] != "" {
		mins, err := strconv.Atoi(m[2])
		if err != nil || mins > MaxMinutes {
			return 0, &ParseError{Input: s, Reason: "longer than a year"}
		}
		total += mins
	}
	if total > MaxMinutes {
		return 0, &ParseError{Input: s, Reason: "longer than a year"}
	}
	return total, nil
}
