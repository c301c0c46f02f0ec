package datemath

import "fmt"

// ParseError is returned by ParseMinutes for input outside the supported formats.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s (use 30m, 1h, 2h30m or bare minutes)", e.Input, e.Reason)
}
