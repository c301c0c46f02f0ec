package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var agoPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)

// Parser resolves day-level dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "Local" and "" select the process's local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || timezone == "Local" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a day reference to the start of that day.
// Accepted: today, yesterday, tomorrow, "N days|weeks|months ago", YYYY-MM-DD.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := agoPattern.FindStringSubmatch(relative); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return p.StartOfDay(baseTime.AddDate(0, 0, -amount)), nil
		case strings.HasPrefix(m[2], "week"):
			return p.StartOfDay(baseTime.AddDate(0, 0, -amount*7)), nil
		default:
			return p.StartOfDay(baseTime.AddDate(0, -amount, 0)), nil
		}
	}

	if d, err := time.ParseInLocation(time.DateOnly, relative, p.location); err == nil {
		return d, nil
	}

	return baseTime, fmt.Errorf("unrecognised date %q (use today, yesterday, \"3 days ago\" or YYYY-MM-DD)", relative)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns the last second of the given day in the parser's timezone.
// Days that gain or lose an hour to a DST change still end at 23:59:59 local time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return p.StartOfDay(p.StartOfDay(startOfDay).AddDate(0, 0, 1)).Add(-time.Second)
}

// DayBefore reports whether the calendar day (YYYY-MM-DD prefix of day) is strictly
// before the local day containing now. Time of day is ignored. Unparseable days are never before.
func (p *Parser) DayBefore(day string, now time.Time) bool {
	if len(day) < 10 {
		return false
	}
	d, err := time.ParseInLocation(time.DateOnly, day[:10], p.location)
	if err != nil {
		return false
	}
	return d.Before(p.StartOfDay(now))
}
