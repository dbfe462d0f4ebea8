package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	nextDaysRe   = regexp.MustCompile(`^next (\d+) days?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser turns relative day expressions ("today", "next friday") into
// absolute days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
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

// Parse resolves relative to the start of the day it names.
// Unknown expressions resolve to today.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = normalize(relative)

	switch relative {
	case "", "today":
		return p.StartOfDay(base), nil
	case "tomorrow":
		return p.StartOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(base.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, base)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, base)
	}

	return p.StartOfDay(base), nil
}

// Window resolves relative to a window of whole days.
// "next N days" spans today through N days ahead, "this week" runs to
// Sunday, everything else is the single day Parse returns.
func (p *Parser) Window(relative string, base time.Time) (Range, error) {
	relative = normalize(relative)

	if m := nextDaysRe.FindStringSubmatch(relative); m != nil {
		n, _ := strconv.Atoi(m[1])
		start := p.StartOfDay(base)
		return Range{Start: start, End: p.EndOfDay(start.AddDate(0, 0, n))}, nil
	}

	if relative == "this week" {
		start := p.StartOfDay(base)
		daysLeft := (7 - int(start.Weekday())) % 7
		return Range{Start: start, End: p.EndOfDay(start.AddDate(0, 0, daysLeft))}, nil
	}

	day, err := p.Parse(relative, base)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: day, End: p.EndOfDay(day)}, nil
}

func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, error) {
	m := inDurationRe.FindStringSubmatch(relative)
	if m == nil {
		return base, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(m[1])
	switch unit := m[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(relative string, base time.Time) (time.Time, error) {
	name := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[name]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", name)
	}

	local := base.In(p.location)
	daysUntil := int(target - local.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(local.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns local midnight of t's day.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day starting at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
