package model

import (
	"strings"
	"time"
)

// Date is an optional calendar date. The sheets mix DD-MM-YYYY with the
// occasional ISO form, and some cells are blank or free text; Valid is
// false for anything that does not parse. Callers choose what to do with
// invalid dates (exclude from range filters, sort last) instead of the
// old behavior of silently substituting the current instant.
type Date struct {
	Time  time.Time
	Valid bool
}

// ParseDMY parses a detection-date cell. DD-MM-YYYY is the documented sheet
// layout; YYYY-MM-DD appears in older rows and is accepted too.
func ParseDMY(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range []string{"02-01-2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t, Valid: true}
		}
	}
	return Date{}
}

// Year extracts the year token from a "DD-MM-YYYY HH:MM" cell by literal
// string splitting: third dash segment, first space-separated token. Dates
// in any other layout will not match a year filter; that quirk is part of
// the filter contract.
func Year(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return ""
	}
	return strings.SplitN(parts[2], " ", 2)[0]
}
