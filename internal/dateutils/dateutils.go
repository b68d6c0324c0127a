// Package dateutils provides tolerant date parsing for imported workbook
// cells. The canonical layout is YYYY-MM-DD; a few common spreadsheet
// variants are accepted as fallbacks.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts tried in order when parsing an imported date cell.
var importLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"1-2-06",
	"01-02-06",
}

// ParseDate parses a date cell using the accepted layouts. The result is
// truncated to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range importLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// FormatISO renders a time as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}
