package utils

import (
	"strings"
	"time"
)

// The sales API emits Python isoformat timestamps, with or without a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a sale timestamp for display, falling back to the raw text.
func FormatTimestamp(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format("02/01/2006 15:04:05")
}
