package models

import (
	"time"
)

// Shared date helpers used by forms and templates

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}
