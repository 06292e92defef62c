// Package utils holds small helpers shared by the services: parsing the
// Spanish-formatted numerics the upstream API sends and date helpers for
// the "YYYY-MM-DD HH:MM:SS" fecha_sorteo strings.
package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseSpanishInt parses an integer like "1.234.567" (dot as thousands
// separator). Returns nil when the value is empty or unparseable.
func ParseSpanishInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseSpanishFloat parses a decimal like "1.234,56" (dot thousands, comma
// decimal). Returns nil when the value is empty or unparseable.
func ParseSpanishFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// DateOnly returns the "YYYY-MM-DD" part of a fecha_sorteo string.
func DateOnly(fecha string) string {
	fecha = strings.TrimSpace(fecha)
	if idx := strings.IndexByte(fecha, ' '); idx >= 0 {
		return fecha[:idx]
	}
	return fecha
}

// WeekdayName returns the English weekday name for a "YYYY-MM-DD" date, or
// "" when the date does not parse.
func WeekdayName(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

// CompactDate converts "YYYY-MM-DD" to the "YYYYMMDD" form the upstream
// buscadorSorteos API expects.
func CompactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}
