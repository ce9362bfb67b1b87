// Package dates interpreta las fechas que llegan de los formularios en cualquier formato común.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse interpreta s ("2025-04-10", "2025-04-10T14:30:00Z", "10/04/2025", ...).
// Las fechas sin zona se interpretan en UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha no reconocida %q: %w", s, err)
	}
	return t, nil
}

// ParseOr devuelve def si s está vacío.
func ParseOr(s string, def time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return Parse(s)
}

// Day trunca t a medianoche de su día, en su propia zona.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
