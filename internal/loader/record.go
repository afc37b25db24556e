package loader

import (
	"math"
	"strconv"
	"strings"
)

// Record is one input row keyed by column name. Values are kept exactly as
// read; accessors only decide what an absent or empty cell means.
type Record struct {
	line   int
	fields map[string]string
}

// Line is the 1-based source line.
func (r Record) Line() int {
	return r.line
}

// Get returns the named cell, or "" when the column is absent.
func (r Record) Get(field string) string {
	return r.fields[field]
}

// Bool reads truthy spellings (true, 1, 1.0, yes, y, t); everything else,
// including an absent column, is false.
func (r Record) Bool(field string) bool {
	switch strings.ToLower(strings.TrimSpace(r.fields[field])) {
	case "true", "1", "1.0", "yes", "y", "t":
		return true
	default:
		return false
	}
}

// Number returns a float64 for finite numeric cells, nil for empty or absent
// ones, and the raw text otherwise so the remote side sees what the file
// held. NaN and Inf stay text since JSON has no encoding for them.
func (r Record) Number(field string) any {
	raw := strings.TrimSpace(r.fields[field])
	if raw == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return r.fields[field]
}
