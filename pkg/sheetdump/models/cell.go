// Package models defines data structures for sheet dumps.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Cell holds a single typed cell value.
//
// Value is one of nil, string, int64, float64, bool, time.Time (date or
// date-time cells) or time.Duration (time-of-day cells).
type Cell struct {
	Value interface{} `json:"v,omitempty"`
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Value == nil
}

// Text returns the cell value converted to text. Empty cells yield "".
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatFloat(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case time.Duration:
		return formatClock(v)
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat renders a float in shortest round-trip form. Magnitudes below
// 1e-4 or from 1e16 up use exponent notation, and integral values keep a
// trailing ".0".
func formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatClock renders a time-of-day duration as hh:mm:ss.
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", int64(h), int64(m), int64(d/time.Second))
}

// Row represents a single worksheet row.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the row's cells from column A onward.
	Cells []Cell `json:"c"`
}

// Texts returns the text of every cell in the row.
func (r Row) Texts() []string {
	texts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		texts[i] = c.Text()
	}
	return texts
}
