/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frame.go
Description: Tabular signal data model for Myograph. A Frame is an ordered set of
named columns over a shared row axis, holding processed EMG channels as numeric
columns and epoch markers as text columns.
*/

package signal

import (
	"fmt"
	"strings"
)

// Frame represents a processed signal table: rows are points in time, columns
// are named channels or derived signals. Column order is insertion order.
// Numeric and text columns share the same row count.
type Frame struct {
	order   []string
	numeric map[string][]float64
	text    map[string][]string
	rows    int
}

// NewFrame creates an empty Frame.
func NewFrame() *Frame {
	return &Frame{
		numeric: make(map[string][]float64),
		text:    make(map[string][]string),
	}
}

// AddColumn adds a numeric column to the frame.
// The first column added fixes the row count; later columns must match it.
func (f *Frame) AddColumn(name string, values []float64) error {
	if err := f.reserve(name, len(values)); err != nil {
		return err
	}
	f.numeric[name] = values
	return nil
}

// AddTextColumn adds a text column to the frame, typically an epoch marker
// column such as "Label".
func (f *Frame) AddTextColumn(name string, values []string) error {
	if err := f.reserve(name, len(values)); err != nil {
		return err
	}
	f.text[name] = values
	return nil
}

func (f *Frame) reserve(name string, n int) error {
	if name == "" {
		return fmt.Errorf("column name must not be empty")
	}
	if _, ok := f.numeric[name]; ok {
		return fmt.Errorf("duplicate column %q", name)
	}
	if _, ok := f.text[name]; ok {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(f.order) > 0 && n != f.rows {
		return fmt.Errorf("column %q has %d rows, frame has %d", name, n, f.rows)
	}
	f.order = append(f.order, name)
	f.rows = n
	return nil
}

// Len returns the number of rows in the frame.
func (f *Frame) Len() int {
	return f.rows
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// HasColumn reports whether the frame has a column with the exact name.
func (f *Frame) HasColumn(name string) bool {
	_, num := f.numeric[name]
	_, txt := f.text[name]
	return num || txt
}

// HasColumnContaining reports whether any column name contains the substring.
func (f *Frame) HasColumnContaining(substr string) bool {
	return f.ColumnContaining(substr) != ""
}

// ColumnContaining returns the first column name containing the substring,
// or "" when none matches.
func (f *Frame) ColumnContaining(substr string) string {
	for _, name := range f.order {
		if strings.Contains(name, substr) {
			return name
		}
	}
	return ""
}

// Numeric returns the values of a numeric column, or nil when no numeric
// column with that name exists.
func (f *Frame) Numeric(name string) []float64 {
	return f.numeric[name]
}

// Text returns the values of a text column, or nil when no text column with
// that name exists.
func (f *Frame) Text(name string) []string {
	return f.text[name]
}

// IsNumeric reports whether the named column holds numeric values.
func (f *Frame) IsNumeric(name string) bool {
	_, ok := f.numeric[name]
	return ok
}

// Value returns the value at the given row of the named column formatted as a
// string, for rendering. Numeric values use %g.
func (f *Frame) Value(name string, row int) string {
	if vals, ok := f.numeric[name]; ok && row < len(vals) {
		return fmt.Sprintf("%g", vals[row])
	}
	if vals, ok := f.text[name]; ok && row < len(vals) {
		return vals[row]
	}
	return ""
}

// Duration returns the duration of the frame in seconds for the given
// sampling rate (rows / rate).
func (f *Frame) Duration(samplingRate float64) float64 {
	return float64(f.rows) / samplingRate
}
