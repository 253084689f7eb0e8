/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: csv.go
Description: CSV loading and writing for Myograph. Reads processed signal
exports into frames (numeric where parseable, text otherwise), splits labeled
recordings into epoch collections, and writes result frames back out.
*/

package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kleascm/myograph/pkg/signal"
)

// LoadCSV reads a CSV file with a header row into a Frame. A column becomes
// numeric when every value parses as a float; otherwise it is kept as text.
func LoadCSV(path string) (*signal.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	return ReadCSV(file)
}

// ReadCSV reads CSV content with a header row into a Frame.
func ReadCSV(r io.Reader) (*signal.Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	header := records[0]
	rows := records[1:]
	frame := signal.NewFrame()

	for col, name := range header {
		values := make([]string, len(rows))
		numeric := make([]float64, len(rows))
		isNumeric := true
		for i, row := range rows {
			if col >= len(row) {
				return nil, fmt.Errorf("row %d has %d fields, header has %d", i+2, len(row), len(header))
			}
			values[i] = row[col]
			if isNumeric {
				v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
				if err != nil {
					isNumeric = false
					continue
				}
				numeric[i] = v
			}
		}
		if isNumeric && len(rows) > 0 {
			err = frame.AddColumn(name, numeric)
		} else {
			err = frame.AddTextColumn(name, values)
		}
		if err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// SplitEpochs groups a labeled frame into an epoch collection by the values
// of the given marker column, in order of first appearance. Signal columns
// are carried into each epoch; the marker column itself is carried too so the
// epochs stay self-describing.
func SplitEpochs(frame *signal.Frame, labelColumn string) (*signal.EpochCollection, error) {
	if labelColumn == "" {
		labelColumn = frame.ColumnContaining("Label")
	}
	if labelColumn == "" || !frame.HasColumn(labelColumn) {
		return nil, fmt.Errorf("marker column %q not found (columns: %v)", labelColumn, frame.Columns())
	}

	labels, err := columnAsText(frame, labelColumn)
	if err != nil {
		return nil, err
	}

	// Row indices per label, first appearance order
	var order []string
	groups := make(map[string][]int)
	for row, label := range labels {
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], row)
	}

	collection := signal.NewEpochCollection()
	for _, label := range order {
		epoch := signal.NewFrame()
		for _, name := range frame.Columns() {
			if frame.IsNumeric(name) {
				all := frame.Numeric(name)
				values := make([]float64, 0, len(groups[label]))
				for _, row := range groups[label] {
					values = append(values, all[row])
				}
				err = epoch.AddColumn(name, values)
			} else {
				all := frame.Text(name)
				values := make([]string, 0, len(groups[label]))
				for _, row := range groups[label] {
					values = append(values, all[row])
				}
				err = epoch.AddTextColumn(name, values)
			}
			if err != nil {
				return nil, err
			}
		}
		if err := collection.Add(label, epoch); err != nil {
			return nil, err
		}
	}
	return collection, nil
}

// WriteCSV writes a frame as CSV with a header row.
func WriteCSV(frame *signal.Frame, w io.Writer) error {
	out := csv.NewWriter(w)
	cols := frame.Columns()
	if err := out.Write(cols); err != nil {
		return err
	}
	for row := 0; row < frame.Len(); row++ {
		record := make([]string, len(cols))
		for i, name := range cols {
			record[i] = frame.Value(name, row)
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// Render formats a frame as an aligned text table for terminal output.
func Render(frame *signal.Frame) string {
	cols := frame.Columns()
	if len(cols) == 0 {
		return "(empty)\n"
	}

	widths := make([]int, len(cols))
	cells := make([][]string, frame.Len())
	for i, name := range cols {
		widths[i] = len(name)
	}
	for row := 0; row < frame.Len(); row++ {
		cells[row] = make([]string, len(cols))
		for i, name := range cols {
			v := frame.Value(name, row)
			cells[row][i] = v
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	var b strings.Builder
	for i, name := range cols {
		fmt.Fprintf(&b, "%-*s  ", widths[i], name)
	}
	b.WriteString("\n")
	for row := range cells {
		for i, v := range cells[row] {
			fmt.Fprintf(&b, "%-*s  ", widths[i], v)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// columnAsText reads any column as strings.
func columnAsText(frame *signal.Frame, name string) ([]string, error) {
	if vals := frame.Text(name); vals != nil {
		return vals, nil
	}
	if vals := frame.Numeric(name); vals != nil {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return out, nil
	}
	return nil, fmt.Errorf("column %q not found", name)
}
