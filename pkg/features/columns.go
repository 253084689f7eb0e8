/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: columns.go
Description: Column conventions shared by the Myograph feature extractors.
Processed EMG frames carry an amplitude envelope and a binary activity trace
under well-known column name substrings.
*/

package features

import (
	"fmt"

	"github.com/kleascm/myograph/pkg/signal"
)

const (
	amplitudeSubstring = "Amplitude"
	activitySubstring  = "Activity"
	onsetsSubstring    = "Onsets"
	labelSubstring     = "Label"
)

// amplitude returns the amplitude envelope of a processed frame, or an error
// when the frame carries no numeric amplitude column.
func amplitude(frame *signal.Frame) ([]float64, error) {
	name := frame.ColumnContaining(amplitudeSubstring)
	if name == "" || !frame.IsNumeric(name) {
		return nil, fmt.Errorf("no numeric amplitude column (columns: %v)", frame.Columns())
	}
	return frame.Numeric(name), nil
}

// activity returns the binary activity trace of a processed frame, preferring
// an Activity column over an Onsets column. Returns nil when neither exists.
func activity(frame *signal.Frame) []float64 {
	if name := frame.ColumnContaining(activitySubstring); name != "" && frame.IsNumeric(name) {
		return frame.Numeric(name)
	}
	if name := frame.ColumnContaining(onsetsSubstring); name != "" && frame.IsNumeric(name) {
		return frame.Numeric(name)
	}
	return nil
}

// epochLabel returns the label identifying an epoch: the first value of its
// marker column when present, the epoch id otherwise.
func epochLabel(id string, frame *signal.Frame) string {
	name := frame.ColumnContaining(labelSubstring)
	if name == "" {
		return id
	}
	if vals := frame.Text(name); len(vals) > 0 {
		return vals[0]
	}
	if vals := frame.Numeric(name); len(vals) > 0 {
		return fmt.Sprintf("%g", vals[0])
	}
	return id
}
