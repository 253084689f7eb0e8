/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: intervalrelated.go
Description: Interval-related EMG feature extraction for Myograph. Summarizes a
longer continuous recording in a single row (burst count, amplitude mean and
spread), or one row per entry for a collection of separate periods.
*/

package features

import (
	"fmt"

	"github.com/kleascm/myograph/pkg/signal"
)

// IntervalRelated extracts summary features from continuous EMG data.
type IntervalRelated struct{}

// NewIntervalRelated creates an interval-related feature extractor.
func NewIntervalRelated() *IntervalRelated {
	return &IntervalRelated{}
}

// Name returns the name of this extractor.
func (e *IntervalRelated) Name() string {
	return "IntervalRelated"
}

// Description returns a description of this extractor.
func (e *IntervalRelated) Description() string {
	return "Summarizes activation count and amplitude over a continuous recording"
}

// Analyze extracts interval-related features: EMG_Activation_N,
// EMG_Amplitude_Mean, and EMG_Amplitude_SD. A single frame yields one row; a
// collection yields one row per entry, keyed by a Label column.
func (e *IntervalRelated) Analyze(data signal.Dataset, samplingRate float64) (*signal.Frame, error) {
	if !data.Epoched() {
		row, err := intervalRow(data.Frame())
		if err != nil {
			return nil, err
		}
		return intervalResult(nil, []intervalFeatures{row})
	}

	collection := data.Epochs()
	labels := make([]string, 0, collection.Len())
	rows := make([]intervalFeatures, 0, collection.Len())
	for _, id := range collection.IDs() {
		row, err := intervalRow(collection.Get(id))
		if err != nil {
			return nil, fmt.Errorf("period %q: %w", id, err)
		}
		labels = append(labels, id)
		rows = append(rows, row)
	}
	return intervalResult(labels, rows)
}

// intervalFeatures is one summary row.
type intervalFeatures struct {
	activationN float64
	ampMean     float64
	ampSD       float64
}

// intervalRow summarizes one continuous period.
func intervalRow(frame *signal.Frame) (intervalFeatures, error) {
	amp, err := amplitude(frame)
	if err != nil {
		return intervalFeatures{}, err
	}
	return intervalFeatures{
		activationN: float64(burstCount(activity(frame))),
		ampMean:     mean(amp),
		ampSD:       std(amp),
	}, nil
}

// intervalResult assembles the result frame. labels may be nil for the
// single-frame case.
func intervalResult(labels []string, rows []intervalFeatures) (*signal.Frame, error) {
	activationN := make([]float64, len(rows))
	ampMean := make([]float64, len(rows))
	ampSD := make([]float64, len(rows))
	for i, r := range rows {
		activationN[i] = r.activationN
		ampMean[i] = r.ampMean
		ampSD[i] = r.ampSD
	}

	result := signal.NewFrame()
	if labels != nil {
		if err := result.AddTextColumn("Label", labels); err != nil {
			return nil, err
		}
	}
	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"EMG_Activation_N", activationN},
		{"EMG_Amplitude_Mean", ampMean},
		{"EMG_Amplitude_SD", ampSD},
	} {
		if err := result.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return result, nil
}
