/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: eventrelated.go
Description: Event-related EMG feature extraction for Myograph. Produces one
result row per epoch (activation flag, amplitude mean and peak), keyed by the
epoch's marker label. Accepts either an epoch collection or a single labeled
frame, which is grouped by its marker column first.
*/

package features

import (
	"fmt"

	"github.com/kleascm/myograph/pkg/signal"
)

// EventRelated extracts per-epoch features from event-locked EMG data.
type EventRelated struct{}

// NewEventRelated creates an event-related feature extractor.
func NewEventRelated() *EventRelated {
	return &EventRelated{}
}

// Name returns the name of this extractor.
func (e *EventRelated) Name() string {
	return "EventRelated"
}

// Description returns a description of this extractor.
func (e *EventRelated) Description() string {
	return "Extracts activation and amplitude features per short, event-locked epoch"
}

// epochStats is one epoch's worth of samples.
type epochStats struct {
	label     string
	amplitude []float64
	activity  []float64
}

// Analyze extracts event-related features: one row per epoch with the epoch's
// Label, EMG_Activation, EMG_Amplitude_Mean, and EMG_Amplitude_Max.
func (e *EventRelated) Analyze(data signal.Dataset, samplingRate float64) (*signal.Frame, error) {
	var epochs []epochStats
	var err error

	if data.Epoched() {
		epochs, err = collectEpochs(data.Epochs())
	} else {
		epochs, err = splitByLabel(data.Frame())
	}
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(epochs))
	activation := make([]float64, len(epochs))
	ampMean := make([]float64, len(epochs))
	ampMax := make([]float64, len(epochs))

	for i, ep := range epochs {
		labels[i] = ep.label
		if anyActive(ep.activity) {
			activation[i] = 1
		}
		ampMean[i] = mean(ep.amplitude)
		ampMax[i] = max(ep.amplitude)
	}

	result := signal.NewFrame()
	if err := result.AddTextColumn("Label", labels); err != nil {
		return nil, err
	}
	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"EMG_Activation", activation},
		{"EMG_Amplitude_Mean", ampMean},
		{"EMG_Amplitude_Max", ampMax},
	} {
		if err := result.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// collectEpochs gathers per-epoch samples from a collection in insertion order.
func collectEpochs(collection *signal.EpochCollection) ([]epochStats, error) {
	var epochs []epochStats
	for _, id := range collection.IDs() {
		frame := collection.Get(id)
		amp, err := amplitude(frame)
		if err != nil {
			return nil, fmt.Errorf("epoch %q: %w", id, err)
		}
		epochs = append(epochs, epochStats{
			label:     epochLabel(id, frame),
			amplitude: amp,
			activity:  activity(frame),
		})
	}
	return epochs, nil
}

// splitByLabel groups a single labeled frame into epochs by its marker column,
// in order of first appearance.
func splitByLabel(frame *signal.Frame) ([]epochStats, error) {
	name := frame.ColumnContaining(labelSubstring)
	if name == "" {
		return nil, fmt.Errorf("no marker column to group epochs by (columns: %v)", frame.Columns())
	}
	labels, err := labelValues(frame, name)
	if err != nil {
		return nil, err
	}
	amp, err := amplitude(frame)
	if err != nil {
		return nil, err
	}
	act := activity(frame)

	index := make(map[string]int)
	var epochs []epochStats
	for row, label := range labels {
		i, ok := index[label]
		if !ok {
			i = len(epochs)
			index[label] = i
			epochs = append(epochs, epochStats{label: label})
		}
		epochs[i].amplitude = append(epochs[i].amplitude, amp[row])
		if act != nil {
			epochs[i].activity = append(epochs[i].activity, act[row])
		}
	}
	return epochs, nil
}

// labelValues reads the marker column as strings regardless of storage type.
func labelValues(frame *signal.Frame, name string) ([]string, error) {
	if vals := frame.Text(name); vals != nil {
		return vals, nil
	}
	if vals := frame.Numeric(name); vals != nil {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = fmt.Sprintf("%g", v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("marker column %q has no values", name)
}
