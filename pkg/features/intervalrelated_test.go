/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: intervalrelated_test.go
Description: Tests for the interval-related feature extractor. Covers burst
counting, amplitude summaries, and the one-row-per-entry shape for
collections of separate periods.
*/

package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/myograph/pkg/features"
	"github.com/kleascm/myograph/pkg/signal"
)

// TestIntervalRelatedSingleFrame tests the one-row summary of a continuous
// recording.
func TestIntervalRelatedSingleFrame(t *testing.T) {
	frame := signal.NewFrame()
	require.NoError(t, frame.AddColumn("EMG_Amplitude", []float64{2, 4, 6, 4}))
	// Two distinct bursts
	require.NoError(t, frame.AddColumn("EMG_Activity", []float64{1, 0, 1, 1}))

	result, err := features.NewIntervalRelated().Analyze(signal.DatasetFromFrame(frame), 1000)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Len())
	assert.Equal(t, []float64{2}, result.Numeric("EMG_Activation_N"))
	assert.InDelta(t, 4.0, result.Numeric("EMG_Amplitude_Mean")[0], 1e-12)
	assert.InDelta(t, 1.632993161855452, result.Numeric("EMG_Amplitude_SD")[0], 1e-9)
	assert.Nil(t, result.Text("Label"))
}

// TestIntervalRelatedBurstCounting tests rising-edge burst counting.
func TestIntervalRelatedBurstCounting(t *testing.T) {
	tests := []struct {
		name     string
		activity []float64
		want     float64
	}{
		{"silent", []float64{0, 0, 0}, 0},
		{"single_burst", []float64{0, 1, 1, 0}, 1},
		{"two_bursts", []float64{1, 0, 1, 0}, 2},
		{"active_throughout", []float64{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := signal.NewFrame()
			require.NoError(t, frame.AddColumn("EMG_Amplitude", make([]float64, len(tt.activity))))
			require.NoError(t, frame.AddColumn("EMG_Activity", tt.activity))

			result, err := features.NewIntervalRelated().Analyze(signal.DatasetFromFrame(frame), 1000)
			require.NoError(t, err)
			assert.Equal(t, []float64{tt.want}, result.Numeric("EMG_Activation_N"))
		})
	}
}

// TestIntervalRelatedOnsetsFallback tests that an onsets column counts when
// no activity column exists.
func TestIntervalRelatedOnsetsFallback(t *testing.T) {
	frame := signal.NewFrame()
	require.NoError(t, frame.AddColumn("EMG_Amplitude", []float64{1, 1, 1, 1}))
	require.NoError(t, frame.AddColumn("EMG_Onsets", []float64{0, 1, 0, 1}))

	result, err := features.NewIntervalRelated().Analyze(signal.DatasetFromFrame(frame), 1000)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, result.Numeric("EMG_Activation_N"))
}

// TestIntervalRelatedCollection tests one row per separate period, keyed by
// a Label column.
func TestIntervalRelatedCollection(t *testing.T) {
	rest := signal.NewFrame()
	require.NoError(t, rest.AddColumn("EMG_Amplitude", []float64{1, 1}))
	task := signal.NewFrame()
	require.NoError(t, task.AddColumn("EMG_Amplitude", []float64{5, 7}))
	require.NoError(t, task.AddColumn("EMG_Activity", []float64{1, 1}))

	collection := signal.NewEpochCollection()
	require.NoError(t, collection.Add("rest", rest))
	require.NoError(t, collection.Add("task", task))

	result, err := features.NewIntervalRelated().Analyze(signal.DatasetFromEpochs(collection), 1000)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Len())
	assert.Equal(t, []string{"rest", "task"}, result.Text("Label"))
	assert.Equal(t, []float64{0, 1}, result.Numeric("EMG_Activation_N"))
	assert.InDelta(t, 1.0, result.Numeric("EMG_Amplitude_Mean")[0], 1e-12)
	assert.InDelta(t, 6.0, result.Numeric("EMG_Amplitude_Mean")[1], 1e-12)
}

// TestIntervalRelatedMissingAmplitude tests failure without amplitude data.
func TestIntervalRelatedMissingAmplitude(t *testing.T) {
	frame := signal.NewFrame()
	require.NoError(t, frame.AddColumn("EMG_Raw", []float64{1, 2}))

	_, err := features.NewIntervalRelated().Analyze(signal.DatasetFromFrame(frame), 1000)
	assert.Error(t, err)
}
