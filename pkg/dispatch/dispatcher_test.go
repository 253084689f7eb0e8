/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dispatcher_test.go
Description: Tests for the Myograph dispatcher. Covers duration-based auto
resolution with its 10-second boundary, marker validation on the event-related
path, unsupported input shapes, and verbatim delegation of results and errors.
*/

package dispatch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/myograph/pkg/dispatch"
	"github.com/kleascm/myograph/pkg/signal"
)

// stubExtractor records invocations and returns a canned result.
type stubExtractor struct {
	name   string
	result *signal.Frame
	err    error
	calls  int
	got    signal.Dataset
}

func (s *stubExtractor) Analyze(data signal.Dataset, samplingRate float64) (*signal.Frame, error) {
	s.calls++
	s.got = data
	return s.result, s.err
}

func (s *stubExtractor) Name() string        { return s.name }
func (s *stubExtractor) Description() string { return s.name }

// labeledFrame builds a frame of n rows with an amplitude column and a marker
// column.
func labeledFrame(t *testing.T, n int) *signal.Frame {
	t.Helper()
	frame := signal.NewFrame()
	amp := make([]float64, n)
	labels := make([]string, n)
	for i := range amp {
		amp[i] = float64(i)
		labels[i] = "1"
	}
	require.NoError(t, frame.AddColumn("EMG_Amplitude", amp))
	require.NoError(t, frame.AddTextColumn("Label", labels))
	return frame
}

// unlabeledFrame builds a frame of n rows with only an amplitude column.
func unlabeledFrame(t *testing.T, n int) *signal.Frame {
	t.Helper()
	frame := signal.NewFrame()
	require.NoError(t, frame.AddColumn("EMG_Amplitude", make([]float64, n)))
	return frame
}

func newTestDispatcher(t *testing.T) (*dispatch.Dispatcher, *stubExtractor, *stubExtractor) {
	t.Helper()
	event := &stubExtractor{name: "event", result: signal.NewFrame()}
	interval := &stubExtractor{name: "interval", result: signal.NewFrame()}
	d, err := dispatch.NewDispatcher(event, interval, nil)
	require.NoError(t, err)
	return d, event, interval
}

// TestAutoResolution tests duration-based method selection, including the
// inclusive 10-second boundary.
func TestAutoResolution(t *testing.T) {
	tests := []struct {
		rows         int
		samplingRate float64
		wantEvent    bool
	}{
		{rows: 200, samplingRate: 1000, wantEvent: true},      // 0.2s
		{rows: 9999, samplingRate: 1000, wantEvent: true},     // 9.999s
		{rows: 10000, samplingRate: 1000, wantEvent: false},   // exactly 10s
		{rows: 10001, samplingRate: 1000, wantEvent: false},   // 10.001s
		{rows: 3600000, samplingRate: 1000, wantEvent: false}, // 1h
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%drows_at_%gHz", tt.rows, tt.samplingRate), func(t *testing.T) {
			d, event, interval := newTestDispatcher(t)

			_, err := d.Analyze(labeledFrame(t, tt.rows), tt.samplingRate, "auto")
			require.NoError(t, err)

			if tt.wantEvent {
				assert.Equal(t, 1, event.calls)
				assert.Equal(t, 0, interval.calls)
			} else {
				assert.Equal(t, 0, event.calls)
				assert.Equal(t, 1, interval.calls)
			}
		})
	}
}

// TestAutoResolutionEpochCollection tests that an epoch mapping's duration
// comes from a single representative epoch.
func TestAutoResolutionEpochCollection(t *testing.T) {
	d, event, interval := newTestDispatcher(t)

	// Two epochs of 200 rows at 1000 Hz: 0.2s -> event-related
	data := map[int]*signal.Frame{
		0: labeledFrame(t, 200),
		1: labeledFrame(t, 200),
	}

	_, err := d.Analyze(data, 1000, "auto")
	require.NoError(t, err)
	assert.Equal(t, 1, event.calls)
	assert.Equal(t, 0, interval.calls)
}

// TestExplicitDirectives tests that explicit directives override duration.
func TestExplicitDirectives(t *testing.T) {
	// A 1-hour recording still goes event-related when forced
	d, event, interval := newTestDispatcher(t)
	_, err := d.Analyze(labeledFrame(t, 3600000), 1000, "event-related")
	require.NoError(t, err)
	assert.Equal(t, 1, event.calls)

	// A 0.2s epoch still goes interval-related when forced
	d, event, interval = newTestDispatcher(t)
	_, err = d.Analyze(labeledFrame(t, 200), 1000, "interval-related")
	require.NoError(t, err)
	assert.Equal(t, 0, event.calls)
	assert.Equal(t, 1, interval.calls)
}

// TestMissingMarkerColumn tests that the event-related path rejects input
// without a marker column.
func TestMissingMarkerColumn(t *testing.T) {
	d, event, _ := newTestDispatcher(t)

	_, err := d.Analyze(unlabeledFrame(t, 200), 1000, "event-related")
	require.Error(t, err)
	assert.ErrorIs(t, err, dispatch.ErrMissingMarker)
	assert.Equal(t, 0, event.calls)
}

// TestMarkerColumnSubstringMatch tests that any column name containing
// "Label" satisfies the marker check.
func TestMarkerColumnSubstringMatch(t *testing.T) {
	d, event, _ := newTestDispatcher(t)

	frame := signal.NewFrame()
	require.NoError(t, frame.AddColumn("EMG_Amplitude", make([]float64, 100)))
	require.NoError(t, frame.AddTextColumn("Condition_Label", make([]string, 100)))

	_, err := d.Analyze(frame, 1000, "event-related")
	require.NoError(t, err)
	assert.Equal(t, 1, event.calls)
}

// TestIntervalPathSkipsMarkerCheck tests that interval-related analysis does
// not require a marker column.
func TestIntervalPathSkipsMarkerCheck(t *testing.T) {
	d, _, interval := newTestDispatcher(t)

	_, err := d.Analyze(unlabeledFrame(t, 200), 1000, "interval-related")
	require.NoError(t, err)
	assert.Equal(t, 1, interval.calls)
}

// TestUnrecognizedMethod tests that an unknown directive fails explicitly,
// whatever the input looks like.
func TestUnrecognizedMethod(t *testing.T) {
	d, event, interval := newTestDispatcher(t)

	for _, data := range []any{
		labeledFrame(t, 200),
		unlabeledFrame(t, 3600000),
		"not even a frame",
	} {
		_, err := d.Analyze(data, 1000, "banana")
		require.Error(t, err)
		assert.ErrorIs(t, err, dispatch.ErrUnrecognizedMethod)
	}
	assert.Equal(t, 0, event.calls)
	assert.Equal(t, 0, interval.calls)
}

// TestUnsupportedInputShape tests rejection of anything that is not a frame
// or an epoch collection.
func TestUnsupportedInputShape(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	for _, data := range []any{
		nil,
		42,
		"table",
		[]float64{1, 2, 3},
		(*signal.Frame)(nil),
	} {
		_, err := d.Analyze(data, 1000, "auto")
		require.Error(t, err, "data: %v", data)
		assert.ErrorIs(t, err, dispatch.ErrUnsupportedInput)
	}
}

// TestInvalidSamplingRate tests rejection of non-positive sampling rates.
func TestInvalidSamplingRate(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	for _, rate := range []float64{0, -1, -1000} {
		_, err := d.Analyze(labeledFrame(t, 200), rate, "auto")
		require.Error(t, err)
		assert.ErrorIs(t, err, dispatch.ErrInvalidSamplingRate)
	}
}

// TestResultPassthrough tests that the dispatcher returns the extractor's
// result untouched.
func TestResultPassthrough(t *testing.T) {
	want := signal.NewFrame()
	require.NoError(t, want.AddColumn("EMG_Activation", []float64{1}))

	event := &stubExtractor{name: "event", result: want}
	interval := &stubExtractor{name: "interval", result: signal.NewFrame()}
	d, err := dispatch.NewDispatcher(event, interval, nil)
	require.NoError(t, err)

	got, err := d.Analyze(labeledFrame(t, 200), 1000, "event-related")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

// TestDownstreamErrorPassthrough tests that extractor failures propagate with
// no added context.
func TestDownstreamErrorPassthrough(t *testing.T) {
	downstream := errors.New("extractor exploded")
	event := &stubExtractor{name: "event", result: signal.NewFrame()}
	interval := &stubExtractor{name: "interval", err: downstream}
	d, err := dispatch.NewDispatcher(event, interval, nil)
	require.NoError(t, err)

	_, err = d.Analyze(unlabeledFrame(t, 200), 1000, "interval-related")
	require.Error(t, err)
	assert.Same(t, downstream, err)
}

// TestDelegationForwardsDataset tests that the extractor receives the input
// tables unmodified.
func TestDelegationForwardsDataset(t *testing.T) {
	d, event, _ := newTestDispatcher(t)

	frame := labeledFrame(t, 200)
	_, err := d.Analyze(frame, 1000, "event-related")
	require.NoError(t, err)
	require.Equal(t, 1, event.calls)
	assert.Same(t, frame, event.got.Frame())
}

// TestNewDispatcherRequiresExtractors tests constructor validation.
func TestNewDispatcherRequiresExtractors(t *testing.T) {
	interval := &stubExtractor{name: "interval"}
	_, err := dispatch.NewDispatcher(nil, interval, nil)
	assert.Error(t, err)

	event := &stubExtractor{name: "event"}
	_, err = dispatch.NewDispatcher(event, nil, nil)
	assert.Error(t, err)
}
