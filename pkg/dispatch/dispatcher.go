/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dispatcher.go
Description: Strategy dispatcher for Myograph EMG analysis. Classifies the input
shape, resolves the analysis method (explicit directive or duration-based auto
selection), validates marker presence on the event-related path, and delegates to
the matching feature extractor, returning its result verbatim.
*/

package dispatch

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kleascm/myograph/pkg/interfaces"
	"github.com/kleascm/myograph/pkg/logging"
	"github.com/kleascm/myograph/pkg/signal"
)

// autoThreshold is the duration in seconds at which auto mode switches from
// event-related to interval-related analysis. The boundary itself belongs to
// interval-related.
const autoThreshold = 10.0

// Dispatcher routes a processed EMG dataset to the right feature extractor.
// It performs no feature computation itself and holds no state between calls,
// so concurrent dispatches need no coordination.
type Dispatcher struct {
	event    interfaces.FeatureExtractor
	interval interfaces.FeatureExtractor
	logger   *logging.Logger
}

// NewDispatcher creates a Dispatcher over the two analysis strategies.
// The logger may be nil.
func NewDispatcher(event, interval interfaces.FeatureExtractor, logger *logging.Logger) (*Dispatcher, error) {
	if event == nil {
		return nil, fmt.Errorf("event-related extractor must not be nil")
	}
	if interval == nil {
		return nil, fmt.Errorf("interval-related extractor must not be nil")
	}
	return &Dispatcher{
		event:    event,
		interval: interval,
		logger:   logger,
	}, nil
}

// Analyze dispatches raw input to the resolved analysis strategy. data may be
// a *signal.Frame, a *signal.EpochCollection, a map of frames, or an already
// normalized signal.Dataset; method is a directive string ("auto" when empty).
// The returned frame is exactly what the chosen extractor produced, and
// extractor errors propagate unchanged.
func (d *Dispatcher) Analyze(data any, samplingRate float64, method string) (*signal.Frame, error) {
	if method == "" {
		method = "auto"
	}
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return d.Dispatch(data, samplingRate, m)
}

// Dispatch is the typed form of Analyze.
func (d *Dispatcher) Dispatch(data any, samplingRate float64, method Method) (*signal.Frame, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSamplingRate, samplingRate)
	}

	dataset, err := Coerce(data)
	if err != nil {
		return nil, err
	}

	duration := dataset.Duration(samplingRate)
	resolved, err := resolve(method, duration)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	if d.logger != nil {
		epochs := 0
		if dataset.Epoched() {
			epochs = dataset.Epochs().Len()
			if !dataset.UniformEpochs() {
				d.logger.LogNonUniformEpochs(id, epochs)
			}
		}
		d.logger.LogDispatch(id, method.String(), resolved.String(), duration, dataset.Epoched(), epochs)
	}

	if resolved == MethodEventRelated {
		if err := validateMarker(dataset); err != nil {
			if d.logger != nil {
				d.logger.LogValidationFailure(id, err)
			}
			return nil, err
		}
	}

	extractor := d.interval
	if resolved == MethodEventRelated {
		extractor = d.event
	}

	result, err := extractor.Analyze(dataset, samplingRate)
	if err != nil {
		// Downstream failures pass through with no added context.
		return nil, err
	}
	if d.logger != nil {
		d.logger.LogAnalysis(id, extractor.Name(), result.Len())
	}
	return result, nil
}

// resolve maps a directive and a duration estimate to exactly one strategy.
// The switch is exhaustive; an out-of-range Method value fails rather than
// falling through.
func resolve(method Method, duration float64) (Method, error) {
	switch method {
	case MethodEventRelated:
		return MethodEventRelated, nil
	case MethodIntervalRelated:
		return MethodIntervalRelated, nil
	case MethodAuto:
		if duration >= autoThreshold {
			return MethodIntervalRelated, nil
		}
		return MethodEventRelated, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnrecognizedMethod, method)
	}
}
