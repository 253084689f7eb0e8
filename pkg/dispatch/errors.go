/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the Myograph dispatcher. Sentinel errors for every
failure the dispatcher itself can produce; downstream extractor errors pass through
untouched and are deliberately absent here.
*/

package dispatch

import "errors"

var (
	// ErrMissingMarker means the event-related path was selected but no
	// column name contains the marker substring, so the input does not look
	// like epoched data.
	ErrMissingMarker = errors.New("no marker column found: input does not look like epoched data")

	// ErrUnrecognizedMethod means the method directive matched neither a
	// canonical value nor a documented synonym.
	ErrUnrecognizedMethod = errors.New("unrecognized analysis method")

	// ErrUnsupportedInput means the data is neither a signal frame nor an
	// epoch collection.
	ErrUnsupportedInput = errors.New("unsupported input shape: expected a signal frame or an epoch collection")

	// ErrInvalidSamplingRate means the sampling rate is not a positive
	// number of samples per second.
	ErrInvalidSamplingRate = errors.New("sampling rate must be positive")
)
