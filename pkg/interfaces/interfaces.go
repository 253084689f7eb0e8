/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for Myograph. Defines the feature-extraction strategy
contract consumed by the dispatcher, kept in its own package so dispatch and the
concrete extractors never import each other.
*/

package interfaces

import (
	"github.com/kleascm/myograph/pkg/signal"
)

// FeatureExtractor is a downstream analysis strategy. Implementations receive
// the normalized dataset and the caller-supplied sampling rate and return a
// feature table; the dispatcher never inspects or transforms that result.
type FeatureExtractor interface {
	// Analyze extracts features from the dataset. The dataset's frames must
	// not be modified.
	Analyze(data signal.Dataset, samplingRate float64) (*signal.Frame, error)

	// Name returns the name of this extractor.
	Name() string

	// Description returns a description of this extractor.
	Description() string
}
