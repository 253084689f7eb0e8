/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dataset.go
Description: Normalized input shape for Myograph analysis. A Dataset is a two-variant
union (single frame or epoch collection) resolved once at the boundary, so downstream
logic never branches on the raw input type again.
*/

package signal

// Dataset wraps either a single Frame or an EpochCollection. Exactly one of
// the two variants is set; the zero Dataset is invalid.
type Dataset struct {
	frame  *Frame
	epochs *EpochCollection
}

// DatasetFromFrame wraps a single signal frame.
func DatasetFromFrame(f *Frame) Dataset {
	return Dataset{frame: f}
}

// DatasetFromEpochs wraps an epoch collection.
func DatasetFromEpochs(e *EpochCollection) Dataset {
	return Dataset{epochs: e}
}

// Epoched reports whether the dataset holds an epoch collection.
func (d Dataset) Epoched() bool {
	return d.epochs != nil
}

// Frame returns the single-frame variant, or nil for an epoched dataset.
func (d Dataset) Frame() *Frame {
	return d.frame
}

// Epochs returns the epoch-collection variant, or nil for a single frame.
func (d Dataset) Epochs() *EpochCollection {
	return d.epochs
}

// Columns returns the visible column names: the frame's columns, or the union
// over all epochs in insertion order (first occurrence wins).
func (d Dataset) Columns() []string {
	if d.frame != nil {
		return d.frame.Columns()
	}
	if d.epochs == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, id := range d.epochs.IDs() {
		for _, name := range d.epochs.Get(id).Columns() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// HasColumnContaining reports whether any visible column name contains the
// substring.
func (d Dataset) HasColumnContaining(substr string) bool {
	if d.frame != nil {
		return d.frame.HasColumnContaining(substr)
	}
	if d.epochs == nil {
		return false
	}
	for _, id := range d.epochs.IDs() {
		if d.epochs.Get(id).HasColumnContaining(substr) {
			return true
		}
	}
	return false
}

// Duration returns the representative duration in seconds. For a single frame
// this is its full length over the sampling rate. For an epoch collection the
// last added epoch stands in for the whole set, assuming epochs of uniform
// length; UniformEpochs exposes whether that assumption actually holds.
func (d Dataset) Duration(samplingRate float64) float64 {
	if d.frame != nil {
		return d.frame.Duration(samplingRate)
	}
	if d.epochs == nil || d.epochs.Len() == 0 {
		return 0
	}
	return d.epochs.Last().Duration(samplingRate)
}

// UniformEpochs reports whether all epochs share a row count. Always true for
// a single-frame dataset.
func (d Dataset) UniformEpochs() bool {
	if d.epochs == nil {
		return true
	}
	return d.epochs.Uniform()
}
