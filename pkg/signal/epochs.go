/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: epochs.go
Description: Epoch collection for Myograph. An insertion-ordered mapping from epoch
identifiers to signal frames, as produced by epoch segmentation of a processed
recording. Iteration order is stable so duration sampling is deterministic.
*/

package signal

import "fmt"

// EpochCollection maps epoch identifiers to signal frames. Lookup is by id;
// iteration and Last() follow insertion order.
type EpochCollection struct {
	ids    []string
	epochs map[string]*Frame
}

// NewEpochCollection creates an empty EpochCollection.
func NewEpochCollection() *EpochCollection {
	return &EpochCollection{
		epochs: make(map[string]*Frame),
	}
}

// Add inserts an epoch under the given id. Re-adding an existing id replaces
// the frame but keeps the original position.
func (c *EpochCollection) Add(id string, frame *Frame) error {
	if frame == nil {
		return fmt.Errorf("epoch %q has a nil frame", id)
	}
	if _, ok := c.epochs[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.epochs[id] = frame
	return nil
}

// Get returns the epoch with the given id, or nil when absent.
func (c *EpochCollection) Get(id string) *Frame {
	return c.epochs[id]
}

// IDs returns the epoch identifiers in insertion order.
func (c *EpochCollection) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of epochs in the collection.
func (c *EpochCollection) Len() int {
	return len(c.ids)
}

// Last returns the most recently added epoch, or nil for an empty collection.
// It is the representative used for duration estimation.
func (c *EpochCollection) Last() *Frame {
	if len(c.ids) == 0 {
		return nil
	}
	return c.epochs[c.ids[len(c.ids)-1]]
}

// Uniform reports whether all epochs have the same row count. An empty
// collection is trivially uniform.
func (c *EpochCollection) Uniform() bool {
	if len(c.ids) == 0 {
		return true
	}
	n := c.epochs[c.ids[0]].Len()
	for _, id := range c.ids[1:] {
		if c.epochs[id].Len() != n {
			return false
		}
	}
	return true
}
