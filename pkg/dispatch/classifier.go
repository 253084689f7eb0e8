/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Input classification for the Myograph dispatcher. Coerces the accepted
raw input shapes into a normalized signal.Dataset exactly once at the boundary, so
duration estimation and column inspection never branch on the raw type again.
*/

package dispatch

import (
	"fmt"
	"sort"

	"github.com/kleascm/myograph/pkg/signal"
)

// Coerce normalizes raw input into a signal.Dataset. Accepted shapes:
//
//   - signal.Dataset (passed through)
//   - *signal.Frame
//   - *signal.EpochCollection
//   - map[string]*signal.Frame and map[int]*signal.Frame, converted to an
//     EpochCollection in sorted key order so the representative (last) epoch
//     is deterministic
//
// Anything else fails with ErrUnsupportedInput.
func Coerce(data any) (signal.Dataset, error) {
	switch v := data.(type) {
	case signal.Dataset:
		if v.Frame() == nil && v.Epochs() == nil {
			return signal.Dataset{}, fmt.Errorf("%w: empty dataset", ErrUnsupportedInput)
		}
		return v, nil

	case *signal.Frame:
		if v == nil {
			return signal.Dataset{}, fmt.Errorf("%w: nil frame", ErrUnsupportedInput)
		}
		return signal.DatasetFromFrame(v), nil

	case *signal.EpochCollection:
		if v == nil {
			return signal.Dataset{}, fmt.Errorf("%w: nil epoch collection", ErrUnsupportedInput)
		}
		return signal.DatasetFromEpochs(v), nil

	case map[string]*signal.Frame:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		epochs := signal.NewEpochCollection()
		for _, k := range keys {
			if err := epochs.Add(k, v[k]); err != nil {
				return signal.Dataset{}, fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
			}
		}
		return signal.DatasetFromEpochs(epochs), nil

	case map[int]*signal.Frame:
		keys := make([]int, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		epochs := signal.NewEpochCollection()
		for _, k := range keys {
			if err := epochs.Add(fmt.Sprintf("%d", k), v[k]); err != nil {
				return signal.Dataset{}, fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
			}
		}
		return signal.DatasetFromEpochs(epochs), nil

	default:
		return signal.Dataset{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, data)
	}
}
