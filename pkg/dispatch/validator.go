/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator.go
Description: Shape validation for the Myograph dispatcher. Confirms that data routed
to the event-related path actually carries an epoch marker column before any work is
delegated. The interval-related path needs no marker and skips this check.
*/

package dispatch

import (
	"fmt"
	"strings"

	"github.com/kleascm/myograph/pkg/signal"
)

// MarkerSubstring is the substring that identifies an epoch marker column.
const MarkerSubstring = "Label"

// validateMarker fails with ErrMissingMarker unless at least one visible
// column name contains MarkerSubstring.
func validateMarker(data signal.Dataset) error {
	if data.HasColumnContaining(MarkerSubstring) {
		return nil
	}
	cols := data.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("%w (input has no columns)", ErrMissingMarker)
	}
	return fmt.Errorf("%w (columns: %s)", ErrMissingMarker, strings.Join(cols, ", "))
}
