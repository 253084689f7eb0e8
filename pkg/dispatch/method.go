/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: method.go
Description: Analysis method directives for Myograph. Parses caller-supplied method
strings (case-insensitive, with the documented synonyms) into a closed enumeration,
failing explicitly on anything unrecognized.
*/

package dispatch

import (
	"fmt"
	"strings"
)

// Method is an analysis method directive.
type Method int

const (
	// MethodAuto selects the method from the data duration.
	MethodAuto Method = iota
	// MethodEventRelated forces per-epoch, event-locked analysis.
	MethodEventRelated
	// MethodIntervalRelated forces whole-period analysis.
	MethodIntervalRelated
)

// String returns the canonical directive string.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodEventRelated:
		return "event-related"
	case MethodIntervalRelated:
		return "interval-related"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses a method directive. Matching is case-insensitive and
// accepts the documented synonyms: "event" and "epoch" for event-related,
// "interval" and "resting-state" for interval-related. Any other value fails
// with ErrUnrecognizedMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "event-related", "event", "epoch":
		return MethodEventRelated, nil
	case "interval-related", "interval", "resting-state":
		return MethodIntervalRelated, nil
	case "auto":
		return MethodAuto, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedMethod, s)
	}
}
