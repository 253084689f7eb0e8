/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats.go
Description: Descriptive statistics helpers shared by the Myograph feature
extractors. Plain float64 slice math over amplitude envelopes and binary
activity traces.
*/

package features

import "math"

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// std returns the sample standard deviation, or 0 for fewer than two values.
func std(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// max returns the maximum value, or 0 for an empty slice.
func max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// anyActive reports whether any sample of a binary activity trace is nonzero.
func anyActive(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}

// burstCount counts activations in a binary activity trace: the number of
// rising edges from inactive to active.
func burstCount(values []float64) int {
	count := 0
	active := false
	for _, v := range values {
		if v != 0 && !active {
			count++
		}
		active = v != 0
	}
	return count
}
