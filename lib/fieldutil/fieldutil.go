// Package fieldutil coerces loosely-typed scalar values out of upstream
// payloads. The news outlet's feeds encode the same figure as a number in
// one election and as "12,345 votes" or "+2.1%" in the next, so every
// function here is total: any input, including nil or garbage, produces a
// finite number and never panics. Unparseable values degrade to zero so a
// single bad field never sinks a whole record.
package fieldutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var digitRunRegex = regexp.MustCompile(`[0-9][0-9,]*`)
var decimalRegex = regexp.MustCompile(`[-+]?[0-9]+(?:\.[0-9]+)?`)

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Votes extracts a non-negative vote count. Numeric input is floored,
// string input yields the first run of digits and thousands separators.
// The sign is never preserved, this is only meaningful for counts.
func Votes(v any) int {
	if n, ok := toFloat(v); ok {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(math.Floor(math.Abs(n)))
	}
	s, ok := v.(string)
	if !ok {
		return 0
	}
	run := digitRunRegex.FindString(s)
	if run == "" {
		return 0
	}
	run = strings.ReplaceAll(run, ",", "")
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0
	}
	return n
}

// Percent extracts the first decimal number in the value, with or without
// a trailing percent sign.
func Percent(v any) float64 {
	return decimal(v)
}

// Swing is Percent with the leading sign of the figure kept, "+2.1" is 2.1
// and "-2.1%" is -2.1.
func Swing(v any) float64 {
	return decimal(v)
}

func decimal(v any) float64 {
	if n, ok := toFloat(v); ok {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	}
	s, ok := v.(string)
	if !ok {
		return 0
	}
	match := decimalRegex.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return n
}
