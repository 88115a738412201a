// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package humantime formats durations the way people read them:
// the largest useful unit, compact suffixes, no noise from zero
// components. "1h 1m 2s", "2w 3d", "800µs".
package humantime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// Duration renders d in compact human form. Sub-second values pick
// one unit (ns, µs, ms) with up to four significant digits;
// sub-minute values do the same in seconds; anything longer becomes
// integer components from weeks down to seconds, skipping zeros, with
// the remainder rounded to the nearest second.
func Duration(d time.Duration) string {
	if d < 0 {
		if d == math.MinInt64 {
			d++
		}
		return "-" + Duration(-d)
	}
	switch {
	case d == 0:
		return "0s"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return scaled(float64(d)/float64(time.Microsecond), "µs")
	case d < time.Second:
		return scaled(float64(d)/float64(time.Millisecond), "ms")
	case d < time.Minute:
		return scaled(float64(d)/float64(time.Second), "s")
	}

	seconds := int64(d.Round(time.Second) / time.Second)
	parts := make([]string, 0, 5)
	for _, unit := range []struct {
		suffix string
		size   int64
	}{
		{"w", int64(week / time.Second)},
		{"d", int64(day / time.Second)},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	} {
		n := seconds / unit.size
		seconds %= unit.size
		if n > 0 {
			parts = append(parts, strconv.FormatInt(n, 10)+unit.suffix)
		}
	}
	return strings.Join(parts, " ")
}

// Seconds renders a duration given in (possibly fractional) seconds.
// It is the entry point for callers holding raw numbers instead of a
// time.Duration. NaN and infinities render as their names; magnitudes
// beyond the representable range saturate at the largest duration.
func Seconds(s float64) string {
	switch {
	case math.IsNaN(s):
		return "nan"
	case math.IsInf(s, 1):
		return "inf"
	case math.IsInf(s, -1):
		return "-inf"
	}
	ns := s * float64(time.Second)
	switch {
	case ns >= float64(math.MaxInt64):
		return Duration(time.Duration(math.MaxInt64))
	case ns <= float64(math.MinInt64):
		return Duration(time.Duration(math.MinInt64) + 1)
	}
	return Duration(time.Duration(ns))
}

func scaled(v float64, suffix string) string {
	return strconv.FormatFloat(v, 'g', 4, 64) + suffix
}
