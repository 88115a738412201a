// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// formatValue turns a cell value into its unpadded text and reports
// whether it should right-align as a number. Floats render with
// significant-digit precision; integers render exactly. NaN gets the
// placeholder "nan" rather than poisoning the column.
func formatValue(value any, precision int) (text string, numeric bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, false
	case float64:
		return formatFloat(v, precision), true
	case float32:
		return formatFloat(float64(v), precision), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case bool:
		return strconv.FormatBool(v), false
	case fmt.Stringer:
		return v.String(), false
	default:
		return fmt.Sprintf("%v", v), false
	}
}

func formatFloat(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// cellText is formatValue for callers that only need the text, such
// as automatic width resolution.
func cellText(value any, precision int) string {
	text, _ := formatValue(value, precision)
	return text
}

// formatCell renders a value into a string of exactly width display
// cells. Numbers right-align regardless of the requested alignment.
// Content wider than the column is truncated with a trailing ellipsis
// (escape sequences survive truncation intact).
func formatCell(value any, width, precision int, align Align) string {
	text, numeric := formatValue(value, precision)
	if numeric {
		align = AlignRight
	}
	return padCell(text, width, align)
}

// padCell fits text into exactly width display cells using the given
// alignment. Centering puts the odd leftover space on the right.
func padCell(text string, width int, align Align) string {
	w := ansi.StringWidth(text)
	if w > width {
		text = ansi.Truncate(text, width, "…")
		w = ansi.StringWidth(text)
	}
	pad := width - w
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}
