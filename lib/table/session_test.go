// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"errors"
	"strings"
	"testing"
)

func sessionOptions() Options {
	return Options{Style: "round", Width: FixedWidth(6)}
}

func TestSessionMatchesBatchRender(t *testing.T) {
	headers := []string{"seq", "state"}
	rows := [][]any{{1, "start"}, {2, "run"}, {3, "done"}}

	var batch strings.Builder
	if err := Render(&batch, headers, rows, sessionOptions()); err != nil {
		t.Fatal(err)
	}

	var incremental strings.Builder
	session, err := Begin(&incremental, headers, sessionOptions())
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		if err := session.Row(row...); err != nil {
			t.Fatal(err)
		}
	}
	if err := session.Close(); err != nil {
		t.Fatal(err)
	}

	if incremental.String() != batch.String() {
		t.Errorf("incremental output:\n%s\nbatch output:\n%s",
			incremental.String(), batch.String())
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	var buf strings.Builder
	session, err := Begin(&buf, []string{"a"}, sessionOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := session.Close(); err != nil {
		t.Fatal(err)
	}
	before := buf.String()
	if err := session.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if buf.String() != before {
		t.Error("second Close wrote output")
	}
}

func TestSessionRowAfterClose(t *testing.T) {
	var buf strings.Builder
	session, err := Begin(&buf, []string{"a"}, sessionOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := session.Close(); err != nil {
		t.Fatal(err)
	}
	before := buf.String()
	err = session.Row(1)
	if !errors.Is(err, ErrSessionClosed) {
		t.Errorf("err = %v, want ErrSessionClosed", err)
	}
	if buf.String() != before {
		t.Error("row written after Close")
	}
}

// The frame must close exactly once even when the caller bails out
// mid-stream with an error.
func TestStreamEarlyExit(t *testing.T) {
	var buf strings.Builder
	boom := errors.New("boom")
	err := Stream(&buf, []string{"n"}, sessionOptions(),
		func(emit func(values ...any) error) error {
			if err := emit(1); err != nil {
				return err
			}
			return boom
		})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	assertFrameCounts(t, buf.String(), 1)
}

func TestStreamPanicStillCloses(t *testing.T) {
	var buf strings.Builder
	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic did not propagate")
			}
		}()
		_ = Stream(&buf, []string{"n"}, sessionOptions(),
			func(emit func(values ...any) error) error {
				_ = emit(1)
				panic("mid-stream")
			})
	}()
	assertFrameCounts(t, buf.String(), 1)
}

func TestStreamComplete(t *testing.T) {
	var buf strings.Builder
	err := Stream(&buf, []string{"n"}, sessionOptions(),
		func(emit func(values ...any) error) error {
			for i := 1; i <= 3; i++ {
				if err := emit(i); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	assertFrameCounts(t, buf.String(), 3)
}

// assertFrameCounts checks a round-style one-column table for exactly
// one top rule, one header, one separator, one bottom rule, and the
// given number of data lines.
func assertFrameCounts(t *testing.T, output string, dataRows int) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	var top, separator, bottom, content int
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "╭"):
			top++
		case strings.HasPrefix(line, "├"):
			separator++
		case strings.HasPrefix(line, "╰"):
			bottom++
		case strings.HasPrefix(line, "│"):
			content++
		default:
			t.Errorf("unrecognized line %q", line)
		}
	}
	if top != 1 || separator != 1 || bottom != 1 {
		t.Errorf("frame counts top=%d separator=%d bottom=%d, want 1 each\n%s",
			top, separator, bottom, output)
	}
	// Header plus data rows.
	if content != 1+dataRows {
		t.Errorf("content lines = %d, want %d\n%s", content, 1+dataRows, output)
	}
}
