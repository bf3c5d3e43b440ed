package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/yosupo06/fmtbuf/truncbuf"
)

func TestFormatArgs(t *testing.T) {
	for _, tc := range []struct {
		capacity  int
		format    string
		args      []string
		expect    string
		truncated bool
	}{
		{30, "%s - 0x%s", []string{"42", "2a"}, "42 - 0x2a", false},
		{30, "toooooo long:    %s - 0x%s", []string{"400000", "61ae4"}, "toooooo long:    400000 - 0x61", true},
		{3, "%s", []string{"日本"}, "日", true},
		{0, "", nil, "", false},
	} {
		s, truncated := formatArgs(tc.capacity, tc.format, tc.args)
		if s != tc.expect || truncated != tc.truncated {
			t.Fatalf("formatArgs = (%q, %v), want (%q, %v)", s, truncated, tc.expect, tc.truncated)
		}
	}
}

func TestRunCapture(t *testing.T) {
	w := truncbuf.NewLimitedWriterWithMarker(10, "...")
	var stdout bytes.Buffer
	code, err := runCapture(context.Background(), w, &stdout, "sh", "-c", "echo out; echo 0123456789abcdef >&2; exit 2")
	if err != nil {
		t.Fatal(err)
	}
	if code != 2 {
		t.Fatal("exit code differ", code)
	}
	if stdout.String() != "out\n" {
		t.Fatal("stdout differ", stdout.String())
	}
	if string(w.Bytes()) != "0123456..." || !w.Truncated() {
		t.Fatal("stderr differ", string(w.Bytes()))
	}
}

func TestRunCaptureNotFound(t *testing.T) {
	w := truncbuf.NewLimitedWriter(100)
	if _, err := runCapture(context.Background(), w, &bytes.Buffer{}, "fmtbuf-command-not-found"); err == nil {
		t.Fatal("unknown command should fail")
	}
}
