package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("hello %s %d", "world", 42)
		if got := buf.String(); got != "hello world 42" {
			t.Errorf("Printf output = %q, want %q", got, "hello world 42")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Println("hello", "world")
	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Println output = %q, want %q", got, "hello world\n")
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("prints in verbose mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Command("git", "-C", "/tmp/repo", "status", "--porcelain")
		got := buf.String()
		if !strings.HasPrefix(got, "$ git ") {
			t.Errorf("Command output = %q, want $-prefixed command line", got)
		}
		if !strings.Contains(got, "status --porcelain") {
			t.Errorf("Command output = %q, missing args", got)
		}
	})

	t.Run("silent when not verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Command("git", "status")
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when not verbose", buf.String())
		}
	})

	t.Run("silent when quiet even if verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Command("git", "status")
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when quiet", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Error("FromContext should return the attached logger")
		}
	})

	t.Run("defaults to no-op logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil")
		}
		if l.Writer() != io.Discard {
			t.Error("default logger should write to io.Discard")
		}
		l.Println("must not panic")
	})
}
