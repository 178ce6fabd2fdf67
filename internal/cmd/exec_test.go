package cmd

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("successful command", func(t *testing.T) {
		t.Parallel()
		if err := Run(exec.Command("true")); err != nil {
			t.Errorf("Run(true) = %v, want nil", err)
		}
	})

	t.Run("failing command returns error", func(t *testing.T) {
		t.Parallel()
		if err := Run(exec.Command("false")); err == nil {
			t.Error("Run(false) = nil, want error")
		}
	})

	t.Run("stderr becomes the error message", func(t *testing.T) {
		t.Parallel()
		cmd := exec.Command("sh", "-c", "echo boom >&2; exit 1")
		err := Run(cmd)
		if err == nil {
			t.Fatal("Run() = nil, want error")
		}
		if err.Error() != "boom" {
			t.Errorf("Run() error = %q, want %q", err.Error(), "boom")
		}
	})
}

func TestOutput(t *testing.T) {
	t.Parallel()

	t.Run("returns stdout", func(t *testing.T) {
		t.Parallel()
		out, err := Output(exec.Command("echo", "hello"))
		if err != nil {
			t.Fatalf("Output() error = %v", err)
		}
		if got := strings.TrimSpace(string(out)); got != "hello" {
			t.Errorf("Output() = %q, want %q", got, "hello")
		}
	})

	t.Run("stderr becomes the error message", func(t *testing.T) {
		t.Parallel()
		_, err := Output(exec.Command("sh", "-c", "echo bad >&2; exit 2"))
		if err == nil {
			t.Fatal("Output() = nil, want error")
		}
		if err.Error() != "bad" {
			t.Errorf("Output() error = %q, want %q", err.Error(), "bad")
		}
	})
}

func TestOutputContext(t *testing.T) {
	t.Parallel()

	t.Run("runs in the given directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		out, err := OutputContext(context.Background(), dir, "pwd")
		if err != nil {
			t.Fatalf("OutputContext() error = %v", err)
		}
		// Compare basenames; the temp dir may contain symlinked components.
		got := strings.TrimSpace(string(out))
		if filepath.Base(got) != filepath.Base(dir) {
			t.Errorf("OutputContext() ran in %q, want %q", got, dir)
		}
	})

	t.Run("canceled context fails", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := RunContext(ctx, "", "sleep", "5"); err == nil {
			t.Error("RunContext() with canceled context = nil, want error")
		}
	})
}
