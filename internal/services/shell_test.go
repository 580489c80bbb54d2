package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
)

func newTestShellService(allowlist ...string) *ShellService {
	return NewShellService(allowlist, 5*time.Second, logging.NewLogger(logging.LevelError))
}

func TestExecuteRejectsUnlistedCommand(t *testing.T) {
	shell := newTestShellService("echo")

	out, err := shell.Execute("rm", []string{"-rf", "/"})
	if !hosterrors.IsNotAllowed(err) {
		t.Fatalf("Execute(unlisted) error = %v, want NOT_ALLOWED", err)
	}
	if out != nil {
		t.Errorf("Execute(unlisted) returned output %+v alongside error", out)
	}
}

func TestExecuteEmptyAllowlistRejectsEverything(t *testing.T) {
	shell := newTestShellService()

	if _, err := shell.Execute("echo", nil); !hosterrors.IsNotAllowed(err) {
		t.Errorf("Execute() with empty allowlist error = %v, want NOT_ALLOWED", err)
	}
}

func TestExecuteCapturesStdout(t *testing.T) {
	shell := newTestShellService("echo")

	out, err := shell.Execute("echo", []string{"hello"})
	if err != nil {
		t.Fatalf("Execute(echo) failed: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("stdout = %q, want %q", out.Stdout, "hello")
	}
	if out.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", out.ExitCode)
	}
}

func TestExecuteReportsNonZeroExit(t *testing.T) {
	shell := newTestShellService("sh")

	out, err := shell.Execute("sh", []string{"-c", "exit 3"})
	if err != nil {
		t.Fatalf("Execute() returned error for non-zero exit: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", out.ExitCode)
	}
}

func TestExecuteSpawnFailure(t *testing.T) {
	shell := newTestShellService("definitely-not-a-real-binary-aperture")

	_, err := shell.Execute("definitely-not-a-real-binary-aperture", nil)
	if err == nil {
		t.Fatal("Execute(missing binary) succeeded, want spawn error")
	}

	var hostErr *hosterrors.HostError
	if !errors.As(err, &hostErr) || hostErr.Code != hosterrors.ErrCodeSpawn {
		t.Errorf("Execute(missing binary) error = %v, want SPAWN", err)
	}
}

func TestExecuteTimeout(t *testing.T) {
	shell := NewShellService([]string{"sh"}, 100*time.Millisecond, logging.NewLogger(logging.LevelError))

	_, err := shell.Execute("sh", []string{"-c", "sleep 5"})
	if !hosterrors.IsTimeout(err) {
		t.Errorf("Execute(slow command) error = %v, want TIMEOUT", err)
	}
}

func TestOpenURLRejectsNonHTTPSchemes(t *testing.T) {
	shell := newTestShellService()

	for _, rawURL := range []string{"file:///etc/passwd", "javascript:alert(1)", "not a url"} {
		if err := shell.OpenURL(rawURL); !hosterrors.IsNotAllowed(err) {
			t.Errorf("OpenURL(%q) error = %v, want NOT_ALLOWED", rawURL, err)
		}
	}
}
