package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"slices"
	"time"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
)

// ShellService executes allowlisted external commands on behalf of the
// frontend. Commands not on the allowlist are rejected before anything is
// spawned.
type ShellService struct {
	ctx       context.Context
	allowlist []string
	timeout   time.Duration
	logger    logging.Logger
}

// ShellOutput is the result of a completed command
type ShellOutput struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
}

// NewShellService creates a shell service with the given allowlist and
// per-command timeout
func NewShellService(allowlist []string, timeout time.Duration, logger logging.Logger) *ShellService {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &ShellService{
		allowlist: allowlist,
		timeout:   timeout,
		logger:    logger,
	}
}

// SetContext binds the runtime context; called once at startup
func (s *ShellService) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Execute runs an allowlisted command to completion and returns its output.
// A non-zero exit code is a successful execution, not an error.
func (s *ShellService) Execute(name string, args []string) (*ShellOutput, error) {
	if !slices.Contains(s.allowlist, name) {
		return nil, hosterrors.NewHostErrorWithContext("Execute",
			fmt.Errorf("command %q is not allowed", name),
			hosterrors.ErrCodeNotAllowed,
			map[string]string{"command": name})
	}

	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, hosterrors.NewHostErrorWithContext("Execute",
				fmt.Errorf("command %q timed out after %v", name, s.timeout),
				hosterrors.ErrCodeTimeout,
				map[string]string{"command": name})
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, hosterrors.NewHostErrorWithContext("Execute", err,
				hosterrors.ErrCodeSpawn,
				map[string]string{"command": name})
		}
		exitCode = exitErr.ExitCode()
	}

	s.logger.Debug("Executed shell command",
		"command", name,
		"exit_code", exitCode,
		"duration_ms", time.Since(start).Milliseconds())

	return &ShellOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}

// OpenURL opens an http(s) URL in the default browser
func (s *ShellService) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return hosterrors.NewHostErrorWithContext("OpenURL",
			fmt.Errorf("refusing to open %q: only http and https URLs are allowed", rawURL),
			hosterrors.ErrCodeNotAllowed,
			map[string]string{"url": rawURL})
	}
	wailsruntime.BrowserOpenURL(s.ctx, rawURL)
	return nil
}
