package services

import (
	"context"
	"os"
	"os/exec"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
)

// ProcessService exposes process control to the frontend: quitting the shell
// and relaunching a fresh instance.
type ProcessService struct {
	ctx    context.Context
	logger logging.Logger
}

// NewProcessService creates a process service
func NewProcessService(logger logging.Logger) *ProcessService {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &ProcessService{logger: logger}
}

// SetContext binds the runtime context; called once at startup
func (p *ProcessService) SetContext(ctx context.Context) {
	p.ctx = ctx
}

// Quit ends the application through the runtime so lifecycle hooks still run
func (p *ProcessService) Quit() {
	wailsruntime.Quit(p.ctx)
}

// Relaunch starts a fresh instance of the current executable with the same
// arguments, then quits this one. The new process is left running detached;
// if the spawn fails the current instance stays alive and the error is
// returned.
func (p *ProcessService) Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return hosterrors.NewHostError("Relaunch", err, hosterrors.ErrCodeSpawn)
	}

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return hosterrors.NewHostErrorWithContext("Relaunch", err,
			hosterrors.ErrCodeSpawn,
			map[string]string{"executable": exe})
	}

	p.logger.Info("Relaunching", "pid", cmd.Process.Pid)
	wailsruntime.Quit(p.ctx)
	return nil
}
