//go:build !windows

package supervisor

import (
	"errors"
	"os/exec"
	"syscall"
)

var errAlreadyExited = errors.New("process already exited")

// setProcAttrs puts the child in its own process group so Stop can take
// down anything it spawned.
func setProcAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcess(cmd *exec.Cmd) error {
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return errAlreadyExited
	}
	return err
}
