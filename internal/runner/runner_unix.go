//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// setProcessGroup puts the child in its own process group, so signals reach
// the whole subtree rather than just the immediate child.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// signal delivers sig to the child's process group, falling back to the
// child alone when the group is gone.
func (p *process) signal(sig syscall.Signal) {
	if pgid, err := syscall.Getpgid(p.cmd.Process.Pid); err == nil {
		syscall.Kill(-pgid, sig)
		return
	}
	p.cmd.Process.Signal(sig)
}

func (p *process) terminate() { p.signal(syscall.SIGTERM) }

func (p *process) kill() { p.signal(syscall.SIGKILL) }
