//go:build windows

package runner

import "os/exec"

// setProcessGroup is a no-op: Windows has no POSIX process groups, and Stop
// kills the child directly.
func setProcessGroup(cmd *exec.Cmd) {}

// terminate kills immediately. Windows has no SIGTERM, so there is no
// graceful phase before the forced kill.
func (p *process) terminate() { p.cmd.Process.Kill() }

func (p *process) kill() { p.cmd.Process.Kill() }
