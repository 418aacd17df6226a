// Package runner manages the watch-mode refresh command as a child process.
package runner

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

// stopTimeout is how long Stop waits for a graceful exit before force-killing.
const stopTimeout = 5 * time.Second

// Runner launches and supervises one child process at a time. Restart cycles
// it across watch-mode refreshes; output streams pass through to the parent.
type Runner struct {
	command string
	args    []string
	workDir string

	// DisableStdin detaches the child from the parent's stdin. A child that
	// reads stdin would otherwise compete with the watcher for terminal
	// input; with DisableStdin set it sees EOF instead.
	DisableStdin bool

	mu   sync.Mutex
	proc *process
}

// process is one launched instance of the command. done closes once the
// instance has been reaped.
type process struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// New creates a runner for command with the given arguments and working
// directory. An empty workDir inherits the parent's.
func New(command string, args []string, workDir string) *Runner {
	return &Runner{command: command, args: args, workDir: workDir}
}

// Start launches a fresh instance of the command. On Unix the child gets its
// own process group so Stop can take down any grandchildren the command
// spawns (package-manager scripts fork liberally).
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := exec.Command(r.command, r.args...)
	cmd.Dir = r.workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if !r.DisableStdin {
		cmd.Stdin = os.Stdin
	}
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting process: %w", err)
	}

	p := &process{cmd: cmd, done: make(chan struct{})}
	go func() {
		cmd.Wait()
		close(p.done)
	}()
	r.proc = p
	return nil
}

// Stop terminates the current instance: a graceful signal first, then a
// forced kill once stopTimeout elapses. Stopping a runner that never started
// is a no-op.
func (r *Runner) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.proc
	if p == nil || p.cmd.Process == nil {
		return nil
	}

	p.terminate()
	select {
	case <-p.done:
	case <-time.After(stopTimeout):
		p.kill()
		<-p.done
	}
	return nil
}

// Restart stops the current instance and launches a new one.
func (r *Runner) Restart() error {
	if err := r.Stop(); err != nil {
		return err
	}
	return r.Start()
}

// Wait blocks until the current instance exits.
func (r *Runner) Wait() {
	r.mu.Lock()
	p := r.proc
	r.mu.Unlock()
	if p != nil {
		<-p.done
	}
}

// Running reports whether the current instance is alive.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.proc
	if p == nil || p.cmd.Process == nil {
		return false
	}
	return p.cmd.ProcessState == nil || !p.cmd.ProcessState.Exited()
}
