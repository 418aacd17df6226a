package runner

import (
	"testing"
	"time"
)

func TestStartAndStop(t *testing.T) {
	r := New("sleep", []string{"30"}, "")
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !r.Running() {
		t.Error("child should be running after Start")
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if r.Running() {
		t.Error("child should not be running after Stop")
	}
}

func TestStopBeforeStart(t *testing.T) {
	r := New("sleep", []string{"30"}, "")
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop on a never-started runner: %v", err)
	}
}

func TestStopTwice(t *testing.T) {
	r := New("sleep", []string{"30"}, "")
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestRestartSpawnsNewProcess(t *testing.T) {
	r := New("sleep", []string{"30"}, "")
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer r.Stop()

	first := r.proc.cmd.Process.Pid
	if err := r.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if !r.Running() {
		t.Error("child should be running after Restart")
	}
	if second := r.proc.cmd.Process.Pid; second == first {
		t.Errorf("Restart reused pid %d, want a new process", first)
	}
}

func TestWaitReturnsWhenChildExits(t *testing.T) {
	r := New("sleep", []string{"0.1"}, "")
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	exited := make(chan struct{})
	go func() {
		r.Wait()
		close(exited)
	}()

	select {
	case <-exited:
	case <-time.After(3 * time.Second):
		t.Fatal("Wait did not return after the child exited")
	}
}

func TestWaitBeforeStart(t *testing.T) {
	r := New("sleep", []string{"30"}, "")
	r.Wait() // no process yet, must not block
}

func TestDisableStdinGivesChildEOF(t *testing.T) {
	// cat with no stdin reads EOF and exits at once. If the parent's stdin
	// leaked through, it would sit there until Stop.
	r := New("cat", nil, "")
	r.DisableStdin = true
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	exited := make(chan struct{})
	go func() {
		r.Wait()
		close(exited)
	}()

	select {
	case <-exited:
	case <-time.After(3 * time.Second):
		r.Stop()
		t.Fatal("cat kept running, stdin was not detached")
	}
}

func TestStdinAttachedByDefault(t *testing.T) {
	r := New("cat", nil, "")
	if r.DisableStdin {
		t.Error("DisableStdin should default to false")
	}
}

func TestRunningAfterNaturalExit(t *testing.T) {
	r := New("true", nil, "")
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Wait()
	if r.Running() {
		t.Error("child already exited, Running should report false")
	}
}
