package domain

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseWorking Phase = "working"
	PhaseBreak   Phase = "break"
)

func (p Phase) Label() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Working"
}

const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// Completion describes a phase boundary. WorkFinished marks the end of
// a working phase, the only event that counts as a completed session.
type Completion struct {
	Occurred     bool
	WorkFinished bool
	NextPhase    Phase
}

// Timer is the work/break countdown state machine. A phase can complete
// only by ticking down to exactly zero or by an explicit skip; every
// completion stops the countdown until the next start.
type Timer struct {
	Phase     Phase
	Running   bool
	Remaining int // seconds
	Sessions  int // completed working phases, lifetime

	workSeconds  int
	breakSeconds int
}

func NewTimer(work, brk time.Duration, sessions int) *Timer {
	if work <= 0 {
		work = DefaultWorkDuration
	}
	if brk <= 0 {
		brk = DefaultBreakDuration
	}
	t := &Timer{
		Phase:        PhaseWorking,
		Sessions:     sessions,
		workSeconds:  int(work / time.Second),
		breakSeconds: int(brk / time.Second),
	}
	t.Remaining = t.workSeconds
	return t
}

// Start resumes the countdown. Starting a running timer is a no-op.
func (t *Timer) Start() {
	t.Running = true
}

// Pause halts the countdown and preserves the remaining time.
func (t *Timer) Pause() {
	t.Running = false
}

// Reset forces an idle working phase at the full work duration,
// discarding any in-progress break. No completion is emitted.
func (t *Timer) Reset() {
	t.Phase = PhaseWorking
	t.Running = false
	t.Remaining = t.workSeconds
}

// Tick advances the countdown by one second. While paused it is a no-op.
func (t *Timer) Tick() Completion {
	if !t.Running {
		return Completion{}
	}
	t.Remaining--
	if t.Remaining > 0 {
		return Completion{}
	}
	return t.complete()
}

// Skip force-completes the current phase regardless of remaining time
// or running state.
func (t *Timer) Skip() Completion {
	return t.complete()
}

func (t *Timer) complete() Completion {
	workFinished := t.Phase == PhaseWorking
	if workFinished {
		t.Sessions++
		t.Phase = PhaseBreak
		t.Remaining = t.breakSeconds
	} else {
		t.Phase = PhaseWorking
		t.Remaining = t.workSeconds
	}
	// Always pause at a phase boundary; the user starts the next phase.
	t.Running = false
	return Completion{Occurred: true, WorkFinished: workFinished, NextPhase: t.Phase}
}

// PhaseSeconds returns the full duration of the current phase in seconds.
func (t *Timer) PhaseSeconds() int {
	if t.Phase == PhaseBreak {
		return t.breakSeconds
	}
	return t.workSeconds
}

// FormatClock renders a second count as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
