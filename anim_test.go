package cinder

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

// stubAnim counts updates and finishes after a fixed number of ticks.
type stubAnim struct {
	ticks    int
	updates  int
	canceled bool
	done     bool
}

func (s *stubAnim) Update(dt float64) bool {
	if s.done {
		return true
	}
	s.updates++
	if s.updates >= s.ticks {
		s.done = true
	}
	return s.done
}

func (s *stubAnim) Cancel()    { s.canceled = true; s.done = true }
func (s *stubAnim) Done() bool { return s.done }

func TestClockDelayHoldsWrites(t *testing.T) {
	c := newClock(AnimConfig{Duration: time.Second, Delay: 500 * time.Millisecond})
	if _, active, _ := c.advance(0.3); active {
		t.Error("active during delay")
	}
	// This tick crosses the delay boundary; the 0.1s remainder feeds the tween.
	eased, active, _ := c.advance(0.3)
	if !active {
		t.Fatal("inactive after delay consumed")
	}
	if math.Abs(eased-0.1) > 1e-6 {
		t.Errorf("eased after boundary tick = %f, want 0.1", eased)
	}
}

func TestClockFinishesWithExactEndValue(t *testing.T) {
	c := newClock(AnimConfig{Duration: time.Second})
	var last float64
	for i := 0; i < 7; i++ {
		eased, active, finished := c.advance(0.16)
		if active {
			last = eased
		}
		if finished {
			break
		}
	}
	if last != 1 {
		t.Errorf("final eased value = %f, want exactly 1", last)
	}
	if !c.Done() {
		t.Error("clock not done after finishing")
	}
	if _, active, finished := c.advance(0.16); active || finished {
		t.Error("advance after done reported activity")
	}
}

func TestClockRepeatLoops(t *testing.T) {
	c := newClock(AnimConfig{Duration: time.Second, Repeat: 2})
	finishes := 0
	for i := 0; i < 40 && !c.Done(); i++ {
		if _, _, fin := c.advance(0.25); fin {
			finishes++
		}
	}
	if finishes != 1 {
		t.Errorf("finished %d times, want once (on the final run)", finishes)
	}
	// 3 runs of 1s at 0.25s per tick = 12 ticks.
	if !c.Done() {
		t.Error("repeat clock never finished")
	}
}

func TestClockInfiniteRepeatNeverFinishes(t *testing.T) {
	c := newClock(AnimConfig{Duration: 100 * time.Millisecond, Repeat: -1})
	for i := 0; i < 100; i++ {
		if _, _, fin := c.advance(0.05); fin {
			t.Fatal("infinite repeat reported finished")
		}
	}
	if c.Done() {
		t.Error("infinite repeat clock done")
	}
}

func TestClockProgressRecord(t *testing.T) {
	c := newClock(AnimConfig{Duration: 2 * time.Second, Easing: ease.InQuad})
	eased, _, _ := c.advance(1)
	p := c.progress(eased)
	if math.Abs(p.Ratio-0.5) > 1e-6 {
		t.Errorf("Ratio = %f, want 0.5", p.Ratio)
	}
	if math.Abs(p.Eased-0.25) > 1e-6 {
		t.Errorf("Eased = %f, want 0.25 under InQuad", p.Eased)
	}
	if p.Duration != 2 {
		t.Errorf("Duration = %f, want 2", p.Duration)
	}
	if p.Done {
		t.Error("Done set mid-flight")
	}
}

func TestRunnerRemovesFinished(t *testing.T) {
	r := NewRunner()
	short := &stubAnim{ticks: 2}
	long := &stubAnim{ticks: 5}
	r.Add(short)
	r.Add(long)
	r.Update(0.016)
	if r.Len() != 2 {
		t.Fatalf("Len after tick 1 = %d, want 2", r.Len())
	}
	r.Update(0.016)
	if r.Len() != 1 {
		t.Fatalf("Len after short finished = %d, want 1", r.Len())
	}
	r.Step(3, 0.016)
	if r.Len() != 0 {
		t.Errorf("Len after all finished = %d, want 0", r.Len())
	}
}

func TestRunnerPauseAndStep(t *testing.T) {
	r := NewRunner()
	a := &stubAnim{ticks: 10}
	r.Add(a)
	r.Pause()
	if !r.Paused() {
		t.Fatal("Paused() false after Pause")
	}
	r.Update(0.016)
	if a.updates != 0 {
		t.Errorf("updates while paused = %d, want 0", a.updates)
	}
	// Step ignores pause and restores it afterward.
	r.Step(3, 0.016)
	if a.updates != 3 {
		t.Errorf("updates after Step(3) = %d, want 3", a.updates)
	}
	if !r.Paused() {
		t.Error("Step cleared the pause")
	}
	r.Resume()
	r.Update(0.016)
	if a.updates != 4 {
		t.Errorf("updates after resume = %d, want 4", a.updates)
	}
}

func TestRunnerCancelAll(t *testing.T) {
	r := NewRunner()
	a := &stubAnim{ticks: 10}
	b := &stubAnim{ticks: 10}
	r.Add(a)
	r.Add(b)
	r.CancelAll()
	if !a.canceled || !b.canceled {
		t.Error("CancelAll did not cancel every instance")
	}
	if r.Len() != 0 {
		t.Errorf("Len after CancelAll = %d, want 0", r.Len())
	}
}

func TestRunnerUpdateAllocs(t *testing.T) {
	r := NewRunner()
	for i := 0; i < 8; i++ {
		r.Add(&stubAnim{ticks: 1 << 30})
	}
	allocs := testing.AllocsPerRun(100, func() {
		r.Update(0.016)
	})
	if allocs != 0 {
		t.Errorf("Runner.Update allocated %f per run, want 0", allocs)
	}
}
