package systems

import (
	"testing"
	"time"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
)

func TestClockClampsStalledFrames(t *testing.T) {
	e := newTestECS(t)

	entry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(entry)
	clock.Last = time.Now().Add(-time.Second)

	UpdateClock(e)

	if clock.Delta > cfg.Arena.MaxDelta {
		t.Errorf("Delta = %v, want clamped to %v", clock.Delta, cfg.Arena.MaxDelta)
	}
	if clock.RawDelta < 0.9 {
		t.Errorf("RawDelta = %v, want the unclamped measurement", clock.RawDelta)
	}
}

func TestClockFirstFrameKeepsDefaultStep(t *testing.T) {
	e := newTestECS(t)

	entry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(entry)

	UpdateClock(e)

	if clock.Delta != 1.0/60.0 {
		t.Errorf("Delta = %v on the first frame, want the default step", clock.Delta)
	}
	if clock.Last.IsZero() {
		t.Error("Last not initialized on the first frame")
	}
}
