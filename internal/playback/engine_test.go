package playback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/playback"
	"github.com/waabox/clidemo/internal/window"
)

func scriptWithDelays(policy domain.EndPolicy, delaysMs ...int) domain.Script {
	steps := make([]domain.Step, len(delaysMs))
	for i, d := range delaysMs {
		steps[i] = domain.Step{
			ID:     i + 1,
			Title:  "step",
			Status: domain.StatusSuccess,
			Delay:  time.Duration(d) * time.Millisecond,
		}
	}
	return domain.Script{Name: "test", Steps: steps, EndPolicy: policy}
}

func sixSteps() domain.Script {
	return scriptWithDelays(domain.EndStop, 2000, 3000, 2500, 2000, 2000, 3000)
}

// runFor feeds timer fires into e until elapsed time would exceed d.
func runFor(e playback.Engine, d time.Duration) playback.Engine {
	var elapsed time.Duration
	for {
		delay, ok := e.Pending()
		if !ok || elapsed+delay > d {
			return e
		}
		elapsed += delay
		e = e.Advance()
	}
}

func TestNew_StartsAtFirstStepWithAutoplay(t *testing.T) {
	e := playback.New(sixSteps())

	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 6, e.Len())
	assert.True(t, e.AutoPlaying())
	assert.True(t, e.AtStart())
	assert.False(t, e.AtEnd())
	assert.Equal(t, 1, e.Current().ID)
}

func TestNext_StopsAtLastStep(t *testing.T) {
	e := playback.New(sixSteps())
	for i := 0; i < 10; i++ {
		e = e.Next()
	}

	assert.Equal(t, 5, e.Index())
	assert.True(t, e.AtEnd())
}

func TestPrevious_StopsAtFirstStep(t *testing.T) {
	e := playback.New(sixSteps()).Previous()

	assert.Equal(t, 0, e.Index())
}

func TestManualNavigation_AlwaysDisablesAutoplay(t *testing.T) {
	e := playback.New(sixSteps())
	assert.False(t, e.Next().AutoPlaying())
	assert.False(t, e.Previous().AutoPlaying())

	paused := e.ToggleAutoplay()
	assert.False(t, paused.Next().AutoPlaying())
	assert.False(t, paused.Previous().AutoPlaying())
}

func TestToggleAutoplay_TwiceRestoresValue(t *testing.T) {
	e := playback.New(sixSteps())
	assert.Equal(t, e.AutoPlaying(), e.ToggleAutoplay().ToggleAutoplay().AutoPlaying())

	off := e.Next()
	assert.Equal(t, off.AutoPlaying(), off.ToggleAutoplay().ToggleAutoplay().AutoPlaying())
}

func TestResume_KeepsCursor(t *testing.T) {
	e := playback.New(sixSteps()).Next().Next().Resume()

	assert.Equal(t, 2, e.Index())
	assert.True(t, e.AutoPlaying())
}

func TestProgress(t *testing.T) {
	e := playback.New(sixSteps())
	assert.InDelta(t, 1.0/6.0, e.Progress(), 1e-9)

	for i := 0; i < 5; i++ {
		e = e.Next()
	}
	assert.InDelta(t, 1.0, e.Progress(), 1e-9)
}

func TestAdvance_IgnoredWhilePaused(t *testing.T) {
	e := playback.New(sixSteps()).ToggleAutoplay()

	assert.Equal(t, 0, e.Advance().Index())
	_, ok := e.Pending()
	assert.False(t, ok)
}

func TestAutoplay_ReachesStepThreeAfterFirstThreeDelays(t *testing.T) {
	e := runFor(playback.New(sixSteps()), 7500*time.Millisecond)

	assert.Equal(t, 3, e.Index())
	assert.True(t, e.AutoPlaying())
}

func TestAutoplay_StopsAtTerminalStepWithoutWrapping(t *testing.T) {
	e := runFor(playback.New(sixSteps()), time.Minute)

	assert.Equal(t, 5, e.Index())
	assert.False(t, e.AutoPlaying())
	_, ok := e.Pending()
	assert.False(t, ok)
}

func TestAutoplay_PreviousFromTerminalStepIsAllowed(t *testing.T) {
	e := runFor(playback.New(sixSteps()), time.Minute).Previous()

	assert.Equal(t, 4, e.Index())
}

func TestAutoplay_LoopPolicyWrapsAfterPause(t *testing.T) {
	s := scriptWithDelays(domain.EndLoop, 1000, 1000)
	s.LoopPause = 500 * time.Millisecond
	e := playback.New(s).Advance()
	assert.Equal(t, 1, e.Index())

	delay, ok := e.Pending()
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, delay)

	e = e.Advance()
	assert.Equal(t, 0, e.Index())
	assert.True(t, e.AutoPlaying())
}

func TestEngine_IsImmutable(t *testing.T) {
	e := playback.New(sixSteps())
	_ = e.Next()

	assert.Equal(t, 0, e.Index())
	assert.True(t, e.AutoPlaying())
}

func TestEngine_EmptyScriptIsSafe(t *testing.T) {
	e := playback.New(domain.Script{})

	assert.Equal(t, domain.Step{}, e.Current())
	assert.Equal(t, 0, e.Next().Index())
	assert.Equal(t, 0.0, e.Progress())
	_, ok := e.Pending()
	assert.False(t, ok)
}

func TestToggleAutoplay_AtTerminalStepNeverMovesCursor(t *testing.T) {
	e := runFor(playback.New(sixSteps()), time.Minute)
	a := assert.New(t)
	a.False(e.AutoPlaying())

	e = e.ToggleAutoplay()
	delay, ok := e.Pending()
	a.True(ok)
	a.Equal(3000*time.Millisecond, delay)

	e = e.Advance()
	a.Equal(5, e.Index())
	a.False(e.AutoPlaying())
	_, ok = e.Pending()
	a.False(ok)
}

func TestDue_GatedOnOpenWindowAndStaticMode(t *testing.T) {
	e := playback.New(sixSteps())

	delay, ok := e.Due(window.ModeOpen, false)
	assert.True(t, ok)
	assert.Equal(t, 2000*time.Millisecond, delay)

	for _, mode := range []window.Mode{window.ModeHidden, window.ModeMinimized, window.ModeClosed} {
		_, ok := e.Due(mode, false)
		assert.False(t, ok, mode)
	}
	_, ok = e.Due(window.ModeOpen, true)
	assert.False(t, ok)
	_, ok = e.ToggleAutoplay().Due(window.ModeOpen, false)
	assert.False(t, ok)
}
