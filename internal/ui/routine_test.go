package ui

import (
	"testing"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/haptic"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/sound"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSound struct {
	played []sound.Clip
	length time.Duration
}

func (s *stubSound) Play(c sound.Clip) { s.played = append(s.played, c) }

func (s *stubSound) Duration(sound.Clip) time.Duration { return s.length }

type stubVibe struct{ pulses []haptic.Class }

func (v *stubVibe) Pulse(c haptic.Class) { v.pulses = append(v.pulses, c) }

func testDispatcher(t testing.TB) (*Dispatcher, *stubSound, *stubVibe, *ActionTimer, *Animator, *[]types.Event) {
	snd := &stubSound{length: 100 * time.Millisecond}
	vibe := &stubVibe{}
	timer := &ActionTimer{}
	anim := &Animator{}
	var emitted []types.Event
	d := NewDispatcher(log2.NewTest(t, log2.LDebug), snd, vibe, timer, anim,
		func(ev types.Event) { emitted = append(emitted, ev) })
	return d, snd, vibe, timer, anim, &emitted
}

func TestDispatcherInstantRoutines(t *testing.T) {
	t.Parallel()
	d, snd, vibe, timer, _, _ := testDispatcher(t)

	require.True(t, d.Invoke(types.RoutineKeySound))
	require.True(t, d.Invoke(types.RoutineMenuSound))
	assert.Equal(t, []sound.Clip{sound.ClipKey, sound.ClipMenu}, snd.played)
	assert.Equal(t, []haptic.Class{haptic.Short, haptic.Short}, vibe.pulses)
	assert.False(t, timer.Active())
}

func TestDispatcherTimedRoutine(t *testing.T) {
	t.Parallel()
	d, snd, vibe, timer, anim, emitted := testDispatcher(t)

	require.True(t, d.Invoke(types.RoutineCardIn))
	assert.Equal(t, []sound.Clip{sound.ClipCard}, snd.played)
	assert.Equal(t, []haptic.Class{haptic.Medium}, vibe.pulses)
	assert.True(t, timer.Active())
	_, animating := anim.Offset(types.TrayCard)
	assert.True(t, animating)

	timer.Poll(100 * time.Millisecond)
	require.Len(t, *emitted, 1)
	assert.Equal(t, types.EventRoutineDone, (*emitted)[0].Kind)
	assert.Equal(t, types.RoutineCardIn, (*emitted)[0].Routine)
	assert.False(t, timer.Active())
}

func TestDispatcherBusyRejects(t *testing.T) {
	t.Parallel()
	d, snd, _, timer, _, emitted := testDispatcher(t)

	require.True(t, d.Invoke(types.RoutineCashLargeOut))
	played := len(snd.played)

	// a second invocation mid-routine has no observable effect
	assert.False(t, d.Invoke(types.RoutineCardOut))
	assert.False(t, d.Invoke(types.RoutineKeySound))
	assert.Equal(t, played, len(snd.played))

	timer.Poll(100 * time.Millisecond)
	require.Len(t, *emitted, 1)
	assert.Equal(t, types.RoutineCashLargeOut, (*emitted)[0].Routine)
}

func TestDispatcherAnimationTracksClip(t *testing.T) {
	t.Parallel()
	d, _, _, timer, anim, _ := testDispatcher(t)

	require.True(t, d.Invoke(types.RoutineReceiptOut))
	anim.Poll(50 * time.Millisecond)
	off, ok := anim.Offset(types.TrayReceipt)
	require.True(t, ok)
	assert.InDelta(t, -65, off.Y, 0.01) // halfway from -130 to 0

	anim.Poll(50 * time.Millisecond)
	_, ok = anim.Offset(types.TrayReceipt)
	assert.False(t, ok)
	timer.Poll(100 * time.Millisecond)
}
