package ui

import (
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/haptic"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/sound"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
)

// Sounder is what the dispatcher needs from the audio system. Clip
// durations drive both the tray animation and the completion timer, so
// the motion ends exactly when the sound does. *sound.System satisfies it.
type Sounder interface {
	Play(sound.Clip)
	Duration(sound.Clip) time.Duration
}

// Dispatcher runs compound routines: clip + haptic pulse + tray slide +
// completion event. At most one timed routine is in flight; Invoke while
// busy is rejected, which keeps double-taps from double-dispensing.
type Dispatcher struct {
	log   *log2.Log
	snd   Sounder
	vibe  haptic.Driver
	timer *ActionTimer
	anim  *Animator
	emit  func(types.Event)
}

func NewDispatcher(log *log2.Log, snd Sounder, vibe haptic.Driver, timer *ActionTimer, anim *Animator, emit func(types.Event)) *Dispatcher {
	return &Dispatcher{log: log, snd: snd, vibe: vibe, timer: timer, anim: anim, emit: emit}
}

// Travel distances of the sliding trays, logical canvas units.
var trayMotion = map[types.RoutineKind]struct {
	tray     types.Tray
	from, to Vec
}{
	types.RoutineCardIn:       {types.TrayCard, Vec{}, Vec{Y: 160}},
	types.RoutineCardOut:      {types.TrayCard, Vec{Y: 160}, Vec{}},
	types.RoutineCashLargeOut: {types.TrayCashLarge, Vec{Y: 120}, Vec{}},
	types.RoutineCashSmallIn:  {types.TrayCashSmall, Vec{}, Vec{Y: 115}},
	types.RoutineReceiptOut:   {types.TrayReceipt, Vec{Y: -130}, Vec{}},
}

func (d *Dispatcher) Invoke(k types.RoutineKind) bool {
	if d.timer.Active() {
		return false
	}
	switch k {
	case types.RoutineKeySound:
		d.vibe.Pulse(haptic.Short)
		d.snd.Play(sound.ClipKey)
		return true
	case types.RoutineMenuSound:
		d.vibe.Pulse(haptic.Short)
		d.snd.Play(sound.ClipMenu)
		return true
	case types.RoutineCardIn, types.RoutineCardOut:
		return d.timed(k, sound.ClipCard)
	case types.RoutineCashLargeOut, types.RoutineCashSmallIn:
		return d.timed(k, sound.ClipCash)
	case types.RoutineReceiptOut:
		return d.timed(k, sound.ClipReceipt)
	}
	d.log.Errorf("code error dispatcher unknown routine %v", k)
	return false
}

func (d *Dispatcher) timed(k types.RoutineKind, clip sound.Clip) bool {
	dur := d.snd.Duration(clip)
	d.vibe.Pulse(haptic.Medium)
	d.snd.Play(clip)
	if mo, ok := trayMotion[k]; ok {
		d.anim.Start(mo.tray, mo.from, mo.to, dur)
	}
	if !d.timer.Schedule(dur, func() {
		d.emit(types.Event{Kind: types.EventRoutineDone, Routine: k})
	}) {
		d.log.Errorf("code error dispatcher %v timer busy", k)
		return false
	}
	return true
}
