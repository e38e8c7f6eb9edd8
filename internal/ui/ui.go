// Package ui is the kiosk core: the transaction state machine, the
// hit-tester over the fixed screen layout, the routine dispatcher and the
// timed-action scheduler. The rendering front end sits on top of it and
// only reads snapshots.
package ui

import (
	"context"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/state"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
)

type UI struct {
	g       *state.Global
	machine *Machine
	hit     *Hitmap
	timer   *ActionTimer
	anim    *Animator
	disp    *Dispatcher

	pending    types.PointerEvent
	hasPending bool
}

func (ui *UI) Init(ctx context.Context) error {
	ui.g = state.GetGlobal(ctx)
	if ui.g.Config.UI.LogDebug {
		ui.g.Log.SetLevel(log2.LDebug)
	}
	ui.machine = NewMachine(ui.g.Log, ui.g.Accounts, ui.g.Config.ProcessingTime())
	ui.timer = &ActionTimer{}
	ui.anim = &Animator{}
	ui.disp = NewDispatcher(ui.g.Log, ui.g.Sound, ui.g.Vibe, ui.timer, ui.anim, ui.dispatch)
	ui.hit = NewHitmap(ui.machine)
	return nil
}

// Busy reports whether a timed routine or a processing delay is running.
// While busy all pointer input is discarded, not queued.
func (ui *UI) Busy() bool { return ui.timer.Active() }

// OfferPointer records a pointer-down for the next Tick. Only the latest
// event is kept; a burst of clicks within one frame collapses to one.
func (ui *UI) OfferPointer(x, y int) {
	if ui.timer.Active() {
		return
	}
	ui.pending = types.PointerEvent{X: x, Y: y}
	ui.hasPending = true
}

// Tick runs one frame: consume buffered input, then advance the scheduler
// and the tray animation. Order matters; a routine scheduled by the input
// just consumed must not complete on the same frame.
func (ui *UI) Tick(elapsed time.Duration) {
	if ui.hasPending {
		ui.hasPending = false
		if el := ui.hit.Locate(ui.pending.X, ui.pending.Y); el != types.ElNone {
			ui.dispatch(types.Event{Kind: types.EventTouch, Element: el})
		}
	}
	ui.timer.Poll(elapsed)
	ui.anim.Poll(elapsed)
}

func (ui *UI) dispatch(ev types.Event) {
	ui.execute(ui.machine.Step(ev))
}

func (ui *UI) execute(effs []Effect) {
	for _, e := range effs {
		switch e.Kind {
		case EffectRoutine:
			if !ui.disp.Invoke(e.Routine) {
				ui.g.Log.Debugf("routine %v dropped, dispatcher busy", e.Routine)
			}
		case EffectSound:
			ui.g.Sound.Play(e.Clip)
		case EffectSchedule:
			if !ui.timer.Schedule(e.Delay, func() {
				ui.dispatch(types.Event{Kind: types.EventElapsed})
			}) {
				ui.g.Log.Debugf("schedule dropped, timer busy")
			}
		case EffectLog:
			ui.g.Journal.Printf("%s", e.Line)
		case EffectLogRaw:
			ui.g.Journal.Raw("%s", e.Line)
		case EffectExit:
			ui.g.Stop()
		}
	}
}

// Snapshot and TrayOffset are the render-side view.
func (ui *UI) Snapshot() Snapshot { return ui.machine.Snapshot() }

func (ui *UI) TrayOffset(tray types.Tray) (Vec, bool) { return ui.anim.Offset(tray) }

func (ui *UI) Hitmap() *Hitmap { return ui.hit }

func (ui *UI) Machine() *Machine { return ui.machine }
