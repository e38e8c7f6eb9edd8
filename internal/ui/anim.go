package ui

import (
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
)

type Vec struct {
	X float64
	Y float64
}

// Animator holds at most one sliding-tray animation: a linear position
// offset over the owning routine's clip duration. Purely presentational;
// the state machine never reads it back.
type Animator struct {
	active   bool
	tray     types.Tray
	from, to Vec
	duration time.Duration
	elapsed  time.Duration
}

func (a *Animator) Active() bool { return a.active }

func (a *Animator) Start(tray types.Tray, from, to Vec, d time.Duration) bool {
	if a.active || d <= 0 {
		return false
	}
	*a = Animator{active: true, tray: tray, from: from, to: to, duration: d}
	return true
}

func (a *Animator) Poll(elapsed time.Duration) {
	if !a.active {
		return
	}
	a.elapsed += elapsed
	if a.elapsed >= a.duration {
		a.active = false
	}
}

// Offset reports the current offset for tray, and whether it is animating.
func (a *Animator) Offset(tray types.Tray) (Vec, bool) {
	if !a.active || a.tray != tray {
		return Vec{}, false
	}
	k := float64(a.elapsed) / float64(a.duration)
	return Vec{
		X: a.from.X + (a.to.X-a.from.X)*k,
		Y: a.from.Y + (a.to.Y-a.from.Y)*k,
	}, true
}
