package ui

import (
	"fmt"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/sound"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
)

// The transition function is a reducer: it mutates only machine-owned data
// and returns the side effects for the driver to execute, in order.
type EffectKind uint8

const (
	EffectInvalid EffectKind = iota
	EffectRoutine              // run a compound routine through the dispatcher
	EffectSound                // play one clip directly, no routine semantics
	EffectSchedule             // pure delay feeding EventElapsed back in
	EffectLog                  // timestamped journal line
	EffectLogRaw               // journal continuation line, no timestamp
	EffectExit                 // stop the run loop
)

type Effect struct {
	Kind    EffectKind
	Routine types.RoutineKind
	Clip    sound.Clip
	Delay   time.Duration
	Line    string
}

func routineEffect(k types.RoutineKind) Effect { return Effect{Kind: EffectRoutine, Routine: k} }
func soundEffect(c sound.Clip) Effect          { return Effect{Kind: EffectSound, Clip: c} }
func scheduleEffect(d time.Duration) Effect    { return Effect{Kind: EffectSchedule, Delay: d} }

func logEffect(format string, args ...interface{}) Effect {
	return Effect{Kind: EffectLog, Line: fmt.Sprintf(format, args...)}
}

func rawLogEffect(format string, args ...interface{}) Effect {
	return Effect{Kind: EffectLogRaw, Line: fmt.Sprintf(format, args...)}
}
