package ui

import "time"

// ActionTimer is the one-shot, non-blocking delay primitive. At most one
// action may be pending at a time; scheduling while busy is a silent no-op.
// Together with the routine dispatcher it forms the single-in-flight guard
// for the whole machine.
type ActionTimer struct {
	active    bool
	remaining time.Duration
	action    func()
}

func (t *ActionTimer) Active() bool { return t.active }

// Schedule returns false when an action is already pending.
func (t *ActionTimer) Schedule(d time.Duration, action func()) bool {
	if t.active {
		return false
	}
	t.active = true
	t.remaining = d
	t.action = action
	return true
}

// Poll advances the pending action by elapsed and fires it exactly once when
// due. The slot is cleared before the action runs, so the action itself may
// schedule the next delay.
func (t *ActionTimer) Poll(elapsed time.Duration) {
	if !t.active {
		return
	}
	t.remaining -= elapsed
	if t.remaining > 0 {
		return
	}
	action := t.action
	t.active = false
	t.action = nil
	action()
}
