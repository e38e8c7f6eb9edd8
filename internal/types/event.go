package types

type EventKind uint8

const (
	EventInvalid EventKind = iota
	EventTouch               // pointer resolved to an element code
	EventElapsed             // the timed-action scheduler fired
	EventRoutineDone         // a compound routine ran to completion
	EventStop
)

type Event struct {
	Kind    EventKind
	Element ElementCode // EventTouch
	Routine RoutineKind // EventRoutineDone
}

// PointerEvent is a raw click/touch in logical canvas units.
type PointerEvent struct {
	X int
	Y int
}
