package types

// RoutineKind names the compound side-effecting actions the dispatcher knows.
// KeySound and MenuSound are instantaneous; the rest occupy the action timer
// for the duration of their sound clip.
type RoutineKind uint8

const (
	RoutineInvalid RoutineKind = iota
	RoutineCardIn
	RoutineCardOut
	RoutineKeySound
	RoutineMenuSound
	RoutineCashLargeOut
	RoutineCashSmallIn
	RoutineReceiptOut
)

var routineNames = map[RoutineKind]string{
	RoutineInvalid:      "invalid",
	RoutineCardIn:       "card-in",
	RoutineCardOut:      "card-out",
	RoutineKeySound:     "key-sound",
	RoutineMenuSound:    "menu-sound",
	RoutineCashLargeOut: "cash-large-out",
	RoutineCashSmallIn:  "cash-small-in",
	RoutineReceiptOut:   "receipt-out",
}

func (r RoutineKind) String() string {
	if n, ok := routineNames[r]; ok {
		return n
	}
	return "?unknown"
}

// Tray identifies one of the four animatable physical objects.
type Tray uint8

const (
	TrayCard Tray = iota
	TrayCashLarge
	TrayCashSmall
	TrayReceipt
	trayCount
)

const TrayCount = int(trayCount)
