package types

// ElementCode is what the hit-tester resolves a pointer coordinate into.
type ElementCode uint8

const (
	ElNone ElementCode = iota

	ElL1
	ElL2
	ElL3
	ElL4
	ElR1
	ElR2
	ElR3
	ElR4

	// keypad digits, contiguous so digit value = code - ElKey0
	ElKey0
	ElKey1
	ElKey2
	ElKey3
	ElKey4
	ElKey5
	ElKey6
	ElKey7
	ElKey8
	ElKey9

	ElCancel
	ElClear
	ElOK
	ElExit

	// physical objects, hit-testable only while their tray is visible
	ElCard
	ElCashLarge
	ElCashSmall
	ElReceipt
)

func (e ElementCode) IsDigit() bool { return e >= ElKey0 && e <= ElKey9 }

// Digit panics unless IsDigit.
func (e ElementCode) Digit() uint16 {
	if !e.IsDigit() {
		panic("code error ElementCode.Digit on non-digit element")
	}
	return uint16(e - ElKey0)
}

var elementNames = map[ElementCode]string{
	ElNone: "none",
	ElL1:   "L1", ElL2: "L2", ElL3: "L3", ElL4: "L4",
	ElR1: "R1", ElR2: "R2", ElR3: "R3", ElR4: "R4",
	ElCancel: "Cancel", ElClear: "Clear", ElOK: "OK", ElExit: "Exit",
	ElCard: "card", ElCashLarge: "cash-large", ElCashSmall: "cash-small", ElReceipt: "receipt",
}

func (e ElementCode) String() string {
	if e.IsDigit() {
		return string('0' + rune(e-ElKey0))
	}
	if n, ok := elementNames[e]; ok {
		return n
	}
	return "?unknown"
}
