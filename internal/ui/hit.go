package ui

import "github.com/XtremePrime/ATM-Software-RELOADED/internal/types"

// Logical canvas of the fixed kiosk layout. Raw device coordinates are
// letterbox-mapped into this space before they reach the hit-tester.
const (
	CanvasWidth  = 960
	CanvasHeight = 620
)

// Rect is an axis-aligned hot-zone with inclusive bounds, logical units.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) Contains(x, y int) bool {
	return r.X0 <= x && x <= r.X1 && r.Y0 <= y && y <= r.Y1
}

type zone struct {
	code    types.ElementCode
	rect    Rect
	visible func() bool // nil = always hit-testable
}

// Hitmap maps a pointer coordinate to an element code through one
// data-driven zone table. Keypad zones share screen space with the large
// cash tray, so they are gated on the tray being hidden; the four physical
// objects are gated on their own visibility.
type Hitmap struct {
	zones []zone
}

func NewHitmap(m *Machine) *Hitmap {
	keypadUncovered := func() bool { return !m.CashLargeVisible() }
	h := &Hitmap{zones: []zone{
		// screen soft-buttons, left and right columns
		{types.ElL1, Rect{11, 125, 55, 163}, nil},
		{types.ElL2, Rect{11, 174, 55, 210}, nil},
		{types.ElL3, Rect{11, 221, 55, 259}, nil},
		{types.ElL4, Rect{11, 269, 55, 305}, nil},
		{types.ElR1, Rect{588, 127, 632, 163}, nil},
		{types.ElR2, Rect{588, 175, 632, 212}, nil},
		{types.ElR3, Rect{588, 223, 632, 259}, nil},
		{types.ElR4, Rect{588, 270, 632, 308}, nil},

		// keypad column 1
		{types.ElKey1, Rect{209, 410, 255, 449}, keypadUncovered},
		{types.ElKey4, Rect{209, 457, 255, 496}, keypadUncovered},
		{types.ElKey7, Rect{209, 504, 255, 543}, keypadUncovered},
		// keypad column 2
		{types.ElKey2, Rect{264, 410, 310, 449}, keypadUncovered},
		{types.ElKey5, Rect{264, 457, 310, 496}, keypadUncovered},
		{types.ElKey8, Rect{264, 504, 310, 543}, keypadUncovered},
		{types.ElKey0, Rect{264, 551, 310, 590}, keypadUncovered},
		// keypad column 3
		{types.ElKey3, Rect{319, 410, 365, 449}, keypadUncovered},
		{types.ElKey6, Rect{319, 457, 365, 496}, keypadUncovered},
		{types.ElKey9, Rect{319, 504, 365, 543}, keypadUncovered},
		// action column
		{types.ElCancel, Rect{385, 410, 455, 449}, keypadUncovered},
		{types.ElClear, Rect{385, 457, 455, 496}, keypadUncovered},
		{types.ElOK, Rect{385, 504, 455, 543}, keypadUncovered},

		// physical objects; bounds follow the sprite, updated at asset load
		{types.ElCard, Rect{740, 200, 925, 310}, m.CardVisible},
		{types.ElCashLarge, Rect{90, 370, 550, 480}, m.CashLargeVisible},
		{types.ElCashSmall, Rect{695, 463, 870, 568}, m.CashSmallVisible},
		{types.ElReceipt, Rect{740, 54, 920, 174}, m.ReceiptVisible},

		{types.ElExit, Rect{12, 563, 92, 603}, nil},
	}}
	return h
}

// SetObjectBounds replaces the hot-zone of one physical object with the
// actual sprite bounds once textures are loaded.
func (h *Hitmap) SetObjectBounds(code types.ElementCode, r Rect) {
	for i := range h.zones {
		if h.zones[i].code == code {
			h.zones[i].rect = r
			return
		}
	}
}

// Locate is a pure function of the coordinate and current visibility flags.
func (h *Hitmap) Locate(x, y int) types.ElementCode {
	for i := range h.zones {
		z := &h.zones[i]
		if z.rect.Contains(x, y) && (z.visible == nil || z.visible()) {
			return z.code
		}
	}
	return types.ElNone
}
