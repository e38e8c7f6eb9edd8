package front

import (
	"image/color"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Resting positions of the physical objects on the faceplate.
var objectBase = map[types.Tray]ui.Vec{
	types.TrayCard:      {X: 740, Y: 200},
	types.TrayCashLarge: {X: 90, Y: 370},
	types.TrayCashSmall: {X: 695, Y: 463},
	types.TrayReceipt:   {X: 740, Y: 54},
}

var (
	screenText  = color.White
	cursorColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x8c}
)

// Fixed text anchors of the screen area, logical units, baseline y.
const (
	clockX, clockY   = 490, 25
	headerX, headerY = 85, 25
	ibanX, ibanY     = 85, 290
	titleX, titleY   = 150, 170
	entryX, entryY   = 250, 150
	hintX, hintY     = 250, 200
	askX, askY       = 140, 230
	labelLX, labelLY = 65, 150
	labelRX          = 330
	labelR1Y         = 150
	labelR3Y         = 245
)

func (f *Front) render(screen *ebiten.Image) {
	screen.DrawImage(f.assets.Background, nil)
	snap := f.ui.Snapshot()

	f.drawObject(screen, f.assets.Card, types.TrayCard, snap.CardVisible)
	f.drawObject(screen, f.assets.CashLarge, types.TrayCashLarge, snap.CashLargeVisible)
	f.drawObject(screen, f.assets.CashSmall, types.TrayCashSmall, snap.CashSmallVisible)
	f.drawObject(screen, f.assets.Receipt, types.TrayReceipt, snap.ReceiptVisible)

	f.text(screen, time.Now().Format("15:04:05"), 18, clockX, clockY)
	if snap.FullName != "" {
		f.text(screen, snap.FullName, 18, headerX, headerY)
		f.text(screen, snap.IBAN, 13, ibanX, ibanY)
	}
	f.renderScreen(screen, snap)

	if f.showCursor {
		vector.DrawFilledCircle(screen,
			float32(f.cursorX), float32(f.cursorY), 16, cursorColor, true)
	}
}

func (f *Front) renderScreen(screen *ebiten.Image, snap ui.Snapshot) {
	m := f.msgs
	switch snap.State {
	case types.StateInsertCard, types.StateCardInAnimating, types.StateCardOutAnimating:
		f.text(screen, m.MsgWelcome, 25, titleX, titleY)

	case types.StateProcessingCard, types.StateProcessingDeposit, types.StateProcessingBalance:
		f.text(screen, m.MsgProcessing, 24, titleX, titleY)

	case types.StatePinEntry:
		f.text(screen, m.MsgEnterPin, 24, titleX, titleY-60)
		f.text(screen, mask(snap.PinCount), 25, entryX+40, entryY)
		if snap.AtDigitCap {
			f.text(screen, m.MsgPressOK, 18, hintX, hintY)
		}

	case types.StateWrongPin:
		f.text(screen, m.MsgWrongPin, 23, titleX, titleY)

	case types.StateSuspended:
		f.text(screen, m.MsgSuspended, 22, titleX-30, titleY-30)

	case types.StateMainMenu:
		f.text(screen, m.MsgMenuWithdraw, 20, labelLX, labelLY)
		f.text(screen, m.MsgMenuDeposit, 20, labelRX+70, labelR1Y)
		f.text(screen, m.MsgMenuBalance, 20, labelRX, labelR3Y)

	case types.StateWithdrawAmount, types.StateDepositAmount:
		f.text(screen, m.MsgEnterAmount, 24, titleX, titleY-60)
		f.text(screen, snap.AmountText+" "+m.MsgCurrency, 25, entryX-20, entryY)
		if snap.AtDigitCap {
			f.text(screen, m.MsgPressOK, 18, hintX, hintY)
		}

	case types.StateWithdrawConfirm, types.StateDepositConfirm:
		f.text(screen, m.MsgConfirm, 24, titleX+60, titleY-60)
		f.text(screen, snap.AmountText+" "+m.MsgCurrency, 25, entryX-20, entryY)
		f.text(screen, m.MsgYes, 20, labelLX, labelLY)
		f.text(screen, m.MsgChangeAmount, 20, labelRX, labelR3Y)

	case types.StateWithdrawDispense, types.StateCashInAnimating:
		// tray animation carries the screen

	case types.StateWithdrawReceipt, types.StateDepositReceipt:
		f.text(screen, m.MsgReceipt, 20, askX, askY)
		f.text(screen, m.MsgYes, 20, labelLX, labelLY)
		f.text(screen, m.MsgNo, 20, labelRX+140, labelR3Y)

	case types.StateWithdrawAnother, types.StateDepositAnother, types.StateBalanceAnother:
		f.text(screen, m.MsgAnotherTxn, 20, askX+40, askY-60)
		f.text(screen, m.MsgYes, 20, labelLX, labelLY)
		f.text(screen, m.MsgNo, 20, labelRX+140, labelR3Y)

	case types.StateInsufficientFunds:
		f.text(screen, m.MsgInsufficient, 24, titleX+40, titleY-20)
		f.text(screen, m.MsgChangeAmount, 20, labelRX, labelR3Y)

	case types.StateInsertCash:
		f.text(screen, m.MsgInsertCash, 23, titleX-20, titleY)

	case types.StateBalanceNotice:
		f.text(screen, snap.BalanceText+" "+m.MsgCurrency, 25, entryX-20, entryY-50)
		f.text(screen, m.MsgReceipt, 20, askX, askY)
		f.text(screen, m.MsgYes, 20, labelLX, labelLY)
		f.text(screen, m.MsgNo, 20, labelRX+140, labelR3Y)
	}
}

// drawObject renders an object at rest when visible, or mid-slide while
// its tray animates.
func (f *Front) drawObject(screen, img *ebiten.Image, tray types.Tray, visible bool) {
	off, animating := f.ui.TrayOffset(tray)
	if !visible && !animating {
		return
	}
	base := objectBase[tray]
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(base.X+off.X, base.Y+off.Y)
	screen.DrawImage(img, op)
}

func (f *Front) text(dst *ebiten.Image, s string, size, x, y int) {
	text.Draw(dst, s, f.assets.Face(size), x, y, screenText)
}

func mask(n int) string {
	return "****"[:n]
}
