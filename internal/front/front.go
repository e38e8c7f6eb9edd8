// Package front is the ebiten shell around the ui core: it owns the
// window, feeds pointer events in and draws snapshots out. Nothing in
// here makes transaction decisions.
package front

import (
	"context"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/config"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/state"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/juju/errors"
)

const resourceDir = "res"

type Front struct {
	g      *state.Global
	ui     *ui.UI
	assets *Assets
	msgs   *config.FrontStruct

	showCursor       bool
	cursorX, cursorY int
	lastTick         time.Time
	touchIDs         []ebiten.TouchID
}

func New(ctx context.Context, u *ui.UI) (*Front, error) {
	g := state.GetGlobal(ctx)
	assets, err := LoadAssets(resourceDir)
	if err != nil {
		return nil, errors.Annotate(err, "front assets")
	}
	f := &Front{
		g:          g,
		ui:         u,
		assets:     assets,
		msgs:       &g.Config.UI.Front,
		showCursor: g.Config.Window.ShowCursor,
	}

	// the hot-zone of each physical object follows its sprite
	for _, obj := range []struct {
		code types.ElementCode
		img  *ebiten.Image
		base ui.Vec
	}{
		{types.ElCard, assets.Card, objectBase[types.TrayCard]},
		{types.ElCashLarge, assets.CashLarge, objectBase[types.TrayCashLarge]},
		{types.ElCashSmall, assets.CashSmall, objectBase[types.TrayCashSmall]},
		{types.ElReceipt, assets.Receipt, objectBase[types.TrayReceipt]},
	} {
		b := obj.img.Bounds()
		u.Hitmap().SetObjectBounds(obj.code, ui.Rect{
			X0: int(obj.base.X),
			Y0: int(obj.base.Y),
			X1: int(obj.base.X) + b.Dx() - 1,
			Y1: int(obj.base.Y) + b.Dy() - 1,
		})
	}
	return f, nil
}

func (f *Front) Update() error {
	if !f.g.Alive.IsRunning() {
		return ebiten.Termination
	}

	f.cursorX, f.cursorY = ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.ui.OfferPointer(f.cursorX, f.cursorY)
	}
	f.touchIDs = inpututil.AppendJustPressedTouchIDs(f.touchIDs[:0])
	for _, id := range f.touchIDs {
		x, y := ebiten.TouchPosition(id)
		f.ui.OfferPointer(x, y)
	}

	now := time.Now()
	if f.lastTick.IsZero() {
		f.lastTick = now
	}
	f.ui.Tick(now.Sub(f.lastTick))
	f.lastTick = now
	return nil
}

func (f *Front) Draw(screen *ebiten.Image) { f.render(screen) }

// Layout pins the logical canvas; ebiten letterboxes the window and maps
// cursor coordinates into it, so the hit zones never need rescaling.
func (f *Front) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.CanvasWidth, ui.CanvasHeight
}

// Run blocks until the machine stops or the window closes.
func Run(ctx context.Context, u *ui.UI) error {
	g := state.GetGlobal(ctx)
	f, err := New(ctx, u)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(g.Config.Window.Title)
	ebiten.SetWindowSize(ui.CanvasWidth, ui.CanvasHeight)
	if f.showCursor {
		// the renderer draws its own touch marker instead
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if err := ebiten.RunGame(f); err != nil {
		return errors.Annotate(err, "front run")
	}
	return nil
}
