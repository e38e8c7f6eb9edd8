package front

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/juju/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Assets holds every texture and font face the renderer needs, decoded up
// front. Any missing resource is a fatal startup error, same contract as
// the sound clips.
type Assets struct {
	Background *ebiten.Image
	Card       *ebiten.Image
	CashLarge  *ebiten.Image
	CashSmall  *ebiten.Image
	Receipt    *ebiten.Image

	faces map[int]font.Face
}

var faceSizes = []int{13, 18, 20, 22, 23, 24, 25}

func LoadAssets(dir string) (*Assets, error) {
	a := &Assets{faces: make(map[int]font.Face, len(faceSizes))}

	for _, tex := range []struct {
		dst  **ebiten.Image
		name string
	}{
		{&a.Background, "atm.png"},
		{&a.Card, "card.png"},
		{&a.CashLarge, "cash_large.png"},
		{&a.CashSmall, "cash_small.png"},
		{&a.Receipt, "receipt.png"},
	} {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, tex.name))
		if err != nil {
			return nil, errors.Annotatef(err, "load texture %s", tex.name)
		}
		*tex.dst = img
	}

	ttf, err := os.ReadFile(filepath.Join(dir, "courier_new.ttf"))
	if err != nil {
		return nil, errors.Annotate(err, "load font")
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Annotate(err, "parse font")
	}
	for _, size := range faceSizes {
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, errors.Annotatef(err, "font face %d", size)
		}
		a.faces[size] = face
	}
	return a, nil
}

func (a *Assets) Face(size int) font.Face { return a.faces[size] }
