// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawText рисует строку с левым верхним углом в (x, top).
func DrawText(screen *ebiten.Image, face font.Face, s string, x, top int, clr color.Color) {
	text.Draw(screen, s, face, x, top+face.Metrics().Ascent.Ceil(), clr)
}

// DrawCenteredText рисует строку с центром по горизонтали в cx и
// верхним краем в top.
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, top int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - (b.Min.X+b.Max.X)/2
	text.Draw(screen, s, face, x, top+face.Metrics().Ascent.Ceil(), clr)
}
