// internal/ui/xp_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	xpBarWidth  = 118
	xpBarHeight = 12
	xpBarBorder = 1
)

var (
	xpBarFillColor   = color.RGBA{70, 100, 120, 220}
	xpBarBorderColor = color.White
)

// XPBar показывает прогресс до следующего уровня.
type XPBar struct {
	X, Y float32
}

// NewXPBar создает полосу опыта с левым верхним углом в (x, y).
func NewXPBar(x, y float32) *XPBar {
	return &XPBar{X: x, Y: y}
}

// Draw отрисовывает рамку и заполненную часть полосы опыта.
func (b *XPBar) Draw(screen *ebiten.Image, currentXP, xpToNext int) {
	vector.StrokeRect(screen, b.X, b.Y, xpBarWidth, xpBarHeight, xpBarBorder, xpBarBorderColor, true)

	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = float64(currentXP) / float64(xpToNext)
	}
	if fillRatio > 1 {
		fillRatio = 1
	}
	fillWidth := float32(float64(xpBarWidth-xpBarBorder*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+xpBarBorder, b.Y+xpBarBorder, fillWidth, xpBarHeight-xpBarBorder*2, xpBarFillColor, true)
	}
}
