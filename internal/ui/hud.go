// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/entity"
)

// HUD отображает строку состояния: оставшееся время, здоровье,
// уровень, опыт и имя чемпиона.
type HUD struct {
	face font.Face
}

// NewHUD создает новый HUD.
func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

// Draw отрисовывает строку состояния в левом верхнем углу.
func (h *HUD) Draw(screen *ebiten.Image, w *entity.World, championName string) {
	remaining := int(config.LevelDurationSeconds - w.Elapsed)
	if remaining < 0 {
		remaining = 0
	}
	line := fmt.Sprintf("Time %02d:%02d  HP %d  Lv %d  XP %d/%d  Champ %s",
		remaining/60, remaining%60,
		int(w.Player.HP), w.Player.Level, w.Player.XP, w.XPNeeded(), championName)
	DrawText(screen, h.face, line, config.HUDMargin, config.HUDMargin, config.TextDarkColor)
}
