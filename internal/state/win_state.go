// internal/state/win_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/ui"
	"go-cartoon-survivor/pkg/render"
)

// Убеждаемся, что WinState соответствует интерфейсу State
var _ State = (*WinState)(nil)

// WinState — финальный экран победы, из него нет возврата в игру.
type WinState struct {
	previous *PlayingState
	faces    *render.Faces
}

func NewWinState(previous *PlayingState, faces *render.Faces) *WinState {
	return &WinState{previous: previous, faces: faces}
}

func (s *WinState) Enter() {}

func (s *WinState) Update(deltaTime float64) {}

func (s *WinState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.WinOverlay, true)
	ui.DrawCenteredText(screen, s.faces.Big, "You survived the level!",
		config.ScreenWidth/2, config.ScreenHeight/2-20, config.WinTextColor)
}

func (s *WinState) Exit() {}
