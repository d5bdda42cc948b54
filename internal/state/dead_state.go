// internal/state/dead_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/ui"
	"go-cartoon-survivor/pkg/render"
)

// Убеждаемся, что DeadState соответствует интерфейсу State
var _ State = (*DeadState)(nil)

// DeadState — финальный экран поражения.
type DeadState struct {
	previous *PlayingState
	faces    *render.Faces
}

func NewDeadState(previous *PlayingState, faces *render.Faces) *DeadState {
	return &DeadState{previous: previous, faces: faces}
}

func (s *DeadState) Enter() {}

func (s *DeadState) Update(deltaTime float64) {}

func (s *DeadState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DeadOverlay, true)
	ui.DrawCenteredText(screen, s.faces.Big, "You died — try again!",
		config.ScreenWidth/2, config.ScreenHeight/2-20, config.DeadTextColor)
}

func (s *DeadState) Exit() {}
