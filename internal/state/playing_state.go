// internal/state/playing_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-cartoon-survivor/internal/app"
	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/ui"
	"go-cartoon-survivor/pkg/render"
)

// Убеждаемся, что PlayingState соответствует интерфейсу State
var _ State = (*PlayingState)(nil)

const xpBarTop = 28 // полоса опыта сразу под строкой HUD

// PlayingState — основной игровой экран: каждый кадр собирает ввод,
// прогоняет симуляцию и рисует мир с HUD.
type PlayingState struct {
	stateMachine *StateMachine
	game         *app.Game
	faces        *render.Faces
	renderer     *render.WorldRenderer
	hud          *ui.HUD
	xpBar        *ui.XPBar
}

func NewPlayingState(sm *StateMachine, game *app.Game, faces *render.Faces) *PlayingState {
	return &PlayingState{
		stateMachine: sm,
		game:         game,
		faces:        faces,
		renderer:     render.NewWorldRenderer(),
		hud:          ui.NewHUD(faces.Text),
		xpBar:        ui.NewXPBar(config.HUDMargin, xpBarTop),
	}
}

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update(deltaTime float64) {
	s.game.MovementSystem.SetIntent(readIntent())
	s.game.Update(deltaTime)

	switch s.game.Phase {
	case component.PhaseLevelUp:
		s.stateMachine.SetState(NewLevelUpState(s.stateMachine, s, s.game, s.faces))
	case component.PhaseWin:
		s.stateMachine.SetState(NewWinState(s, s.faces))
	case component.PhaseDead:
		s.stateMachine.SetState(NewDeadState(s, s.faces))
	}
}

// readIntent опрашивает WASD и стрелки.
func readIntent() component.InputIntent {
	return component.InputIntent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
	}
}

func (s *PlayingState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.World)

	champ := defs.ChampionLibrary[s.game.World.Player.ChampionID]
	s.hud.Draw(screen, s.game.World, champ.Name)
	s.xpBar.Draw(screen, s.game.World.Player.XP, s.game.World.XPNeeded())
}

func (s *PlayingState) Exit() {}
