// internal/state/level_up_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cartoon-survivor/internal/app"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/ui"
	"go-cartoon-survivor/pkg/render"
)

// Убеждаемся, что LevelUpState соответствует интерфейсу State
var _ State = (*LevelUpState)(nil)

const (
	levelUpTitleTop   = 80
	levelUpOptionsTop = 180
	levelUpOptionStep = 36
	levelUpHintTop    = 320
)

// LevelUpState — выбор бонуса за уровень. Мир рисуется под затемнением,
// но симуляция стоит, пока игрок не выберет.
type LevelUpState struct {
	stateMachine *StateMachine
	previous     *PlayingState
	game         *app.Game
	faces        *render.Faces
}

func NewLevelUpState(sm *StateMachine, previous *PlayingState, game *app.Game, faces *render.Faces) *LevelUpState {
	return &LevelUpState{
		stateMachine: sm,
		previous:     previous,
		game:         game,
		faces:        faces,
	}
}

func (s *LevelUpState) Enter() {}

func (s *LevelUpState) Update(deltaTime float64) {
	var bonus defs.BonusKind
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		bonus = defs.BonusDamage
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		bonus = defs.BonusSpeed
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		bonus = defs.BonusMaxHP
	default:
		return
	}

	s.game.ApplyLevelBonus(bonus)
	s.stateMachine.SetState(s.previous)
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.LevelUpOverlay, true)

	ui.DrawCenteredText(screen, s.faces.Big, "Level Up! Choose a bonus", config.ScreenWidth/2, levelUpTitleTop, config.LevelUpTitle)

	damage := int(config.BonusDamageBase + config.BonusDamagePerLv*float64(s.game.World.Player.Level))
	opts := []string{
		fmt.Sprintf("1) + Damage (%d dmg)", damage),
		"2) + Speed (movement)",
		"3) + Max HP & heal",
	}
	for i, opt := range opts {
		ui.DrawCenteredText(screen, s.faces.Text, opt, config.ScreenWidth/2, levelUpOptionsTop+i*levelUpOptionStep, config.TextOptionColor)
	}
	ui.DrawCenteredText(screen, s.faces.Text, "Press 1/2/3 to choose", config.ScreenWidth/2, levelUpHintTop, config.TextMutedColor)
}

func (s *LevelUpState) Exit() {}
