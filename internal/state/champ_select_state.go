// internal/state/champ_select_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-cartoon-survivor/internal/app"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/ui"
	"go-cartoon-survivor/pkg/render"
)

// Убеждаемся, что ChampSelectState соответствует интерфейсу State
var _ State = (*ChampSelectState)(nil)

const (
	selectTitleTop = 30
	cardCenterY    = 180
)

// ChampSelectState — экран выбора чемпиона перед началом забега.
type ChampSelectState struct {
	stateMachine *StateMachine
	faces        *render.Faces
	cards        []*ui.Card
}

// NewChampSelectState раскладывает по карточке на каждого чемпиона.
func NewChampSelectState(sm *StateMachine, faces *render.Faces) *ChampSelectState {
	s := &ChampSelectState{stateMachine: sm, faces: faces}
	for i := range defs.ChampionOrder {
		cx := float32((float64(i) + 0.5) * config.ScreenWidth / 3)
		s.cards = append(s.cards, ui.NewCard(cx, cardCenterY, faces.Title, faces.Text))
	}
	return s
}

func (s *ChampSelectState) Enter() {}

func (s *ChampSelectState) Update(deltaTime float64) {
	choice := -1
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		choice = 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		choice = 1
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		choice = 2
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		// Клик выбирает карточку по трети экрана
		mx, _ := ebiten.CursorPosition()
		choice = mx * len(defs.ChampionOrder) / config.ScreenWidth
		if choice < 0 {
			choice = 0
		}
		if choice >= len(defs.ChampionOrder) {
			choice = len(defs.ChampionOrder) - 1
		}
	}
	if choice < 0 {
		return
	}

	game := app.NewGame(defs.ChampionOrder[choice], 0)
	s.stateMachine.SetState(NewPlayingState(s.stateMachine, game, s.faces))
}

func (s *ChampSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBackColor)
	ui.DrawCenteredText(screen, s.faces.Big, "Choose your Champion", config.ScreenWidth/2, selectTitleTop, config.TitleColor)

	for i, card := range s.cards {
		def := defs.ChampionLibrary[defs.ChampionOrder[i]]
		hint := fmt.Sprintf("Press %d or click to select", i+1)
		card.Draw(screen, def.Name, def.Desc, hint)
	}
}

func (s *ChampSelectState) Exit() {}
