// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-cartoon-survivor/internal/app"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/state"
	"go-cartoon-survivor/pkg/render"
)

const startFromPlaying = false // true — сразу в игру первым чемпионом, минуя меню выбора

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	faces := render.LoadFaces()
	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromPlaying {
		game := app.NewGame(defs.ChampionOrder[0], 0)
		sm.SetState(state.NewPlayingState(sm, game, faces))
	} else {
		sm.SetState(state.NewChampSelectState(sm, faces))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cartoon Survivor")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
