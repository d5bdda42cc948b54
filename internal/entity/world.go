// internal/entity/world.go
package entity

import (
	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/utils"
)

// World — все изменяемое состояние одного забега.
// Системы мутируют его на месте, каждая в свой шаг кадра.
type World struct {
	Player      *component.Player
	Mobs        []*component.Mob
	Projectiles []*component.Projectile
	LavaPools   []*component.LavaPool
	Obstacles   []component.Obstacle

	Elapsed float64 // прошедшее игровое время в секундах
	Rng     *utils.PRNGService

	nextMobID int
}

// NewWorld создает мир с игроком в центре карты и без других сущностей.
func NewWorld(rng *utils.PRNGService) *World {
	return &World{
		Player: &component.Player{
			X:     config.WorldWidth / 2,
			Y:     config.WorldHeight / 2,
			HP:    config.PlayerBaseHP,
			Level: 1,
			Speed: config.PlayerBaseSpeed,
		},
		Rng:       rng,
		nextMobID: 1,
	}
}

// NextMobID выдает следующий уникальный идентификатор моба.
func (w *World) NextMobID() int {
	id := w.nextMobID
	w.nextMobID++
	return id
}

// Minute возвращает номер текущей минуты забега. От него зависит сложность.
func (w *World) Minute() int {
	return int(w.Elapsed / 60)
}

// XPNeeded возвращает порог опыта для следующего уровня.
func (w *World) XPNeeded() int {
	return w.Player.Level * config.XPPerLevel
}
