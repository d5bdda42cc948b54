// internal/component/player.go
package component

import "go-cartoon-survivor/internal/defs"

// Player хранит все данные игрока: позицию, здоровье, прокачку
// и боевые параметры выбранного чемпиона.
type Player struct {
	X, Y  float64
	HP    float64
	Level int
	XP    int
	Speed float64

	ChampionID  string // ID из ChampionLibrary
	Attack      defs.AttackType
	ProjSpeed   float64
	Damage      float64
	AttackRange float64
	Cooldown    float64 // пауза между атаками
	AttackTimer float64 // оставшееся время до готовности атаки
}
