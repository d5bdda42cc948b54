// internal/system/movement.go
package system

import (
	"math"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/utils"
)

// MovementSystem перемещает игрока по намерению, снятому с клавиатуры.
type MovementSystem struct {
	world  *entity.World
	intent component.InputIntent
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// SetIntent задает направление движения на ближайший кадр.
func (s *MovementSystem) SetIntent(intent component.InputIntent) {
	s.intent = intent
}

func (s *MovementSystem) Update(deltaTime float64) {
	dx := axis(s.intent.Right) - axis(s.intent.Left)
	dy := axis(s.intent.Down) - axis(s.intent.Up)
	if dx == 0 && dy == 0 {
		return
	}

	ln := math.Hypot(dx, dy)
	dx /= ln
	dy /= ln

	p := s.world.Player
	nx := p.X + dx*p.Speed*deltaTime
	ny := p.Y + dy*p.Speed*deltaTime
	// Шаг в препятствие отбрасывается целиком, скольжения вдоль стены нет
	if blockedByObstacle(s.world.Obstacles, nx, ny, config.PlayerRadius) {
		return
	}
	p.X = utils.Clamp(nx, 0, config.WorldWidth)
	p.Y = utils.Clamp(ny, 0, config.WorldHeight)
}

func axis(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
