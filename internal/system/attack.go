// internal/system/attack.go
package system

import (
	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/utils"
)

// AttackSystem выполняет автоатаку игрока по ближайшему мобу в радиусе.
// Если в радиусе никого нет, таймер остается готовым и атака уходит сразу,
// как только цель появится.
type AttackSystem struct {
	world *entity.World
}

func NewAttackSystem(world *entity.World) *AttackSystem {
	return &AttackSystem{world: world}
}

func (s *AttackSystem) Update(deltaTime float64) {
	p := s.world.Player
	p.AttackTimer -= deltaTime
	if p.AttackTimer > 0 || len(s.world.Mobs) == 0 {
		return
	}

	nearest := s.world.Mobs[0]
	nearestDist := utils.Distance(p.X, p.Y, nearest.X, nearest.Y)
	for _, mob := range s.world.Mobs[1:] {
		if d := utils.Distance(p.X, p.Y, mob.X, mob.Y); d < nearestDist {
			nearest, nearestDist = mob, d
		}
	}
	if nearestDist > p.AttackRange {
		return
	}

	if p.Attack == defs.AttackProjectile {
		dirX, dirY, _ := utils.DirectionTo(p.X, p.Y, nearest.X, nearest.Y)
		s.world.Projectiles = append(s.world.Projectiles, &component.Projectile{
			X:      p.X,
			Y:      p.Y,
			VX:     dirX * p.ProjSpeed,
			VY:     dirY * p.ProjSpeed,
			Speed:  p.ProjSpeed,
			Damage: p.Damage,
			Owner:  component.OwnerPlayer,
			TTL:    config.ProjectileTTL,
		})
	} else {
		// меч бьет всех мобов в радиусе разом, без выбора одной цели
		for _, mob := range s.world.Mobs {
			if utils.Distance(p.X, p.Y, mob.X, mob.Y) <= p.AttackRange+config.MobRadius {
				mob.HP -= p.Damage
			}
		}
	}
	p.AttackTimer = p.Cooldown
}
