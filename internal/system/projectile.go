// internal/system/projectile.go
package system

import (
	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/utils"
)

// ProjectileSystem двигает снаряды и разрешает их столкновения.
// Снаряд исчезает по времени жизни, за границей мира, о препятствие
// или при попадании в цель.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	p := s.world.Player
	kept := s.world.Projectiles[:0]
	for _, proj := range s.world.Projectiles {
		proj.TTL -= deltaTime
		proj.X += proj.VX * deltaTime
		proj.Y += proj.VY * deltaTime

		if proj.TTL <= 0 || proj.X < 0 || proj.X > config.WorldWidth || proj.Y < 0 || proj.Y > config.WorldHeight {
			continue
		}
		if s.hitsObstacle(proj) {
			continue
		}
		if proj.Owner == component.OwnerMob {
			if utils.Distance(proj.X, proj.Y, p.X, p.Y) <= config.PlayerRadius+config.ProjectileHitPadding {
				p.HP -= proj.Damage
				continue
			}
		}
		if proj.Owner == component.OwnerPlayer && s.hitsMob(proj) {
			continue
		}
		kept = append(kept, proj)
	}
	s.world.Projectiles = kept
}

func (s *ProjectileSystem) hitsObstacle(proj *component.Projectile) bool {
	for _, o := range s.world.Obstacles {
		if utils.CircleRectCollision(proj.X, proj.Y, config.ProjectileObstacleRadius, o.Rect) {
			return true
		}
	}
	return false
}

// hitsMob наносит урон первому мобу на пути снаряда.
// Труп убирает система мобов на следующем кадре.
func (s *ProjectileSystem) hitsMob(proj *component.Projectile) bool {
	for _, mob := range s.world.Mobs {
		if utils.Distance(proj.X, proj.Y, mob.X, mob.Y) <= config.MobRadius+config.ProjectileHitPadding {
			mob.HP -= proj.Damage
			return true
		}
	}
	return false
}
