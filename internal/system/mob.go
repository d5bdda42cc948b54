// internal/system/mob.go
package system

import (
	"math"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/event"
	"go-cartoon-survivor/internal/utils"
)

// MobSystem управляет поведением мобов: движением, атаками и смертью.
type MobSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewMobSystem(world *entity.World, eventDispatcher *event.Dispatcher) *MobSystem {
	return &MobSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *MobSystem) Update(deltaTime float64) {
	s.removeDead()

	minute := s.world.Minute()
	for _, mob := range s.world.Mobs {
		mob.Cooldown = math.Max(0, mob.Cooldown-deltaTime)
		switch mob.Kind {
		case defs.MobMelee:
			s.updateMelee(mob, deltaTime)
		case defs.MobShooter:
			s.updateShooter(mob, minute, deltaTime)
		case defs.MobLava:
			s.updateLava(mob, deltaTime)
		}
	}
}

// removeDead выкидывает мобов без здоровья до начала их хода,
// чтобы труп не успел сходить и ударить.
func (s *MobSystem) removeDead() {
	kept := s.world.Mobs[:0]
	for _, mob := range s.world.Mobs {
		if mob.HP <= 0 {
			s.eventDispatcher.Dispatch(event.Event{Type: event.MobKilled, Data: mob.ID})
			continue
		}
		kept = append(kept, mob)
	}
	s.world.Mobs = kept
}

// updateMelee двигает моба на игрока с обходом препятствий
// и наносит контактный урон.
func (s *MobSystem) updateMelee(mob *component.Mob, deltaTime float64) {
	p := s.world.Player
	dirX, dirY, _ := utils.DirectionTo(mob.X, mob.Y, p.X, p.Y)
	step := mob.Speed * deltaTime
	if nx, ny, ok := steerStep(s.world.Obstacles, mob.X, mob.Y, dirX, dirY, step, config.MobRadius, meleeSteerAngles); ok {
		mob.X, mob.Y = nx, ny
	}

	if utils.Distance(mob.X, mob.Y, p.X, p.Y) <= config.MobRadius+config.PlayerRadius {
		p.HP -= config.MeleeContactDPS * deltaTime
	}
}

// updateShooter держит дистанцию до игрока и стреляет по готовности.
func (s *MobSystem) updateShooter(mob *component.Mob, minute int, deltaTime float64) {
	p := s.world.Player
	dirX, dirY, dist := utils.DirectionTo(mob.X, mob.Y, p.X, p.Y)
	step := mob.Speed * deltaTime

	if dist > config.ShooterStandoff {
		if nx, ny, ok := steerStep(s.world.Obstacles, mob.X, mob.Y, dirX, dirY, step, config.MobRadius, approachSteerAngles); ok {
			mob.X, mob.Y = nx, ny
		}
	} else if dist < config.ShooterStandoff-config.ShooterRetreatBuffer {
		// отступаем: то же рулежное движение, но от игрока
		if nx, ny, ok := steerStep(s.world.Obstacles, mob.X, mob.Y, -dirX, -dirY, step, config.MobRadius, retreatSteerAngles); ok {
			mob.X, mob.Y = nx, ny
		}
	}

	if mob.Cooldown <= 0 && dist <= config.ShooterFireRange {
		s.world.Projectiles = append(s.world.Projectiles, &component.Projectile{
			X:      mob.X,
			Y:      mob.Y,
			VX:     dirX * config.ShooterProjSpeed,
			VY:     dirY * config.ShooterProjSpeed,
			Speed:  config.ShooterProjSpeed,
			Damage: config.ShooterBaseDamage + float64(minute)*config.ShooterDamagePerMin,
			Owner:  component.OwnerMob,
			TTL:    config.ProjectileTTL,
		})
		mob.Cooldown = s.world.Rng.UniformRange(config.ShooterCooldownMin, config.ShooterCooldownMax)
	}
}

// updateLava медленно бродит случайным курсом и оставляет лужи по таймеру.
func (s *MobSystem) updateLava(mob *component.Mob, deltaTime float64) {
	rng := s.world.Rng
	ang := rng.UniformRange(0, 2*math.Pi)
	step := mob.Speed * config.LavaWanderFactor * deltaTime
	nx := mob.X + math.Cos(ang)*step
	ny := mob.Y + math.Sin(ang)*step
	// без рулежки: уперся — стоит этот кадр
	if !blockedByObstacle(s.world.Obstacles, nx, ny, config.MobRadius) {
		mob.X = utils.Clamp(nx, 0, config.WorldWidth)
		mob.Y = utils.Clamp(ny, 0, config.WorldHeight)
	}

	if mob.Cooldown <= 0 {
		s.world.LavaPools = append(s.world.LavaPools, &component.LavaPool{
			X:        mob.X,
			Y:        mob.Y,
			Radius:   config.LavaPoolRadius,
			Duration: config.LavaPoolDuration + rng.UniformRange(config.LavaPoolDurJitterMin, config.LavaPoolDurJitterMax),
		})
		mob.Cooldown = config.LavaDropCooldown + rng.UniformRange(0, config.LavaDropCdJitterMax)
	}
}
