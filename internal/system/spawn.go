// internal/system/spawn.go
package system

import (
	"math"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/utils"
)

// SpawnSystem порождает мобов с нарастающей по минутам частотой.
type SpawnSystem struct {
	world *entity.World
	acc   float64
}

func NewSpawnSystem(world *entity.World) *SpawnSystem {
	return &SpawnSystem{world: world}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	minute := s.world.Minute()
	interval := math.Max(config.MinSpawnInterval, config.BaseSpawnInterval-float64(minute)*config.SpawnIntervalPerMin)
	s.acc += deltaTime
	for s.acc >= interval {
		s.acc -= interval
		s.world.Mobs = append(s.world.Mobs, s.spawnMob(minute))
	}
}

// spawnMob собирает нового моба со сложностью по текущей минуте.
func (s *SpawnSystem) spawnMob(minute int) *component.Mob {
	rng := s.world.Rng
	x, y := FindSpawnPoint(rng, s.world.Player.X, s.world.Player.Y, s.world.Obstacles)
	return &component.Mob{
		ID:       s.world.NextMobID(),
		X:        x,
		Y:        y,
		HP:       config.MobBaseHP + float64(minute)*config.MobHPPerMinute + rng.UniformRange(config.MobHPJitterMin, config.MobHPJitterMax),
		Speed:    config.MobBaseSpeed + float64(minute)*config.MobSpeedPerMin + rng.UniformRange(config.MobSpeedJitterMin, config.MobSpeedJitterMax),
		Kind:     rng.ChooseWeighted(defs.MobSpawnTable),
		Cooldown: rng.UniformRange(config.MobCooldownMin, config.MobCooldownMax),
	}
}

// FindSpawnPoint ищет точку появления моба: не ближе MobSafeDistance к игроку
// и не внутри раздутого препятствия. После исчерпания бюджета попыток
// возвращается случайная точка без проверок, чтобы вызов всегда завершался.
func FindSpawnPoint(rng *utils.PRNGService, playerX, playerY float64, obstacles []component.Obstacle) (float64, float64) {
	gridCols := int(config.WorldWidth / config.GridBias)
	gridRows := int(config.WorldHeight / config.GridBias)

	tries := 0
	for {
		gx := float64(rng.IntRange(0, gridCols))
		gy := float64(rng.IntRange(0, gridRows))
		x := utils.Clamp(gx*config.GridBias+rng.UniformRange(-config.GridBias/2, config.GridBias/2), 0, config.WorldWidth)
		y := utils.Clamp(gy*config.GridBias+rng.UniformRange(-config.GridBias/2, config.GridBias/2), 0, config.WorldHeight)

		if utils.Distance(x, y, playerX, playerY) < config.MobSafeDistance {
			tries++
			if tries > config.SpawnPlayerTries {
				return rng.UniformRange(0, config.WorldWidth), rng.UniformRange(0, config.WorldHeight)
			}
			continue
		}

		insideObstacle := false
		for _, o := range obstacles {
			if o.Rect.Inflated(config.ObstacleSafetyMargin).ContainsPoint(x, y) {
				insideObstacle = true
				break
			}
		}
		if insideObstacle {
			tries++
			if tries > config.SpawnObstacleTries {
				return rng.UniformRange(0, config.WorldWidth), rng.UniformRange(0, config.WorldHeight)
			}
			continue
		}

		return x, y
	}
}
