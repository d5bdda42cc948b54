// internal/system/lava.go
package system

import (
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/utils"
)

// LavaSystem выжигает лужи по таймеру и жжет игрока внутри них.
type LavaSystem struct {
	world *entity.World
}

func NewLavaSystem(world *entity.World) *LavaSystem {
	return &LavaSystem{world: world}
}

func (s *LavaSystem) Update(deltaTime float64) {
	p := s.world.Player
	kept := s.world.LavaPools[:0]
	for _, pool := range s.world.LavaPools {
		pool.Duration -= deltaTime
		pool.Age += deltaTime
		if pool.Duration <= 0 {
			continue
		}
		if utils.Distance(p.X, p.Y, pool.X, pool.Y) <= pool.Radius {
			p.HP -= config.LavaPoolDPS * deltaTime
		}
		kept = append(kept, pool)
	}
	s.world.LavaPools = kept
}
