// internal/system/progression.go
package system

import (
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/event"
)

// ProgressionSystem начисляет опыт за убитых мобов и следит за порогом уровня.
type ProgressionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	ps := &ProgressionSystem{world: world, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.MobKilled, ps)
	return ps
}

// OnEvent начисляет один опыт за каждого убитого моба.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type == event.MobKilled {
		s.world.Player.XP++
	}
}

// Update проверяет порог опыта в конце кадра.
// Уровень поднимается ровно на единицу за проверку, опыт не сбрасывается:
// следующий порог считается уже от нового уровня.
func (s *ProgressionSystem) Update() {
	p := s.world.Player
	if p.XP >= s.world.XPNeeded() {
		p.Level++
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerLeveledUp, Data: p.Level})
	}
}
