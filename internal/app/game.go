// internal/app/game.go
package app

import (
	"log"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/event"
	"go-cartoon-survivor/internal/system"
	"go-cartoon-survivor/internal/utils"
)

// Game holds the world and the systems and runs one simulation frame.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Phase           component.GamePhase

	MovementSystem    *system.MovementSystem
	SpawnSystem       *system.SpawnSystem
	MobSystem         *system.MobSystem
	ProjectileSystem  *system.ProjectileSystem
	LavaSystem        *system.LavaSystem
	AttackSystem      *system.AttackSystem
	ProgressionSystem *system.ProgressionSystem
}

// NewGame initializes the world of a fresh run: generates obstacles and
// applies the chosen champion. Seed 0 means a time-based seed.
func NewGame(championID string, seed int64) *Game {
	rng := utils.NewPRNGService(seed)
	world := entity.NewWorld(rng)
	world.Obstacles = GenerateObstacles(rng, config.ObstacleCount)

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:            world,
		EventDispatcher:  eventDispatcher,
		Phase:            component.PhasePlaying,
		MovementSystem:   system.NewMovementSystem(world),
		SpawnSystem:      system.NewSpawnSystem(world),
		MobSystem:        system.NewMobSystem(world, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(world),
		LavaSystem:       system.NewLavaSystem(world),
		AttackSystem:     system.NewAttackSystem(world),
	}
	g.ProgressionSystem = system.NewProgressionSystem(world, eventDispatcher)
	g.applyChampion(championID)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.PlayerLeveledUp, listener)
	eventDispatcher.Subscribe(event.TimeExpired, listener)
	eventDispatcher.Subscribe(event.PlayerDied, listener)

	return g
}

func (g *Game) applyChampion(championID string) {
	def, ok := defs.ChampionLibrary[championID]
	if !ok {
		log.Printf("неизвестный чемпион %q, используем %s", championID, defs.ChampionOrder[0])
		def = defs.ChampionLibrary[defs.ChampionOrder[0]]
	}
	p := g.World.Player
	p.ChampionID = def.ID
	p.Attack = def.Attack
	p.ProjSpeed = def.ProjSpeed
	p.Damage = def.Damage
	p.Cooldown = def.Cooldown
	p.AttackRange = def.Range
}

// Update runs one simulation frame. Outside the playing phase the world
// is frozen: nothing moves, spawns or takes damage.
func (g *Game) Update(deltaTime float64) {
	if g.Phase != component.PhasePlaying {
		return
	}
	w := g.World
	w.Elapsed += deltaTime

	g.MovementSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.MobSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.LavaSystem.Update(deltaTime)
	g.AttackSystem.Update(deltaTime)
	g.ProgressionSystem.Update()

	// Смерть проверяется после истечения времени: если оба случились
	// в один кадр, побеждает смерть.
	if w.Elapsed >= config.LevelDurationSeconds {
		g.EventDispatcher.Dispatch(event.Event{Type: event.TimeExpired})
	}
	if w.Player.HP <= 0 {
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// ApplyLevelBonus applies the chosen level-up bonus and resumes the run.
func (g *Game) ApplyLevelBonus(kind defs.BonusKind) {
	p := g.World.Player
	switch kind {
	case defs.BonusDamage:
		p.Damage += config.BonusDamageBase + float64(p.Level)*config.BonusDamagePerLv
		p.AttackRange += config.BonusRange
	case defs.BonusSpeed:
		p.Speed += config.BonusSpeed
	case defs.BonusMaxHP:
		p.HP += config.BonusHP
	}
	g.Phase = component.PhasePlaying
}

// GameEventListener переключает фазу игры по событиям симуляции.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerLeveledUp:
		l.game.Phase = component.PhaseLevelUp
		log.Printf("игрок взял уровень %v, ждем выбор бонуса", e.Data)
	case event.TimeExpired:
		l.game.Phase = component.PhaseWin
	case event.PlayerDied:
		l.game.Phase = component.PhaseDead
	}
}
