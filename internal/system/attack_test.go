package system

import (
	"testing"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
)

func TestAttackFiresAtNearestMob(t *testing.T) {
	w := newTestWorld()
	as := NewAttackSystem(w)
	p := w.Player
	p.Attack = defs.AttackProjectile
	p.ProjSpeed = 420
	p.Damage = 28
	p.Cooldown = 0.7
	p.AttackRange = 520

	// The far mob comes first in the slice to prove distance wins.
	far := &component.Mob{ID: 1, X: p.X + 400, Y: p.Y, HP: 30, Kind: defs.MobMelee}
	near := &component.Mob{ID: 2, X: p.X + 100, Y: p.Y, HP: 30, Kind: defs.MobMelee}
	w.Mobs = append(w.Mobs, far, near)
	as.Update(0.016)

	if len(w.Projectiles) != 1 {
		t.Fatalf("Expected one projectile, got %d", len(w.Projectiles))
	}
	proj := w.Projectiles[0]
	if proj.Owner != component.OwnerPlayer {
		t.Errorf("Expected a player-owned projectile, got %v", proj.Owner)
	}
	if proj.Damage != 28 {
		t.Errorf("Expected damage 28, got %f", proj.Damage)
	}
	if proj.VX != 420 || proj.VY != 0 {
		t.Errorf("Expected a shot at the nearest mob, velocity (%f, %f)", proj.VX, proj.VY)
	}
	if proj.TTL != config.ProjectileTTL {
		t.Errorf("Expected TTL %f, got %f", config.ProjectileTTL, proj.TTL)
	}
	if p.AttackTimer != p.Cooldown {
		t.Errorf("Expected the timer reset to %f, got %f", p.Cooldown, p.AttackTimer)
	}
}

func TestAttackHoldsFireOutOfRange(t *testing.T) {
	w := newTestWorld()
	as := NewAttackSystem(w)
	p := w.Player
	p.Attack = defs.AttackProjectile
	p.ProjSpeed = 420
	p.Cooldown = 0.7
	p.AttackRange = 520
	w.Mobs = append(w.Mobs, &component.Mob{ID: 1, X: p.X + 600, Y: p.Y, HP: 30, Kind: defs.MobMelee})
	as.Update(0.016)

	if len(w.Projectiles) != 0 {
		t.Fatalf("Expected no shot out of range, got %d", len(w.Projectiles))
	}
	// The timer keeps draining so the shot leaves the moment a target appears.
	if p.AttackTimer > 0 {
		t.Errorf("Expected the timer to stay ready, got %f", p.AttackTimer)
	}
}

func TestMeleeAttackHitsEveryMobInRange(t *testing.T) {
	w := newTestWorld()
	as := NewAttackSystem(w)
	p := w.Player
	p.Attack = defs.AttackMelee
	p.Damage = 36
	p.Cooldown = 0.5
	p.AttackRange = 56

	left := &component.Mob{ID: 1, X: p.X - 40, Y: p.Y, HP: 100, Kind: defs.MobMelee}
	right := &component.Mob{ID: 2, X: p.X + 60, Y: p.Y, HP: 100, Kind: defs.MobMelee}
	far := &component.Mob{ID: 3, X: p.X + 200, Y: p.Y, HP: 100, Kind: defs.MobMelee}
	w.Mobs = append(w.Mobs, left, right, far)
	as.Update(0.016)

	if left.HP != 64 || right.HP != 64 {
		t.Errorf("Expected both close mobs hit for 36, got %f and %f", left.HP, right.HP)
	}
	if far.HP != 100 {
		t.Errorf("Expected the far mob untouched, got %f", far.HP)
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("Expected no projectiles from a sword swing, got %d", len(w.Projectiles))
	}
	if p.AttackTimer != p.Cooldown {
		t.Errorf("Expected the timer reset after the swing, got %f", p.AttackTimer)
	}
}

func TestAttackRespectsCooldown(t *testing.T) {
	w := newTestWorld()
	as := NewAttackSystem(w)
	p := w.Player
	p.Attack = defs.AttackProjectile
	p.ProjSpeed = 420
	p.Damage = 28
	p.Cooldown = 0.7
	p.AttackRange = 520
	w.Mobs = append(w.Mobs, &component.Mob{ID: 1, X: p.X + 100, Y: p.Y, HP: 1000, Kind: defs.MobMelee})

	as.Update(0.016)
	as.Update(0.016)
	if len(w.Projectiles) != 1 {
		t.Errorf("Expected a single shot within one cooldown, got %d", len(w.Projectiles))
	}
}
