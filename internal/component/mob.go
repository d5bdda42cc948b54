package component

import "go-cartoon-survivor/internal/defs"

// Mob представляет вражескую сущность.
type Mob struct {
	ID       int
	X, Y     float64
	HP       float64
	Speed    float64
	Kind     defs.MobKind
	Cooldown float64 // таймер до следующего выстрела или лужи
}
