// internal/component/projectile.go
package component

// ProjectileOwner отмечает, кто выпустил снаряд.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerMob
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
	Damage float64
	Owner  ProjectileOwner
	TTL    float64 // оставшееся время жизни в секундах
}
