// internal/component/lava_pool.go
package component

// LavaPool — лужа лавы, оставленная мобом.
// Жжет игрока, пока тот находится внутри радиуса.
type LavaPool struct {
	X, Y     float64
	Radius   float64
	Duration float64 // оставшееся время жизни
	Age      float64 // сколько лужа уже существует
}
