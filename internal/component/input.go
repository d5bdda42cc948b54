// internal/component/input.go
package component

// InputIntent — намерение движения игрока, снятое с клавиатуры за кадр.
// Направления независимы и свободно комбинируются.
type InputIntent struct {
	Up, Down, Left, Right bool
}
