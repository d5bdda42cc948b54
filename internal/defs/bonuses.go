// internal/defs/bonuses.go
package defs

// BonusKind identifies one of the level-up bonus choices.
type BonusKind int

const (
	BonusDamage BonusKind = iota // damage plus a bit of range
	BonusSpeed                   // movement speed
	BonusMaxHP                   // flat hit points
)

// BonusOrder fixes the order bonuses appear in the level-up menu.
var BonusOrder = []BonusKind{BonusDamage, BonusSpeed, BonusMaxHP}
