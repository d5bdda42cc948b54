// internal/defs/champions.go
package defs

// AttackType defines how a champion delivers damage.
type AttackType int

const (
	AttackProjectile AttackType = iota
	AttackMelee
)

// ChampionDefinition holds all the static data for a selectable champion.
type ChampionDefinition struct {
	ID        string
	Name      string
	Desc      string
	Attack    AttackType
	ProjSpeed float64 // скорость снаряда, 0 для ближнего боя
	Damage    float64
	Cooldown  float64 // пауза между атаками в секундах
	Range     float64
}

// ChampionLibrary is the library of all champion definitions, mapped by their ID.
var ChampionLibrary = map[string]ChampionDefinition{
	"CHAMP_MAGE": {
		ID:        "CHAMP_MAGE",
		Name:      "Mage",
		Desc:      "Shoots fireballs (medium speed, high damage).",
		Attack:    AttackProjectile,
		ProjSpeed: 420,
		Damage:    28,
		Cooldown:  0.7,
		Range:     520,
	},
	"CHAMP_ROGUE": {
		ID:        "CHAMP_ROGUE",
		Name:      "Rogue",
		Desc:      "Fires fast arrows (low damage, fast rate).",
		Attack:    AttackProjectile,
		ProjSpeed: 650,
		Damage:    14,
		Cooldown:  0.35,
		Range:     620,
	},
	"CHAMP_KNIGHT": {
		ID:        "CHAMP_KNIGHT",
		Name:      "Knight",
		Desc:      "Short-range melee sword (high damage).",
		Attack:    AttackMelee,
		ProjSpeed: 0,
		Damage:    36,
		Cooldown:  0.5,
		Range:     56,
	},
}

// ChampionOrder fixes the order champions appear in the selection menu.
var ChampionOrder = []string{"CHAMP_MAGE", "CHAMP_ROGUE", "CHAMP_KNIGHT"}
