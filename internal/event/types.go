// internal/event/types.go
package event

const (
	MobKilled       EventType = "MobKilled"       // моб уничтожен, Data — его ID
	PlayerLeveledUp EventType = "PlayerLeveledUp" // игрок взял уровень, Data — новый уровень
	PlayerDied      EventType = "PlayerDied"      // здоровье игрока закончилось
	TimeExpired     EventType = "TimeExpired"     // время уровня вышло
)
