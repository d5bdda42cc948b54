package defs

// MobKind определяет вид моба и его поведение.
type MobKind int

const (
	MobMelee   MobKind = iota // идет на игрока и бьет при контакте
	MobShooter                // держит дистанцию и стреляет
	MobLava                   // бродит и оставляет лавовые лужи
)

// SpawnWeight — одна запись в таблице спавна.
// Weight задает относительный шанс выбора этого вида.
type SpawnWeight struct {
	Kind   MobKind
	Weight int
}

// MobSpawnTable определяет распределение видов мобов при спавне.
var MobSpawnTable = []SpawnWeight{
	{Kind: MobMelee, Weight: 60},
	{Kind: MobShooter, Weight: 25},
	{Kind: MobLava, Weight: 15},
}
