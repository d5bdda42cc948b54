// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WorldWidth   = 2400.0
	WorldHeight  = 1800.0

	MaxDeltaTime = 0.06

	PlayerRadius    = 16.0
	PlayerBaseHP    = 100.0
	PlayerBaseSpeed = 250.0

	MobRadius      = 14.0
	LavaPoolRadius = 60.0

	LevelDurationSeconds = 10 * 60.0

	// Препятствия
	ObstacleCount        = 80
	NearRadius           = 120.0 // радиус, в котором препятствия считаются "соседними"
	MaxNearbyObstacles   = 2     // максимальный размер кластера препятствий
	GridBias             = 200.0 // шаг сетки для равномерного распределения
	ObstacleSafetyMargin = 8.0   // дополнительный зазор при проверке пересечений

	ObstacleMinWidth  = 40
	ObstacleMaxWidth  = 160
	ObstacleMinHeight = 40
	ObstacleMaxHeight = 140
	// Размеры при случайной дорисовке до целевого количества
	ExtraObstacleMaxWidth  = 140
	ExtraObstacleMaxHeight = 120

	// Запретная зона для препятствий вокруг точки появления игрока
	SpawnAreaWidth  = 800.0
	SpawnAreaHeight = 600.0

	// Спавн мобов
	BaseSpawnInterval   = 1.7
	MinSpawnInterval    = 0.4
	SpawnIntervalPerMin = 0.12 // на сколько сокращается интервал за минуту
	MobSafeDistance     = 300.0
	// Бюджеты попыток перед случайным запасным размещением
	SpawnPlayerTries   = 300
	SpawnObstacleTries = 500

	MobBaseHP         = 22.0
	MobHPPerMinute    = 15.0
	MobHPJitterMin    = -4.0
	MobHPJitterMax    = 6.0
	MobBaseSpeed      = 55.0
	MobSpeedPerMin    = 8.0
	MobSpeedJitterMin = -8.0
	MobSpeedJitterMax = 8.0
	MobCooldownMin    = 0.8
	MobCooldownMax    = 2.2
	MeleeContactDPS   = 12.0

	// Стрелок
	ShooterStandoff      = 380.0
	ShooterRetreatBuffer = 60.0
	ShooterFireRange     = 700.0
	ShooterProjSpeed     = 420.0
	ShooterBaseDamage    = 18.0
	ShooterDamagePerMin  = 2.0
	ShooterCooldownMin   = 1.2
	ShooterCooldownMax   = 2.0

	// Лавовый моб
	LavaWanderFactor     = 0.25
	LavaPoolDuration     = 6.0
	LavaPoolDurJitterMin = -1.0 // длительность лужи = 6 + U(-1, 2)
	LavaPoolDurJitterMax = 2.0
	LavaDropCooldown     = 4.0
	LavaDropCdJitterMax  = 3.0 // пауза между лужами = 4 + U(0, 3)
	LavaPoolDPS          = 28.0

	// Снаряды
	ProjectileTTL            = 6.0
	ProjectileObstacleRadius = 4.0 // радиус при проверке столкновения с препятствием
	ProjectileHitPadding     = 6.0 // запас при попадании в сущность
	ProjectileDrawRadius     = 5.0

	// Прокачка
	XPPerLevel       = 5 // порог уровня: level * XPPerLevel
	BonusDamageBase  = 8.0
	BonusDamagePerLv = 2.0
	BonusRange       = 10.0
	BonusSpeed       = 40.0
	BonusHP          = 40.0

	HUDMargin = 8
)

var (
	BackgroundColor = color.RGBA{90, 160, 110, 255}
	GridColor       = color.RGBA{80, 130, 90, 255}

	TreeColor  = color.RGBA{40, 90, 30, 255}
	RockColor  = color.RGBA{110, 110, 110, 255}
	HouseColor = color.RGBA{150, 100, 70, 255}
	WaterColor = color.RGBA{30, 80, 140, 255}
	HayColor   = color.RGBA{210, 200, 80, 255}

	// Базовый цвет лужи, прозрачность считается от оставшейся длительности
	LavaColor = color.RGBA{255, 120, 30, 255}

	PlayerColor     = color.RGBA{40, 110, 230, 255}
	RangeRingColor  = color.RGBA{255, 255, 200, 255}
	PlayerProjColor = color.RGBA{230, 140, 40, 255}
	MobProjColor    = color.RGBA{40, 40, 40, 255}

	HPBarBackColor = color.RGBA{30, 30, 30, 255}
	HPBarFillColor = color.RGBA{180, 60, 60, 255}

	MenuBackColor   = color.RGBA{30, 40, 70, 255}
	CardColor       = color.RGBA{20, 20, 30, 255}
	TitleColor      = color.RGBA{255, 220, 170, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextOptionColor = color.RGBA{230, 230, 230, 255}
	TextMutedColor  = color.RGBA{200, 200, 200, 255}
	TextHintColor   = color.RGBA{180, 180, 180, 255}
	TextDarkColor   = color.RGBA{20, 20, 20, 255}

	LevelUpOverlay = color.RGBA{10, 10, 20, 200}
	WinOverlay     = color.RGBA{0, 0, 0, 160}
	DeadOverlay    = color.RGBA{0, 0, 0, 200}
	WinTextColor   = color.RGBA{255, 220, 120, 255}
	DeadTextColor  = color.RGBA{255, 140, 140, 255}
	LevelUpTitle   = color.RGBA{255, 240, 180, 255}
)
