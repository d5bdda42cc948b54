package component

import (
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/utils"
)

// Obstacle — непроходимый прямоугольник на карте.
// Неизменяем после генерации мира.
type Obstacle struct {
	Rect utils.Rect
	Kind defs.ObstacleKind // влияет только на отрисовку
}
