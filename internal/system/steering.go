// internal/system/steering.go
package system

import (
	"math"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/utils"
)

// Пробные углы отклонения от желаемого направления. Перебираются по порядку,
// берется первый незаблокированный шаг.
var (
	meleeSteerAngles    = []float64{0, rad(30), rad(-30), rad(60), rad(-60), rad(100), rad(-100)}
	approachSteerAngles = []float64{0, rad(25), rad(-25), rad(50), rad(-50)}
	retreatSteerAngles  = []float64{0, rad(25), rad(-25)}
)

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// blockedByObstacle сообщает, упирается ли окружность в какое-то препятствие.
func blockedByObstacle(obstacles []component.Obstacle, x, y, radius float64) bool {
	for _, o := range obstacles {
		if utils.CircleRectCollision(x, y, radius, o.Rect) {
			return true
		}
	}
	return false
}

// tryStep возвращает позицию после шага вдоль единичного вектора (dirX, dirY),
// если шаг не упирается в препятствие.
func tryStep(obstacles []component.Obstacle, x, y, dirX, dirY, step, radius float64) (float64, float64, bool) {
	nx := x + dirX*step
	ny := y + dirY*step
	if blockedByObstacle(obstacles, nx, ny, radius) {
		return 0, 0, false
	}
	return nx, ny, true
}

// steerStep перебирает углы отклонения вокруг желаемого направления и делает
// первый незаблокированный шаг. Это жадный локальный обход, а не поиск пути:
// если все углы заблокированы, сущность стоит на месте этот кадр.
func steerStep(obstacles []component.Obstacle, x, y, dirX, dirY, step, radius float64, angles []float64) (float64, float64, bool) {
	for _, ang := range angles {
		dx, dy := utils.RotateVector(dirX, dirY, ang)
		if nx, ny, ok := tryStep(obstacles, x, y, dx, dy, step, radius); ok {
			nx = utils.Clamp(nx, 0, config.WorldWidth)
			ny = utils.Clamp(ny, 0, config.WorldHeight)
			return nx, ny, true
		}
	}
	return x, y, false
}
