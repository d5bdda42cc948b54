// internal/utils/geom.go
package utils

import "math"

// Rect — прямоугольник с вещественными координатами: левый верхний угол и размеры.
type Rect struct {
	X, Y, W, H float64
}

// CenterX возвращает x-координату центра прямоугольника.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY возвращает y-координату центра прямоугольника.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Inflated возвращает копию прямоугольника, расширенную на m с каждой стороны.
// Отрицательное значение сжимает прямоугольник.
func (r Rect) Inflated(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Overlaps сообщает, пересекаются ли два прямоугольника.
// Касание границами пересечением не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ContainsPoint сообщает, лежит ли точка внутри прямоугольника.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Clamp ограничивает значение отрезком [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// DirectionTo возвращает единичный вектор от точки (ax, ay) к точке (bx, by)
// и дистанцию между ними. Для совпадающих точек дистанция считается равной 1,
// чтобы не делить на ноль: направление в этом случае нулевое.
func DirectionTo(ax, ay, bx, by float64) (dx, dy, dist float64) {
	dx, dy = bx-ax, by-ay
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return dx / dist, dy / dist, dist
}

// RotateVector поворачивает вектор (x, y) на угол angle в радианах.
func RotateVector(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// CircleRectCollision проверяет пересечение окружности с прямоугольником
// через ближайшую к центру окружности точку прямоугольника.
func CircleRectCollision(cx, cy, radius float64, r Rect) bool {
	nearestX := Clamp(cx, r.X, r.X+r.W)
	nearestY := Clamp(cy, r.Y, r.Y+r.H)
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= radius*radius
}
