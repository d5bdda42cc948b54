package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Expected 0 below the range, got %f", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Expected 5 inside the range, got %f", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Expected 10 above the range, got %f", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Expected distance 5, got %f", got)
	}
	if got := Distance(2, 2, 2, 2); got != 0 {
		t.Errorf("Expected distance 0 between equal points, got %f", got)
	}
}

func TestDirectionTo(t *testing.T) {
	dx, dy, dist := DirectionTo(0, 0, 3, 4)
	if dist != 5 {
		t.Fatalf("Expected distance 5, got %f", dist)
	}
	if math.Abs(dx-0.6) > 1e-12 || math.Abs(dy-0.8) > 1e-12 {
		t.Errorf("Expected unit vector (0.6, 0.8), got (%f, %f)", dx, dy)
	}
}

func TestDirectionToSamePoint(t *testing.T) {
	dx, dy, dist := DirectionTo(7, 7, 7, 7)
	if dx != 0 || dy != 0 {
		t.Errorf("Expected a zero direction for equal points, got (%f, %f)", dx, dy)
	}
	if dist != 1 {
		t.Errorf("Expected the distance fallback 1, got %f", dist)
	}
}

func TestRotateVector(t *testing.T) {
	x, y := RotateVector(1, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("Expected (0, 1) after a quarter turn, got (%f, %f)", x, y)
	}
	x, y = RotateVector(0, 1, -math.Pi/2)
	if math.Abs(x-1) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("Expected (1, 0) after a backward quarter turn, got (%f, %f)", x, y)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Errorf("Expected overlapping rects to report an overlap")
	}
	// Touching edges do not count as an overlap.
	if a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Errorf("Expected edge contact to not count as an overlap")
	}
	if a.Overlaps(Rect{X: 20, Y: 20, W: 5, H: 5}) {
		t.Errorf("Expected distant rects to not overlap")
	}
}

func TestRectInflated(t *testing.T) {
	got := Rect{X: 10, Y: 10, W: 20, H: 20}.Inflated(5)
	want := Rect{X: 5, Y: 5, W: 30, H: 30}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	// Boundary points count as inside.
	if !r.ContainsPoint(0, 0) || !r.ContainsPoint(10, 10) || !r.ContainsPoint(5, 5) {
		t.Errorf("Expected boundary and interior points to be contained")
	}
	if r.ContainsPoint(10.1, 5) || r.ContainsPoint(5, -0.1) {
		t.Errorf("Expected outside points to be rejected")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("Expected center (25, 40), got (%f, %f)", r.CenterX(), r.CenterY())
	}
}

func TestCircleRectCollision(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !CircleRectCollision(5, 5, 1, r) {
		t.Errorf("Expected a hit with the center inside the rect")
	}
	if CircleRectCollision(30, 30, 5, r) {
		t.Errorf("Expected no hit far away from the rect")
	}
	// Tangent contact counts as a hit.
	if !CircleRectCollision(15, 5, 5, r) {
		t.Errorf("Expected tangent contact to count as a hit")
	}
	// Near a corner the diagonal distance decides.
	if CircleRectCollision(13, 13, 4, r) {
		t.Errorf("Expected no hit when the corner is out of reach")
	}
	if !CircleRectCollision(13, 13, 4.5, r) {
		t.Errorf("Expected a hit when the radius covers the corner")
	}
}
