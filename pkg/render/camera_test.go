package render

import "testing"

func TestCameraFollowCenters(t *testing.T) {
	c := &Camera{}
	c.Follow(1200, 900)
	if c.X != 800 || c.Y != 600 {
		t.Errorf("Expected the camera at (800, 600), got (%f, %f)", c.X, c.Y)
	}
}

func TestCameraFollowClampsToWorld(t *testing.T) {
	c := &Camera{}
	c.Follow(100, 50)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected the clamp at the origin, got (%f, %f)", c.X, c.Y)
	}
	c.Follow(2390, 1790)
	if c.X != 1600 || c.Y != 1200 {
		t.Errorf("Expected the clamp at the far corner, got (%f, %f)", c.X, c.Y)
	}
}

func TestWorldToScreen(t *testing.T) {
	c := &Camera{X: 100, Y: 50}
	sx, sy := c.WorldToScreen(130, 80)
	if sx != 30 || sy != 30 {
		t.Errorf("Expected (30, 30), got (%f, %f)", sx, sy)
	}
}
