// pkg/render/camera.go
package render

import (
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/utils"
)

// Camera is the top-left corner of the visible window in world coordinates.
type Camera struct {
	X, Y float64
}

// Follow centers the camera on the target, constrained to the world bounds.
func (c *Camera) Follow(targetX, targetY float64) {
	c.X = utils.Clamp(targetX-config.ScreenWidth/2, 0, config.WorldWidth-config.ScreenWidth)
	c.Y = utils.Clamp(targetY-config.ScreenHeight/2, 0, config.WorldHeight-config.ScreenHeight)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(x, y float64) (float32, float32) {
	return float32(x - c.X), float32(y - c.Y)
}
