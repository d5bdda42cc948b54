// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/entity"
	"go-cartoon-survivor/internal/utils"
)

const (
	gridLineWidth = 1

	mobBarWidth   = 28
	mobBarHeight  = 6
	mobBarRise    = 10 // gap between the mob top and its health bar
	minHealthFrac = 0.05

	maxRingRadius = 300 // projectile range rings are capped to stay on screen

	lavaBaseAlpha = 160
	lavaMinFade   = 0.2 // pools never fade below this visibility
)

// WorldRenderer draws the world seen through its camera. The draw order
// is fixed: ground grid, obstacles, lava pools, mobs, player, projectiles.
type WorldRenderer struct {
	camera *Camera
}

// NewWorldRenderer creates a renderer with a fresh camera.
func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{camera: &Camera{}}
}

// Draw renders a full world frame onto the screen.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World) {
	screen.Fill(config.BackgroundColor)
	r.camera.Follow(w.Player.X, w.Player.Y)

	r.drawGrid(screen)
	r.drawObstacles(screen, w.Obstacles)
	r.drawLavaPools(screen, w.LavaPools)
	r.drawMobs(screen, w)
	r.drawPlayer(screen, w.Player)
	r.drawProjectiles(screen, w.Projectiles)
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	for gx := 0.0; gx < config.WorldWidth; gx += config.GridBias {
		sx, _ := r.camera.WorldToScreen(gx, 0)
		vector.StrokeLine(screen, sx, 0, sx, config.ScreenHeight, gridLineWidth, config.GridColor, true)
	}
	for gy := 0.0; gy < config.WorldHeight; gy += config.GridBias {
		_, sy := r.camera.WorldToScreen(0, gy)
		vector.StrokeLine(screen, 0, sy, config.ScreenWidth, sy, gridLineWidth, config.GridColor, true)
	}
}

func (r *WorldRenderer) drawObstacles(screen *ebiten.Image, obstacles []component.Obstacle) {
	for _, o := range obstacles {
		sx, sy := r.camera.WorldToScreen(o.Rect.X, o.Rect.Y)
		vector.DrawFilledRect(screen, sx, sy, float32(o.Rect.W), float32(o.Rect.H), obstacleColor(o.Kind), true)
	}
}

func obstacleColor(kind defs.ObstacleKind) color.RGBA {
	switch kind {
	case defs.ObstacleTree:
		return config.TreeColor
	case defs.ObstacleRock:
		return config.RockColor
	case defs.ObstacleHouse:
		return config.HouseColor
	case defs.ObstacleWater:
		return config.WaterColor
	default:
		return config.HayColor
	}
}

func (r *WorldRenderer) drawLavaPools(screen *ebiten.Image, pools []*component.LavaPool) {
	for _, pool := range pools {
		sx, sy := r.camera.WorldToScreen(pool.X, pool.Y)
		frac := pool.Duration / config.LavaPoolDuration
		if frac < lavaMinFade {
			frac = lavaMinFade
		}
		clr := FadeColor(config.LavaColor, uint8(lavaBaseAlpha*frac))
		vector.DrawFilledCircle(screen, sx, sy, float32(pool.Radius), clr, true)
	}
}

func (r *WorldRenderer) drawMobs(screen *ebiten.Image, w *entity.World) {
	maxHP := config.MobBaseHP + config.MobHPPerMinute*float64(w.Minute())
	for _, m := range w.Mobs {
		sx, sy := r.camera.WorldToScreen(m.X, m.Y)
		frac := utils.Clamp(m.HP/maxHP, minHealthFrac, 1)
		vector.DrawFilledCircle(screen, sx, sy, config.MobRadius, HealthColor(frac), true)

		barX := sx - mobBarWidth/2
		barY := sy - config.MobRadius - mobBarRise
		vector.DrawFilledRect(screen, barX, barY, mobBarWidth, mobBarHeight, config.HPBarBackColor, true)
		vector.DrawFilledRect(screen, barX, barY, float32(mobBarWidth*frac), mobBarHeight, config.HPBarFillColor, true)
	}
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, p *component.Player) {
	px, py := r.camera.WorldToScreen(p.X, p.Y)
	vector.DrawFilledCircle(screen, px, py, config.PlayerRadius, config.PlayerColor, true)

	// The range ring: melee champions show it all the time, projectile
	// champions only while the attack is ready.
	if p.Attack == defs.AttackMelee {
		vector.StrokeCircle(screen, px, py, float32(p.AttackRange), 2, config.RangeRingColor, true)
		return
	}
	if p.AttackTimer <= 0 {
		radius := p.AttackRange
		if radius > maxRingRadius {
			radius = maxRingRadius
		}
		vector.StrokeCircle(screen, px, py, float32(radius), 1, config.RangeRingColor, true)
	}
}

func (r *WorldRenderer) drawProjectiles(screen *ebiten.Image, projectiles []*component.Projectile) {
	for _, pr := range projectiles {
		sx, sy := r.camera.WorldToScreen(pr.X, pr.Y)
		clr := config.PlayerProjColor
		if pr.Owner == component.OwnerMob {
			clr = config.MobProjColor
		}
		vector.DrawFilledCircle(screen, sx, sy, config.ProjectileDrawRadius, clr, true)
	}
}
