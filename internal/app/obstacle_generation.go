// internal/app/obstacle_generation.go
package app

import (
	"sort"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/utils"
)

// GenerateObstacles расставляет препятствия по миру в два прохода:
// сначала по сетке со случайным смещением, потом добивает недостающие
// полностью случайными. В конце прореживает слишком плотные скопления.
func GenerateObstacles(rng *utils.PRNGService, count int) []component.Obstacle {
	xCells := int(config.WorldWidth / config.GridBias)
	if xCells < 4 {
		xCells = 4
	}
	yCells := int(config.WorldHeight / config.GridBias)
	if yCells < 4 {
		yCells = 4
	}

	type point struct {
		x, y float64
	}
	candidates := make([]point, 0, xCells*yCells)
	for gx := 0; gx < xCells; gx++ {
		for gy := 0; gy < yCells; gy++ {
			cx := (float64(gx)+0.5)*config.WorldWidth/float64(xCells) + rng.UniformRange(-config.GridBias/3, config.GridBias/3)
			cy := (float64(gy)+0.5)*config.WorldHeight/float64(yCells) + rng.UniformRange(-config.GridBias/3, config.GridBias/3)
			candidates = append(candidates, point{cx, cy})
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	// Центральная зона остается свободной, там появляется игрок.
	centerArea := utils.Rect{
		X: config.WorldWidth/2 - config.SpawnAreaWidth/2,
		Y: config.WorldHeight/2 - config.SpawnAreaHeight/2,
		W: config.SpawnAreaWidth,
		H: config.SpawnAreaHeight,
	}

	obstacles := make([]component.Obstacle, 0, count)
	tries := 0
	maxTries := len(candidates) * 6
	for _, c := range candidates {
		if len(obstacles) >= count || tries >= maxTries {
			break
		}
		w := float64(rng.IntRange(config.ObstacleMinWidth, config.ObstacleMaxWidth))
		h := float64(rng.IntRange(config.ObstacleMinHeight, config.ObstacleMaxHeight))
		rect := utils.Rect{
			X: utils.Clamp(c.x+float64(rng.IntRange(-config.GridBias/2, config.GridBias/2)), 0, config.WorldWidth-w),
			Y: utils.Clamp(c.y+float64(rng.IntRange(-config.GridBias/2, config.GridBias/2)), 0, config.WorldHeight-h),
			W: w,
			H: h,
		}
		tries++
		if !placeable(rect, centerArea, obstacles) {
			continue
		}
		obstacles = append(obstacles, component.Obstacle{Rect: rect, Kind: randomKind(rng)})
	}

	// Добор: бюджет попыток тратится и на удачные размещения тоже.
	extraTries := 0
	for len(obstacles) < count && extraTries < count*12 {
		extraTries++
		w := float64(rng.IntRange(config.ObstacleMinWidth, config.ExtraObstacleMaxWidth))
		h := float64(rng.IntRange(config.ObstacleMinHeight, config.ExtraObstacleMaxHeight))
		rect := utils.Rect{
			X: float64(rng.IntRange(0, int(config.WorldWidth-w))),
			Y: float64(rng.IntRange(0, int(config.WorldHeight-h))),
			W: w,
			H: h,
		}
		if !placeable(rect, centerArea, obstacles) {
			continue
		}
		obstacles = append(obstacles, component.Obstacle{Rect: rect, Kind: randomKind(rng)})
	}

	return limitClusters(obstacles)
}

// placeable проверяет кандидата против центральной зоны, соседей с
// отступом и плотности окружения. Зазор обеспечивается раздуванием
// самого кандидата, уже размещенные прямоугольники берутся как есть.
func placeable(rect, centerArea utils.Rect, obstacles []component.Obstacle) bool {
	if rect.Overlaps(centerArea) {
		return false
	}
	padded := rect.Inflated(config.ObstacleSafetyMargin)
	for _, o := range obstacles {
		if padded.Overlaps(o.Rect) {
			return false
		}
	}
	nearby := 0
	for _, o := range obstacles {
		if utils.Distance(rect.CenterX(), rect.CenterY(), o.Rect.CenterX(), o.Rect.CenterY()) < config.NearRadius {
			nearby++
			if nearby >= config.MaxNearbyObstacles {
				return false
			}
		}
	}
	return true
}

func randomKind(rng *utils.PRNGService) defs.ObstacleKind {
	return defs.ObstacleKinds[rng.Intn(len(defs.ObstacleKinds))]
}

// limitClusters прореживает группы соседних препятствий: в каждой
// компоненте связности оставляет не больше MaxNearbyObstacles штук,
// убирая самые связанные.
func limitClusters(obstacles []component.Obstacle) []component.Obstacle {
	n := len(obstacles)
	if n == 0 {
		return obstacles
	}

	adjacency := make([][]int, n)
	uf := utils.NewUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := utils.Distance(
				obstacles[i].Rect.CenterX(), obstacles[i].Rect.CenterY(),
				obstacles[j].Rect.CenterX(), obstacles[j].Rect.CenterY(),
			)
			if d < config.NearRadius {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
				uf.Union(i, j)
			}
		}
	}

	components := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := uf.Find(i)
		components[root] = append(components[root], i)
	}

	toRemove := make(map[int]bool)
	for _, comp := range components {
		if len(comp) <= config.MaxNearbyObstacles {
			continue
		}
		sort.Slice(comp, func(a, b int) bool {
			da, db := len(adjacency[comp[a]]), len(adjacency[comp[b]])
			if da != db {
				return da > db
			}
			return comp[a] < comp[b]
		})
		for _, idx := range comp[:len(comp)-config.MaxNearbyObstacles] {
			toRemove[idx] = true
		}
	}

	if len(toRemove) == 0 {
		return obstacles
	}
	kept := make([]component.Obstacle, 0, n-len(toRemove))
	for i, o := range obstacles {
		if !toRemove[i] {
			kept = append(kept, o)
		}
	}
	return kept
}
