package app

import (
	"testing"

	"go-cartoon-survivor/internal/component"
	"go-cartoon-survivor/internal/config"
	"go-cartoon-survivor/internal/defs"
	"go-cartoon-survivor/internal/utils"
)

func testCenterArea() utils.Rect {
	return utils.Rect{
		X: config.WorldWidth/2 - config.SpawnAreaWidth/2,
		Y: config.WorldHeight/2 - config.SpawnAreaHeight/2,
		W: config.SpawnAreaWidth,
		H: config.SpawnAreaHeight,
	}
}

func TestGenerateObstaclesInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		obstacles := GenerateObstacles(utils.NewPRNGService(seed), config.ObstacleCount)
		if len(obstacles) == 0 {
			t.Fatalf("Seed %d: expected obstacles, got none", seed)
		}
		if len(obstacles) > config.ObstacleCount {
			t.Fatalf("Seed %d: expected at most %d obstacles, got %d", seed, config.ObstacleCount, len(obstacles))
		}

		center := testCenterArea()
		for i, o := range obstacles {
			r := o.Rect
			if r.X < 0 || r.Y < 0 || r.X+r.W > config.WorldWidth || r.Y+r.H > config.WorldHeight {
				t.Errorf("Seed %d: obstacle %d out of world bounds: %+v", seed, i, r)
			}
			if r.Overlaps(center) {
				t.Errorf("Seed %d: obstacle %d intrudes into the spawn area: %+v", seed, i, r)
			}
		}
		for i := 0; i < len(obstacles); i++ {
			for j := i + 1; j < len(obstacles); j++ {
				if obstacles[i].Rect.Inflated(config.ObstacleSafetyMargin).Overlaps(obstacles[j].Rect) {
					t.Errorf("Seed %d: obstacles %d and %d closer than the safety margin", seed, i, j)
				}
			}
		}
	}
}

func TestGenerateObstaclesClusterLimit(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		obstacles := GenerateObstacles(utils.NewPRNGService(seed), config.ObstacleCount)
		for _, size := range componentSizes(obstacles) {
			if size > config.MaxNearbyObstacles {
				t.Errorf("Seed %d: cluster of %d obstacles, limit is %d", seed, size, config.MaxNearbyObstacles)
			}
		}
	}
}

// componentSizes groups obstacles by neighbor distance with a plain BFS,
// independent of the union-find used by the generator.
func componentSizes(obstacles []component.Obstacle) []int {
	n := len(obstacles)
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := utils.Distance(
				obstacles[i].Rect.CenterX(), obstacles[i].Rect.CenterY(),
				obstacles[j].Rect.CenterX(), obstacles[j].Rect.CenterY(),
			)
			if d < config.NearRadius {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var sizes []int
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		size := 0
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			size++
			for _, v := range adjacency[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

func TestGenerateObstaclesDeterministic(t *testing.T) {
	first := GenerateObstacles(utils.NewPRNGService(9), config.ObstacleCount)
	second := GenerateObstacles(utils.NewPRNGService(9), config.ObstacleCount)
	if len(first) != len(second) {
		t.Fatalf("Expected one layout per seed, got %d and %d obstacles", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Obstacle %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLimitClustersPrunesChain(t *testing.T) {
	// Four obstacles in a row, 100 apart: a single component of four.
	var obstacles []component.Obstacle
	for i := 0; i < 4; i++ {
		obstacles = append(obstacles, component.Obstacle{
			Rect: utils.Rect{X: float64(i)*100 - 5, Y: -5, W: 10, H: 10},
			Kind: defs.ObstacleTree,
		})
	}
	pruned := limitClusters(obstacles)
	if len(pruned) != config.MaxNearbyObstacles {
		t.Fatalf("Expected %d obstacles after pruning, got %d", config.MaxNearbyObstacles, len(pruned))
	}
	// The two middle ones have the highest degree and must be gone.
	if pruned[0].Rect.CenterX() != 0 || pruned[1].Rect.CenterX() != 300 {
		t.Errorf("Expected the chain ends to survive, got centers %f and %f",
			pruned[0].Rect.CenterX(), pruned[1].Rect.CenterX())
	}
}

func TestLimitClustersKeepsSparse(t *testing.T) {
	var obstacles []component.Obstacle
	for i := 0; i < 3; i++ {
		obstacles = append(obstacles, component.Obstacle{
			Rect: utils.Rect{X: float64(i) * 500, Y: 0, W: 10, H: 10},
			Kind: defs.ObstacleRock,
		})
	}
	if got := limitClusters(obstacles); len(got) != 3 {
		t.Errorf("Expected sparse obstacles untouched, got %d of 3", len(got))
	}
}

func TestPlaceableRejectsCenterArea(t *testing.T) {
	rect := utils.Rect{X: config.WorldWidth / 2, Y: config.WorldHeight / 2, W: 50, H: 50}
	if placeable(rect, testCenterArea(), nil) {
		t.Errorf("Expected rejection inside the spawn area")
	}
}

func TestPlaceableHonorsSafetyMargin(t *testing.T) {
	existing := []component.Obstacle{
		{Rect: utils.Rect{X: 100, Y: 100, W: 50, H: 50}, Kind: defs.ObstacleTree},
	}
	// A 5px gap sits inside the safety margin.
	tight := utils.Rect{X: 155, Y: 100, W: 50, H: 50}
	if placeable(tight, testCenterArea(), existing) {
		t.Errorf("Expected rejection within the safety margin")
	}
	// A 20px gap clears it.
	clear := utils.Rect{X: 170, Y: 100, W: 50, H: 50}
	if !placeable(clear, testCenterArea(), existing) {
		t.Errorf("Expected placement with a clear gap")
	}
}

func TestPlaceableRejectsDenseNeighborhood(t *testing.T) {
	existing := []component.Obstacle{
		{Rect: utils.Rect{X: 0, Y: 0, W: 20, H: 20}},
		{Rect: utils.Rect{X: 60, Y: 0, W: 20, H: 20}},
	}
	// The candidate's center is within the neighbor radius of both.
	rect := utils.Rect{X: 30, Y: 60, W: 20, H: 20}
	if placeable(rect, testCenterArea(), existing) {
		t.Errorf("Expected rejection next to two close neighbors")
	}
}
