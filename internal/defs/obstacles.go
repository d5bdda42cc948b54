// internal/defs/obstacles.go
package defs

// ObstacleKind is a cosmetic tag deciding how an obstacle is drawn.
type ObstacleKind int

const (
	ObstacleTree ObstacleKind = iota
	ObstacleRock
	ObstacleHouse
	ObstacleWater
	ObstacleHay
)

// ObstacleKinds lists every kind for random selection during world generation.
var ObstacleKinds = []ObstacleKind{ObstacleTree, ObstacleRock, ObstacleHouse, ObstacleWater, ObstacleHay}
