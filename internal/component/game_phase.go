package component

// GamePhase — фаза игрового цикла внутри забега
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseLevelUp
	PhaseWin
	PhaseDead
)
