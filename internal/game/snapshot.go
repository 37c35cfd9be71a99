package game

// Snapshot captures the engine state for determinism tests and debugging.
type Snapshot struct {
	Ticks    uint64
	Score    int
	Life     int
	TimeLeft float64
	Level    int
	Lane     Lane
	Running  bool
	Items    int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Ticks:    e.ticks,
		Score:    e.score,
		Life:     e.life,
		TimeLeft: e.timeLeft,
		Level:    e.level,
		Lane:     e.lane,
		Running:  e.running,
		Items:    len(e.active),
	}
}
