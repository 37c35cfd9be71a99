package game

import (
	"math/rand"

	"github.com/tuigames/fruitcatch/internal/config"
)

// spawner draws lanes and kinds from a seeded uniform source using the
// ordered cumulative weight table from the configuration.
type spawner struct {
	rng     *rand.Rand
	entries []config.SpawnEntry
	total   float64
}

func newSpawner(seed int64, entries []config.SpawnEntry) *spawner {
	total := 0.0
	for _, e := range entries {
		total += e.Weight
	}
	return &spawner{
		rng:     rand.New(rand.NewSource(seed)),
		entries: entries,
		total:   total,
	}
}

// Reset reseeds the random source for a fresh run.
func (s *spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Draw picks a lane uniformly and a kind by a single weighted roll.
func (s *spawner) Draw() (Lane, Kind, int) {
	lane := Lane(s.rng.Intn(LaneCount))
	kind, value := s.kindFor(s.rng.Float64() * s.total)
	return lane, kind, value
}

// kindFor maps a roll in [0, total) onto the weight table. The last entry
// absorbs any floating point remainder.
func (s *spawner) kindFor(roll float64) (Kind, int) {
	acc := 0.0
	for i, e := range s.entries {
		acc += e.Weight
		if roll < acc || i == len(s.entries)-1 {
			return kindByName(e.Kind), e.Value
		}
	}
	return KindApple, 0 // Unreachable for a non-empty table
}

// SpawnInterval returns the seconds between spawns at the given level.
// The interval shrinks linearly with level and is floored so the spawn
// rate stays bounded.
func SpawnInterval(r config.RulesConfig, level int) float64 {
	iv := r.BaseSpawnInterval - float64(level)*r.SpawnIntervalStep
	if iv < r.MinSpawnInterval {
		iv = r.MinSpawnInterval
	}
	return iv
}

// FallSpeed returns the fall speed in playfield pixels per second at the
// given level.
func FallSpeed(r config.RulesConfig, level int) float64 {
	return r.BaseFallSpeed + float64(level)*r.FallSpeedStep
}

// LevelFor derives the difficulty tier from the score. A bomb penalty can
// push the score negative, so the result is clamped at 1.
func LevelFor(r config.RulesConfig, score int) int {
	step := r.LevelScoreStep
	if step <= 0 {
		step = 100
	}
	level := 1 + floorDiv(score, step)
	if level < 1 {
		level = 1
	}
	return level
}

// floorDiv rounds toward negative infinity, unlike Go's integer division
// which truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
