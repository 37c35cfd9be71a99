package game

import (
	"math"
	"testing"

	"github.com/tuigames/fruitcatch/internal/config"
)

func TestSpawnIntervalCurve(t *testing.T) {
	rules := config.Default().Rules

	if got := SpawnInterval(rules, 1); math.Abs(got-1.1) > 1e-9 {
		t.Errorf("SpawnInterval(level 1) = %v, expected 1.1", got)
	}

	prev := math.Inf(1)
	for level := 1; level <= 30; level++ {
		iv := SpawnInterval(rules, level)
		if iv > prev {
			t.Fatalf("SpawnInterval must be non-increasing, level %d: %v > %v", level, iv, prev)
		}
		if iv < rules.MinSpawnInterval {
			t.Fatalf("SpawnInterval(level %d) = %v, below the %v floor", level, iv, rules.MinSpawnInterval)
		}
		prev = iv
	}

	if got := SpawnInterval(rules, 100); got != rules.MinSpawnInterval {
		t.Errorf("SpawnInterval at high level = %v, expected the floor %v", got, rules.MinSpawnInterval)
	}
}

func TestFallSpeedCurve(t *testing.T) {
	rules := config.Default().Rules

	if got := FallSpeed(rules, 1); got != 120 {
		t.Errorf("FallSpeed(level 1) = %v, expected 120", got)
	}

	prev := 0.0
	for level := 1; level <= 30; level++ {
		speed := FallSpeed(rules, level)
		if speed <= prev {
			t.Fatalf("FallSpeed must be strictly increasing, level %d: %v <= %v", level, speed, prev)
		}
		prev = speed
	}
}

func TestLevelFor(t *testing.T) {
	rules := config.Default().Rules

	tests := []struct {
		score int
		want  int
	}{
		{score: 0, want: 1},
		{score: 99, want: 1},
		{score: 100, want: 2},
		{score: 120, want: 2},
		{score: 250, want: 3},
		{score: -10, want: 1},
		{score: -250, want: 1},
	}

	for _, tc := range tests {
		if got := LevelFor(rules, tc.score); got != tc.want {
			t.Errorf("LevelFor(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{120, 100, 1},
		{-10, 100, -1},
		{-100, 100, -1},
		{-101, 100, -2},
		{99, 100, 0},
		{0, 100, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestKindForRollBoundaries(t *testing.T) {
	s := newSpawner(1, config.Default().Spawn)

	tests := []struct {
		roll float64
		want Kind
	}{
		{roll: 0.0, want: KindHeart},
		{roll: 0.049, want: KindHeart},
		{roll: 0.05, want: KindBomb},
		{roll: 0.249, want: KindBomb},
		{roll: 0.25, want: KindOrange},
		{roll: 0.499, want: KindOrange},
		{roll: 0.5, want: KindGrape},
		{roll: 0.699, want: KindGrape},
		{roll: 0.7, want: KindApple},
		{roll: 0.999, want: KindApple},
	}

	for _, tc := range tests {
		kind, _ := s.kindFor(tc.roll)
		if kind != tc.want {
			t.Errorf("kindFor(%v) = %v, expected %v", tc.roll, kind, tc.want)
		}
	}
}

func TestKindValues(t *testing.T) {
	s := newSpawner(1, config.Default().Spawn)

	wantValues := map[Kind]int{
		KindHeart:  0,
		KindBomb:   -50,
		KindOrange: 30,
		KindGrape:  20,
		KindApple:  10,
	}

	for _, roll := range []float64{0.0, 0.1, 0.3, 0.6, 0.9} {
		kind, value := s.kindFor(roll)
		if want := wantValues[kind]; value != want {
			t.Errorf("kindFor(%v): %v has value %d, expected %d", roll, kind, value, want)
		}
	}
}

func TestDrawProducesValidItems(t *testing.T) {
	s := newSpawner(7, config.Default().Spawn)

	seenLanes := make(map[Lane]bool)
	seenKinds := make(map[Kind]bool)

	for i := 0; i < 2000; i++ {
		lane, kind, _ := s.Draw()
		if lane < LaneLeft || lane > LaneRight {
			t.Fatalf("Draw returned invalid lane %d", lane)
		}
		if kind < KindApple || kind > KindBomb {
			t.Fatalf("Draw returned invalid kind %d", kind)
		}
		seenLanes[lane] = true
		seenKinds[kind] = true
	}

	// With 2000 draws every lane and kind shows up, including the 5% heart.
	if len(seenLanes) != LaneCount {
		t.Errorf("saw %d lanes, expected %d", len(seenLanes), LaneCount)
	}
	if len(seenKinds) != 5 {
		t.Errorf("saw %d kinds, expected 5", len(seenKinds))
	}
}

func TestSpawnerReset(t *testing.T) {
	s1 := newSpawner(9, config.Default().Spawn)
	var first []Kind
	for i := 0; i < 20; i++ {
		_, k, _ := s1.Draw()
		first = append(first, k)
	}

	s1.Reset(9)
	for i := 0; i < 20; i++ {
		_, k, _ := s1.Draw()
		if k != first[i] {
			t.Fatalf("draw %d after Reset = %v, expected %v", i, k, first[i])
		}
	}
}

func TestKindByName(t *testing.T) {
	for _, k := range []Kind{KindApple, KindOrange, KindGrape, KindHeart, KindBomb} {
		if got := kindByName(k.String()); got != k {
			t.Errorf("kindByName(%q) = %v, expected %v", k.String(), got, k)
		}
	}
	if got := kindByName("durian"); got != KindApple {
		t.Errorf("unknown names fall back to apple, got %v", got)
	}
}
