package game

// Lane is one of the three fixed horizontal positions items fall through
// and the basket can occupy.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

// LaneCount is the number of lanes in the play area.
const LaneCount = 3

// String returns a human-readable name for the lane.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneCenter:
		return "center"
	case LaneRight:
		return "right"
	default:
		return "unknown"
	}
}

// Kind is the category of a falling item. It determines the score effect
// on catch and the special heart/bomb behavior.
type Kind int

const (
	KindApple Kind = iota
	KindOrange
	KindGrape
	KindHeart
	KindBomb
)

// String returns the kind's configuration name.
func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindOrange:
		return "orange"
	case KindGrape:
		return "grape"
	case KindHeart:
		return "heart"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// kindByName maps a spawn table entry name to a Kind. Unknown names fall
// back to apple so a hand-edited config degrades instead of crashing.
func kindByName(name string) Kind {
	switch name {
	case "apple":
		return KindApple
	case "orange":
		return KindOrange
	case "grape":
		return KindGrape
	case "heart":
		return KindHeart
	case "bomb":
		return KindBomb
	default:
		return KindApple
	}
}

// Handle is an opaque reference to a visual owned by the ItemPresenter.
// The engine never interprets it; the presenter owns the handle-to-visual
// mapping.
type Handle int64

// FallingItem is one active item in the play area. Kind, value and lane
// are fixed at spawn; only Y advances afterwards, monotonically, until
// the item is caught or leaves the play area.
type FallingItem struct {
	Kind   Kind
	Value  int // Score delta applied on catch
	Lane   Lane
	Y      float64 // Playfield pixels from the top
	Visual Handle
}
