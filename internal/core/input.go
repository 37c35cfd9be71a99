package core

// LaneSignal is an already-classified discrete input delivered by the
// platform layer: a request to move the basket to an absolute lane.
// The simulation maps it onto a lane and ignores anything it does not
// recognize.
type LaneSignal int

const (
	SignalNone LaneSignal = iota
	SignalLeft
	SignalCenter
	SignalRight
)

// String returns a human-readable name for the signal.
func (s LaneSignal) String() string {
	switch s {
	case SignalLeft:
		return "left"
	case SignalCenter:
		return "center"
	case SignalRight:
		return "right"
	default:
		return "none"
	}
}
