package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{name: "top-left corner", x: 2, y: 3, expected: true},
		{name: "interior point", x: 5, y: 5, expected: true},
		{name: "right edge exclusive", x: 12, y: 3, expected: false},
		{name: "bottom edge exclusive", x: 2, y: 8, expected: false},
		{name: "outside left", x: 1, y: 5, expected: false},
	}

	r := NewRect(2, 3, 10, 5)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, expected 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, expected 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(7, 0, 1); got != 1 {
		t.Errorf("ClampF(7, 0, 1) = %f, expected 1", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min should return the smaller value")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max should return the larger value")
	}
}

func TestLaneSignalString(t *testing.T) {
	cases := map[LaneSignal]string{
		SignalLeft:     "left",
		SignalCenter:   "center",
		SignalRight:    "right",
		SignalNone:     "none",
		LaneSignal(99): "none",
	}
	for sig, want := range cases {
		if got := sig.String(); got != want {
			t.Errorf("LaneSignal(%d).String() = %q, expected %q", sig, got, want)
		}
	}
}
