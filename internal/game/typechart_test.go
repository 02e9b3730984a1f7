package game

import "testing"

func TestTypeChart_Multiplier(t *testing.T) {
	chart := TypeChart{
		"fire":  {"grass": 2, "water": 0.5},
		"water": {"rock": 2, "ground": 2},
	}
	if got := chart.Multiplier("fire", "grass"); got != 2 {
		t.Fatalf("fire vs grass = %v; want 2", got)
	}
	// Absent pairs default to neutral.
	if got := chart.Multiplier("fire", "normal"); got != 1 {
		t.Fatalf("fire vs normal = %v; want 1", got)
	}
	// Dual-type defenders multiply both lookups.
	if got := chart.MultiplierAgainst("water", []Type{"rock", "ground"}); got != 4 {
		t.Fatalf("water vs rock/ground = %v; want 4", got)
	}
}

func TestClassifyEffectiveness(t *testing.T) {
	cases := []struct {
		mult float64
		want string
	}{
		{0, EffectNone},
		{0.25, EffectNotVery},
		{0.5, EffectNotVery},
		{1, EffectNeutral},
		{2, EffectSuper},
		{4, EffectSuper},
	}
	for _, tc := range cases {
		if got := ClassifyEffectiveness(tc.mult); got != tc.want {
			t.Fatalf("ClassifyEffectiveness(%v) = %q; want %q", tc.mult, got, tc.want)
		}
	}
}
