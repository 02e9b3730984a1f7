package engine

import "testing"

func TestScaleHP(t *testing.T) {
	// floor(2*45*50/100 + 50 + 10) == 105
	if got := ScaleHP(45, 50); got != 105 {
		t.Fatalf("ScaleHP(45, 50) = %d; want 105", got)
	}
	if got := ScaleHP(1, 1); got != 11 {
		t.Fatalf("ScaleHP(1, 1) = %d; want 11", got)
	}
}

func TestScaleStat(t *testing.T) {
	// floor(2*65*50/100 + 5) == 70
	if got := ScaleStat(65, 50); got != 70 {
		t.Fatalf("ScaleStat(65, 50) = %d; want 70", got)
	}
	// Minimum inputs still yield a positive stat, so defense is never zero.
	if got := ScaleStat(1, 1); got < 1 {
		t.Fatalf("ScaleStat(1, 1) = %d; want >= 1", got)
	}
}
