package utils

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{15.2, 15},
		{14.8, 15},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}

	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 10, 20); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := Clamp(25, 10, 20); got != 20 {
		t.Errorf("expected 20, got %d", got)
	}
	if got := Clamp(15, 10, 20); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}
