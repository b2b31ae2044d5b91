package utils

import "testing"

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"exact", 2400, 2400},
		{"half goes up", 2.5, 3},
		{"below half goes down", 3884.4, 3884},
		{"above half goes up", 118.5, 119},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoundHalfUp(tc.amount); got != tc.want {
				t.Errorf("RoundHalfUp(%v) = %v, want %v", tc.amount, got, tc.want)
			}
		})
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		total float64
		n     int
		want  float64
	}{
		{1000, 3, 334},
		{1000, 4, 250},
		{1, 2, 1},
		{0, 5, 0},
	}

	for _, tc := range cases {
		if got := CeilDiv(tc.total, tc.n); got != tc.want {
			t.Errorf("CeilDiv(%v, %d) = %v, want %v", tc.total, tc.n, got, tc.want)
		}
	}
}

func TestValidOccupancyRate(t *testing.T) {
	for _, rate := range []float64{0, 0.5, 1} {
		if !ValidOccupancyRate(rate) {
			t.Errorf("ValidOccupancyRate(%v) = false, want true", rate)
		}
	}
	for _, rate := range []float64{-0.01, 1.01, 2} {
		if ValidOccupancyRate(rate) {
			t.Errorf("ValidOccupancyRate(%v) = true, want false", rate)
		}
	}
}
