package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{13.0, 13.00},
		{13.016, 13.02},
		{13.014, 13.01},
		{-4.0, -4.00},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(13.0); got != "13.00" {
		t.Fatalf("FormatMoney(13.0) = %q", got)
	}
	if got := FormatMoney(-4.0); got != "-4.00" {
		t.Fatalf("FormatMoney(-4.0) = %q", got)
	}
}
