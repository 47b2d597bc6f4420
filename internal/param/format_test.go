package param

import "testing"

func TestFormatFrequency(t *testing.T) {
	cases := []struct {
		hz   float64
		want string
	}{
		{20, "20.0 Hz"},
		{640, "640.0 Hz"},
		{999.94, "999.9 Hz"},
		{1000, "1.00 kHz"},
		{20480, "20.48 kHz"},
	}
	for _, c := range cases {
		if got := FormatFrequency(c.hz); got != c.want {
			t.Fatalf("FormatFrequency(%v) = %q, want %q", c.hz, got, c.want)
		}
	}
}

func TestFormatDecibel(t *testing.T) {
	cases := []struct {
		db   float64
		want string
	}{
		{0, "0.0 dB"},
		{0.04, "0.0 dB"},
		{3, "+3.0 dB"},
		{-12, "-12.0 dB"},
		{0.5, "+0.5 dB"},
	}
	for _, c := range cases {
		if got := FormatDecibel(c.db); got != c.want {
			t.Fatalf("FormatDecibel(%v) = %q, want %q", c.db, got, c.want)
		}
	}
}

func TestFormatBipolar(t *testing.T) {
	if got := FormatBipolar(-0.5); got != "-0.50" {
		t.Fatalf("FormatBipolar(-0.5) = %q", got)
	}
	if got := FormatBipolar(0.5); got != "+0.50" {
		t.Fatalf("FormatBipolar(0.5) = %q", got)
	}
}
