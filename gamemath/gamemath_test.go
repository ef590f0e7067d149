package gamemath

import "testing"

func almost(got, want float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= 1e-9
}

func TestLength(t *testing.T) {
	if !almost(Length(3, 4), 5) {
		t.Fatalf("Length(3, 4) = %v, want 5", Length(3, 4))
	}
	if Length(0, 0) != 0 {
		t.Fatal("Length of the zero vector must be 0")
	}
}

func TestNormalize(t *testing.T) {
	nx, ny := Normalize(3, 4)
	if !almost(nx, 0.6) || !almost(ny, 0.8) {
		t.Fatalf("Normalize(3, 4) = (%v, %v), want (0.6, 0.8)", nx, ny)
	}

	// The zero vector falls back to a fixed unit direction.
	nx, ny = Normalize(0, 0)
	if nx != 1 || ny != 0 {
		t.Fatalf("Normalize(0, 0) = (%v, %v), want (1, 0)", nx, ny)
	}
}

func TestRescale(t *testing.T) {
	x, y := Rescale(3, 4, 10)
	if !almost(x, 6) || !almost(y, 8) {
		t.Fatalf("Rescale(3, 4, 10) = (%v, %v), want (6, 8)", x, y)
	}

	x, y = Rescale(0, 0, 10)
	if x != 10 || y != 0 {
		t.Fatalf("Rescale(0, 0, 10) = (%v, %v), want the fallback direction scaled", x, y)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{7, 7, 7, 7},
	}
	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}
