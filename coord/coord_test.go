package coord

import "testing"

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a := New(2, 3)
	b := New(1, -1)

	if got, want := a.Add(b), New(3, 2); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), New(1, 4); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Neg(), New(-2, -3); got != want {
		t.Errorf("Neg() = %v, want %v", got, want)
	}
	if got, want := a.Mul(2), New(4, 6); got != want {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
	if got, want := a.MulComponent(b), New(2, -3); got != want {
		t.Errorf("MulComponent() = %v, want %v", got, want)
	}
}

func TestLen(t *testing.T) {
	t.Parallel()
	tests := []struct {
		c    Coord
		want int
	}{
		{New(0, 0), 0},
		{New(1, 0), 1},
		{New(0, -1), 1},
		{New(2, -3), 5},
	}
	for _, tt := range tests {
		if got := tt.c.Len(); got != tt.want {
			t.Errorf("Len(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestInBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		c    Coord
		want bool
	}{
		{New(0, 0), true},
		{New(7, 7), true},
		{New(-1, 0), false},
		{New(0, 8), false},
		{New(8, 8), false},
	}
	for _, tt := range tests {
		if got := tt.c.InBounds(); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	t.Parallel()
	for y := 0; y < Width; y++ {
		for x := 0; x < Width; x++ {
			c := New(x, y)
			if got := FromIndex(c.Index()); got != c {
				t.Errorf("FromIndex(Index(%v)) = %v, want %v", c, got, c)
			}
		}
	}
}

func TestHashStable(t *testing.T) {
	t.Parallel()
	a, b := New(3, 4), New(3, 4)
	if a.Hash() != b.Hash() {
		t.Errorf("Hash() not stable for equal coords")
	}
	if New(3, 4).Hash() == New(4, 3).Hash() {
		t.Errorf("Hash() collided for distinct coords")
	}
}
