package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 5)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 9 {
		t.Errorf("Bottom() = %d, expected 9", r.Bottom())
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Square(0, 0, 1),
			b:        Square(0.5, 0.5, 1),
			expected: true,
		},
		{
			name:     "touching edges count",
			a:        Square(0, 0, 1),
			b:        Square(1, 0, 1),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        Square(0, 0, 1),
			b:        Square(1.01, 0, 1),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        Box{X: 0, Y: 0, SX: 4, SY: 1},
			b:        Box{X: 0, Y: 2, SX: 4, SY: 1},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{X: 0, Y: 0, SX: 10, SY: 10},
			b:        Square(2, -3, 0.5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 2, Y: 2, SX: 2, SY: 1}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"centre", 2, 2, true},
		{"left edge", 1, 2, true},
		{"corner", 3, 2.5, true},
		{"outside x", 3.1, 2, false},
		{"outside y", 2, 1.4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if b.MinX() != 1 || b.MinY() != 1.5 {
		t.Errorf("MinX/MinY = %v/%v, expected 1/1.5", b.MinX(), b.MinY())
	}
}

func TestDist2(t *testing.T) {
	if got := Dist2(0, 0, 3, 4); got != 25 {
		t.Errorf("Dist2 = %v, expected 25", got)
	}
	if got := Dist2(-1, -1, -1, -1); got != 0 {
		t.Errorf("Dist2 of same point = %v, expected 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.1, 0, 1, 0},
		{1.5, 0, 1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
