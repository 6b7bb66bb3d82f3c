package core

import "testing"

func TestMapperIdentity(t *testing.T) {
	m := NewMapper(false)

	tests := []struct {
		row, col int
		want     Point
	}{
		{0, 0, P(0, 0)},
		{3, 5, P(3, 5)},
		{31, 7, P(31, 7)},
	}

	for _, tt := range tests {
		got := m.Map(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("Map(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestMapperRotated(t *testing.T) {
	m := NewMapper(true)

	tests := []struct {
		row, col int
		want     Point
	}{
		{0, 0, P(0, 0)},
		{3, 5, P(5, 3)},
		{31, 7, P(7, 31)},
	}

	for _, tt := range tests {
		got := m.Map(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("Map(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestMapperAppliedUniformly(t *testing.T) {
	// The same transform must hold for every point of a frame, so a
	// column of logical rows must land on a single physical column.
	m := NewMapper(true)
	for row := 0; row < 32; row++ {
		p := m.Map(row, 4)
		if p.X != 4 {
			t.Fatalf("Map(%d, 4).X = %d, want 4", row, p.X)
		}
		if p.Y != row {
			t.Fatalf("Map(%d, 4).Y = %d, want %d", row, p.Y, row)
		}
	}
}
