package core

import "testing"

func TestCellAdd(t *testing.T) {
	start := Cell{X: 10, Y: 10}

	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Up, Cell{X: 10, Y: 9}},
		{Down, Cell{X: 10, Y: 11}},
		{Left, Cell{X: 9, Y: 10}},
		{Right, Cell{X: 11, Y: 10}},
		{None, Cell{X: 10, Y: 10}},
	}

	for _, tc := range tests {
		if got := start.Add(tc.dir); got != tc.want {
			t.Errorf("Expected %v + %s = %v, got %v", start, tc.dir, tc.want, got)
		}
	}
}

func TestCellIn(t *testing.T) {
	const n = 20

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{X: 0, Y: 0}, true},
		{Cell{X: 19, Y: 19}, true},
		{Cell{X: -1, Y: 5}, false},
		{Cell{X: 5, Y: -1}, false},
		{Cell{X: 20, Y: 5}, false},
		{Cell{X: 5, Y: 20}, false},
	}

	for _, tc := range tests {
		if got := tc.cell.In(n); got != tc.want {
			t.Errorf("Expected %v.In(%d) = %v, got %v", tc.cell, n, tc.want, got)
		}
	}
}

func TestContains(t *testing.T) {
	cells := []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	if !Contains(cells, Cell{X: 3, Y: 5}) {
		t.Error("Expected tail cell to be contained")
	}
	if Contains(cells, Cell{X: 6, Y: 5}) {
		t.Error("Expected (6,5) not to be contained")
	}
	if Contains(nil, Cell{}) {
		t.Error("Expected empty slice to contain nothing")
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		a, b Direction
		want bool
	}{
		{Up, Down, true},
		{Down, Up, true},
		{Left, Right, true},
		{Right, Left, true},
		{Up, Left, false},
		{Right, Right, false},
		{None, Left, false},
		{Right, None, false},
		{None, None, false},
	}

	for _, tc := range tests {
		if got := tc.a.Opposite(tc.b); got != tc.want {
			t.Errorf("Expected %s.Opposite(%s) = %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}
