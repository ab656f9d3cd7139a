package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirRight, Point{X: 1, Y: 0}},
		{DirLeft, Point{X: -1, Y: 0}},
		{DirUp, Point{X: 0, Y: -1}},
		{DirDown, Point{X: 0, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirRight, DirLeft},
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.expected)
		}
		if !tc.dir.IsOpposite(tc.expected) {
			t.Errorf("%v.IsOpposite(%v) should be true", tc.dir, tc.expected)
		}
		if tc.dir.IsOpposite(tc.dir) {
			t.Errorf("%v.IsOpposite(itself) should be false", tc.dir)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 20, Y: 10}
	got := p.Add(DirRight.Delta())
	if got != (Point{X: 21, Y: 10}) {
		t.Errorf("Add() = %v, expected (21,10)", got)
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
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
