package model

import "testing"

func TestRoadBoundsExtendByHalfWidth(t *testing.T) {
	r := NewHorizontalRoad(Point{X: 0, Y: 0}, 10)
	min, max := r.Bounds()
	if min.X != -0.4 || min.Y != -0.4 {
		t.Fatalf("min = %+v, want (-0.4,-0.4)", min)
	}
	if max.X != 10.4 || max.Y != 0.4 {
		t.Fatalf("max = %+v, want (10.4,0.4)", max)
	}
}

func TestRoadContainsInclusiveBoundary(t *testing.T) {
	r := NewHorizontalRoad(Point{X: 0, Y: 0}, 10)
	if !r.Contains(PointD{X: 10.4, Y: 0}) {
		t.Fatalf("expected boundary point to be on the road")
	}
	if r.Contains(PointD{X: 10.41, Y: 0}) {
		t.Fatalf("expected point just past the boundary to be off the road")
	}
}

func TestVerticalRoadOrientation(t *testing.T) {
	r := NewVerticalRoad(Point{X: 5, Y: 0}, 10)
	if !r.IsVertical() || r.IsHorizontal() {
		t.Fatalf("expected vertical road")
	}
}
