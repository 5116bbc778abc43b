package geom

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func TestBoxOf(t *testing.T) {
	points := []Vec3{
		{1, 2, 3},
		{-1, 5, 0},
		{4, -2, 2},
	}

	box, ok := BoxOf(points)
	if !ok {
		t.Fatal("expected ok for non-empty point set")
	}
	if box.Min != (Vec3{-1, -2, 0}) {
		t.Errorf("unexpected min: %v", box.Min)
	}
	if box.Max != (Vec3{4, 5, 3}) {
		t.Errorf("unexpected max: %v", box.Max)
	}
}

func TestBoxOf_Empty(t *testing.T) {
	_, ok := BoxOf(nil)
	if ok {
		t.Error("expected ok=false for empty point set")
	}
}

func TestBox_Center(t *testing.T) {
	box := Box{Min: Vec3{0, 0, 0}, Max: Vec3{2, 4, 6}}
	if got := box.Center(); got != (Vec3{1, 2, 3}) {
		t.Errorf("expected center (1,2,3), got %v", got)
	}
}

func TestBox_SizeAndDiagonal(t *testing.T) {
	box := Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 2, 2}}

	if got := box.Size(); got != (Vec3{1, 2, 2}) {
		t.Errorf("unexpected size: %v", got)
	}
	if got := box.Diagonal(); !floats.AlmostEqual(got, 3, 1e-12) {
		t.Errorf("expected diagonal 3, got %f", got)
	}
}

func TestBox_DegenerateSize(t *testing.T) {
	// A single point still produces a usable non-zero extent.
	box, ok := BoxOf([]Vec3{{1, 1, 1}})
	if !ok {
		t.Fatal("expected ok for single point")
	}

	size := box.Size()
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		t.Errorf("expected clamped positive size, got %v", size)
	}
	if d := box.Diagonal(); d <= 0 || math.IsNaN(d) {
		t.Errorf("expected positive diagonal, got %f", d)
	}
}

func TestBox_FlatAxis(t *testing.T) {
	// A planar mesh is flat along one axis only.
	box, _ := BoxOf([]Vec3{{0, 0, 0}, {2, 3, 0}})

	size := box.Size()
	if size.X != 2 || size.Y != 3 {
		t.Errorf("unexpected size: %v", size)
	}
	if size.Z <= 0 {
		t.Errorf("expected clamped Z extent, got %f", size.Z)
	}
}
