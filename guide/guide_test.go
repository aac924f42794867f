package guide

import (
	"testing"

	"github.com/lixenwraith/glitchgrid/shape"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name         string
		sw, sh, long int
		wantW, wantH int
	}{
		{"landscape", 1920, 1080, 200, 200, 112},
		{"portrait", 1080, 1920, 200, 112, 200},
		{"square", 500, 500, 200, 200, 200},
		{"extreme strip", 10000, 10, 200, 200, 1},
		{"zero width", 0, 100, 200, 1, 1},
		{"negative height", 100, -5, 200, 1, 1},
		{"default long edge", 80, 40, 0, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Size(tt.sw, tt.sh, tt.long)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size(%d,%d,%d): expected %dx%d, got %dx%d", tt.sw, tt.sh, tt.long, tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestMaskAlphaClamps(t *testing.T) {
	m := NewMask(4, 3)
	m.Image().Pix[0] = 10                      // (0,0)
	m.Image().Pix[2*m.Image().Stride+3] = 200 // (3,2)

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 10},
		{-5, -5, 10},
		{3, 2, 200},
		{99, 99, 200},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := m.Alpha(tt.x, tt.y); got != tt.want {
			t.Errorf("Alpha(%d,%d): expected %d, got %d", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestMaskResizeMinimum(t *testing.T) {
	m := NewMask(0, -1)
	if m.Width() != 1 || m.Height() != 1 {
		t.Errorf("Expected 1x1 mask, got %dx%d", m.Width(), m.Height())
	}
}

func TestRebuildSquare(t *testing.T) {
	r := NewRasterizer(200, 200)
	r.Rebuild(shape.Square(shape.PointCount))
	m := r.Mask()

	if a := m.Alpha(100, 100); a != 0xff {
		t.Errorf("Expected full coverage at center, got %d", a)
	}
	if a := m.Alpha(2, 2); a != 0 {
		t.Errorf("Expected no coverage at corner, got %d", a)
	}
}

func TestRebuildContainOnWideMask(t *testing.T) {
	// Square spans 15..85; on a 200x100 mask the logical square maps to 200x200
	// centered vertically, so the shape covers x in [30,170] and overflows y
	r := NewRasterizer(200, 100)
	r.Rebuild(shape.Square(shape.PointCount))
	m := r.Mask()

	if a := m.Alpha(100, 50); a != 0xff {
		t.Errorf("Expected coverage at center, got %d", a)
	}
	if a := m.Alpha(100, 0); a != 0xff {
		t.Errorf("Expected coverage at top edge center, got %d", a)
	}
	if a := m.Alpha(10, 50); a != 0 {
		t.Errorf("Expected no coverage at left margin, got %d", a)
	}
}

func TestRebuildReplacesCoverage(t *testing.T) {
	r := NewRasterizer(100, 100)
	r.FillPolygon([]shape.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	if r.Mask().Alpha(5, 5) != 0xff {
		t.Fatal("Expected FillPolygon to cover (5,5)")
	}

	r.Rebuild(shape.Circle(shape.PointCount))
	if a := r.Mask().Alpha(5, 5); a != 0 {
		t.Errorf("Expected stale coverage cleared, got %d", a)
	}

	r.Rebuild(nil)
	if n := r.Mask().Coverage(0); n != 0 {
		t.Errorf("Expected empty polygon to clear mask, got %d covered pixels", n)
	}
}

func TestRasterizerResize(t *testing.T) {
	r := NewRasterizer(10, 10)
	r.Resize(40, 20)
	if r.Mask().Width() != 40 || r.Mask().Height() != 20 {
		t.Fatalf("Expected 40x20, got %dx%d", r.Mask().Width(), r.Mask().Height())
	}
	r.Rebuild(shape.Circle(shape.PointCount))
	if r.Mask().Alpha(20, 10) != 0xff {
		t.Error("Expected coverage at center after resize")
	}
}
