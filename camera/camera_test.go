package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 0.01
}

func TestNew(t *testing.T) {
	cam := New(800, 600)

	if cam.X != 0.5 || cam.Y != 0.5 {
		t.Errorf("expected camera at (0.5, 0.5), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if cam.Scale() != 600 {
		t.Errorf("expected fit scale 600, got %f", cam.Scale())
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(800, 600)

	sx, sy := cam.WorldToScreen(0.5, 0.5)
	if !near(sx, 400) || !near(sy, 300) {
		t.Errorf("expected screen center (400, 300), got (%f, %f)", sx, sy)
	}
}

func TestWorldYPointsUp(t *testing.T) {
	cam := New(800, 600)

	_, above := cam.WorldToScreen(0.5, 0.6)
	_, below := cam.WorldToScreen(0.5, 0.4)
	if above >= below {
		t.Errorf("larger world y should be higher on screen: %f vs %f", above, below)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(800, 600)
	cam.SetZoom(2)
	cam.X, cam.Y = 0.1, 0.9

	testCases := []struct{ sx, sy float32 }{
		{400, 300}, // center
		{100, 100}, // top-left
		{700, 550}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		if wx < 0 || wx >= 1 || wy < 0 || wy >= 1 {
			t.Errorf("ScreenToWorld(%v, %v) = (%v, %v) outside the unit square", tc.sx, tc.sy, wx, wy)
		}
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := New(800, 600)
	cam.X = 0.05

	// A point at the far right edge is closer going left around the torus.
	sx, _ := cam.WorldToScreen(0.98, 0.5)
	if sx >= 400 {
		t.Errorf("expected point on left of screen, got x=%f", sx)
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(800, 600)

	cam.Pan(-600*0.75, 0)
	if !near(cam.X, 0.75) {
		t.Errorf("expected X to wrap to 0.75, got %f", cam.X)
	}

	cam.Pan(0, -600*0.75)
	if !near(cam.Y, 0.25) {
		t.Errorf("expected Y to wrap to 0.25, got %f", cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 600)

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	cam.ZoomBy(0.001)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600)
	cam.SetZoom(4)

	if !cam.IsVisible(0.5, 0.5, 0) {
		t.Error("camera center should be visible")
	}
	if cam.IsVisible(0.0, 0.0, 0.01) {
		t.Error("opposite corner should be culled at 4x zoom")
	}
	if !cam.IsVisible(0.5+0.2, 0.5, 0.1) {
		t.Error("circle overlapping the view edge should be visible")
	}
}

func TestGhostPositions(t *testing.T) {
	cam := New(800, 600)

	if g := cam.GhostPositions(0.5, 0.5, 0.1); len(g) != 0 {
		t.Errorf("centered circle produced ghosts: %v", g)
	}
	if g := cam.GhostPositions(0.98, 0.5, 0.05); len(g) != 1 {
		t.Errorf("edge circle produced %d ghosts, want 1", len(g))
	}
	if g := cam.GhostPositions(0.98, 0.01, 0.05); len(g) != 3 {
		t.Errorf("corner circle produced %d ghosts, want 3", len(g))
	}
}

func TestReset(t *testing.T) {
	cam := New(800, 600)
	cam.Pan(50, 50)
	cam.SetZoom(3)

	cam.Reset()

	if cam.X != 0.5 || cam.Y != 0.5 || cam.Zoom != 1.0 {
		t.Errorf("expected reset to (0.5, 0.5, 1.0), got (%f, %f, %f)", cam.X, cam.Y, cam.Zoom)
	}
}

func TestTorusDistance(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float32
		want           float32
	}{
		{"same point", 0.3, 0.3, 0.3, 0.3, 0},
		{"inside", 0.2, 0.5, 0.5, 0.5, 0.3},
		{"across x edge", 0.95, 0.5, 0.05, 0.5, 0.1},
		{"across both edges", 0.98, 0.01, 0.01, 0.97, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TorusDistance(tt.ax, tt.ay, tt.bx, tt.by); !near(got, tt.want) {
				t.Errorf("TorusDistance = %f, want %f", got, tt.want)
			}
		})
	}
}
