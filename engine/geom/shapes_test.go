package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewCircle(t *testing.T) {
	c := NewCircle(8)
	if c.Radius != 8 {
		t.Errorf("NewCircle(8).Radius = %v, want 8", c.Radius)
	}
	if c.Kind() != KindCircle {
		t.Errorf("Kind() = %v, want KindCircle", c.Kind())
	}
	if c.BoundRadius() != 8 {
		t.Errorf("BoundRadius() = %v, want 8", c.BoundRadius())
	}
}

func TestNewCirclePanicsOnBadRadius(t *testing.T) {
	for _, radius := range []float64{0, -1} {
		t.Run("non-positive radius", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewCircle(%v) did not panic", radius)
				}
			}()
			NewCircle(radius)
		})
	}
}

func TestNewBox(t *testing.T) {
	b := NewBox(40, 10)
	if b.HalfW != 20 || b.HalfH != 5 {
		t.Errorf("NewBox(40, 10) = %+v, want half extents 20, 5", b)
	}
	if b.Kind() != KindBox {
		t.Errorf("Kind() = %v, want KindBox", b.Kind())
	}
	if b.BoundRadius() != 20 {
		t.Errorf("BoundRadius() = %v, want larger half extent 20", b.BoundRadius())
	}
}

func TestNewBoxPanicsOnBadDimensions(t *testing.T) {
	cases := [][2]float64{{0, 10}, {10, 0}, {-5, 10}, {10, -5}}
	for _, dims := range cases {
		t.Run("non-positive dimension", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBox(%v, %v) did not panic", dims[0], dims[1])
				}
			}()
			NewBox(dims[0], dims[1])
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, r1, x2, y2, r2 float64
		want                   bool
	}{
		{"far apart", 0, 0, 5, 100, 0, 5, false},
		{"overlapping", 0, 0, 10, 15, 0, 10, true},
		{"exactly touching", 0, 0, 5, 10, 0, 5, true},
		{"contained", 0, 0, 20, 3, 3, 2, true},
		{"same center", 7, 7, 1, 7, 7, 1, true},
		{"just apart", 0, 0, 5, 10.001, 0, 5, false},
		{"diagonal touch", 0, 0, 5, 6, 8, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2)
			if got != tt.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.want)
			}
			// Swapping operands must not change the result
			swapped := CirclesOverlap(tt.x2, tt.y2, tt.r2, tt.x1, tt.y1, tt.r1)
			if swapped != got {
				t.Errorf("CirclesOverlap not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestBoxesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		x1, y1, hw1, hh1, x2, y2, hw2, hh2 float64
		want                           bool
	}{
		{"far apart", 0, 0, 5, 5, 100, 100, 5, 5, false},
		{"overlapping", 0, 0, 10, 10, 5, 5, 10, 10, true},
		{"edge touching x", 0, 0, 5, 5, 10, 0, 5, 5, true},
		{"edge touching y", 0, 0, 5, 5, 0, 10, 5, 5, true},
		{"separated on x only", 0, 0, 5, 5, 20, 0, 5, 5, false},
		{"separated on y only", 0, 0, 5, 5, 0, 20, 5, 5, false},
		{"contained", 0, 0, 20, 20, 1, 1, 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoxesOverlap(tt.x1, tt.y1, tt.hw1, tt.hh1, tt.x2, tt.y2, tt.hw2, tt.hh2)
			if got != tt.want {
				t.Errorf("BoxesOverlap = %v, want %v", got, tt.want)
			}
			swapped := BoxesOverlap(tt.x2, tt.y2, tt.hw2, tt.hh2, tt.x1, tt.y1, tt.hw1, tt.hh1)
			if swapped != got {
				t.Errorf("BoxesOverlap not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestCircleBoxOverlap(t *testing.T) {
	tests := []struct {
		name               string
		cx, cy, r          float64
		bx, by, hw, hh     float64
		want               bool
	}{
		{"far apart", 0, 0, 5, 100, 100, 10, 10, false},
		{"circle center inside box", 100, 100, 8, 105, 100, 20, 20, true},
		{"overlapping edge", 0, 0, 6, 10, 0, 5, 5, true},
		{"exactly touching edge", 0, 0, 5, 10, 0, 5, 5, true},
		{"near corner inside", 0, 0, 5, 7, 7, 4, 4, true},
		{"near corner outside", 0, 0, 5, 8, 8, 4, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleBoxOverlap(tt.cx, tt.cy, tt.r, tt.bx, tt.by, tt.hw, tt.hh)
			if got != tt.want {
				t.Errorf("CircleBoxOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampToBox(t *testing.T) {
	tests := []struct {
		name           string
		px, py         float64
		bx, by, hw, hh float64
		wantX, wantY   float64
	}{
		{"point inside", 1, 2, 0, 0, 5, 5, 1, 2},
		{"left of box", -10, 0, 0, 0, 5, 5, -5, 0},
		{"above box", 0, 20, 0, 0, 5, 5, 0, 5},
		{"corner", 10, 10, 0, 0, 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := ClampToBox(tt.px, tt.py, tt.bx, tt.by, tt.hw, tt.hh)
			if gx != tt.wantX || gy != tt.wantY {
				t.Errorf("ClampToBox = (%v, %v), want (%v, %v)", gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPushCircleFromCircle(t *testing.T) {
	// Overlapping circles separate to exactly the sum of radii
	dx, dy, ok := PushCircleFromCircle(0, 0, 10, 15, 0, 10)
	if !ok {
		t.Fatal("expected an overlap")
	}
	nx, ny := 0+dx, 0+dy
	dist := math.Hypot(nx-15, ny-0)
	if !almostEqual(dist, 20) {
		t.Errorf("post-push center distance = %v, want 20", dist)
	}
}

func TestPushCircleFromCircleCoincident(t *testing.T) {
	dx, dy, ok := PushCircleFromCircle(5, 5, 3, 5, 5, 4)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !almostEqual(dx, 7) || dy != 0 {
		t.Errorf("push = (%v, %v), want full combined radius (7, 0)", dx, dy)
	}
}

func TestPushCircleFromCircleSeparated(t *testing.T) {
	if _, _, ok := PushCircleFromCircle(0, 0, 5, 100, 0, 5); ok {
		t.Error("expected no push for separated circles")
	}
}

func TestPushCircleFromBoxCenterInside(t *testing.T) {
	// Center (100,100) inside box centered (105,100): x penetration
	// 20+8-5=23 is smaller than y penetration 28, so push is -23 on x
	dx, dy, ok := PushCircleFromBox(100, 100, 8, 105, 100, 20, 20)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !almostEqual(dx, -23) || dy != 0 {
		t.Errorf("push = (%v, %v), want (-23, 0)", dx, dy)
	}
	// After the push the circle rests on the box edge along x
	nx := 100 + dx
	if !almostEqual(nx, 77) {
		t.Errorf("post-push center x = %v, want 77", nx)
	}
}

func TestPushCircleFromBoxOutsideEdge(t *testing.T) {
	// Circle overlapping the left face of the box by 2
	dx, dy, ok := PushCircleFromBox(-8, 0, 5, 0, 0, 5, 5)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !almostEqual(dx, -2) || !almostEqual(dy, 0) {
		t.Errorf("push = (%v, %v), want (-2, 0)", dx, dy)
	}
}

func TestPushBoxFromBox(t *testing.T) {
	tests := []struct {
		name                           string
		x1, y1, hw1, hh1, x2, y2, hw2, hh2 float64
		wantDX, wantDY                 float64
		wantOK                         bool
	}{
		{"x axis smaller", 8, 0, 5, 5, 0, 0, 5, 5, 2, 0, true},
		{"y axis smaller", 0, -8, 5, 5, 0, 0, 5, 5, 0, -2, true},
		{"separated", 0, 0, 5, 5, 20, 0, 5, 5, 0, 0, false},
		{"touching resolves nothing", 10, 0, 5, 5, 0, 0, 5, 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy, ok := PushBoxFromBox(tt.x1, tt.y1, tt.hw1, tt.hh1, tt.x2, tt.y2, tt.hw2, tt.hh2)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !almostEqual(dx, tt.wantDX) || !almostEqual(dy, tt.wantDY) {
				t.Errorf("push = (%v, %v), want (%v, %v)", dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}
