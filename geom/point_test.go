package geom

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Pt(1, 2), Pt(3, -4)
	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("%v.Add(%v) = %v, want [4,-2]", p, q, got)
	}
	if got := p.Sub(q); got != Pt(-2, 6) {
		t.Errorf("%v.Sub(%v) = %v, want [-2,6]", p, q, got)
	}
	if got := p.Mul(3); got != Pt(3, 6) {
		t.Errorf("%v.Mul(3) = %v, want [3,6]", p, got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("%v.Dot(%v) = %v, want -5", p, q, got)
	}
}

func TestPoint_LengthDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative", Pt(-1, -1), Pt(2, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
			if got := tt.q.Sub(tt.p).Length(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Length = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Normalize(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0)},
		{"axis", Pt(0, -7), Pt(0, -1)},
		{"diagonal", Pt(3, 4), Pt(0.6, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Normalize(); !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPoint_DistanceToSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above middle", Pt(5, 3), 3},
		{"on segment", Pt(2, 0), 0},
		{"before start", Pt(-3, 4), 5},
		{"past end", Pt(13, -4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.DistanceToSegment(a, b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DistanceToSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if got := Pt(3, 4).DistanceToSegment(Pt(0, 0), Pt(0, 0)); got != 5 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestPoint_String(t *testing.T) {
	if got := Pt(1.5, -2).String(); got != "[1.5,-2]" {
		t.Errorf("String() = %q, want %q", got, "[1.5,-2]")
	}
}
