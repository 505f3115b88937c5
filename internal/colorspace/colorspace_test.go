package colorspace

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{input: "3a6fb0", want: RGB{R: 0x3a, G: 0x6f, B: 0xb0}},
		{input: "#3a6fb0", want: RGB{R: 0x3a, G: 0x6f, B: 0xb0}},
		{input: "FFFFFF", want: RGB{R: 255, G: 255, B: 255}},
		{input: "000000", want: RGB{}},
		{input: "", wantErr: true},
		{input: "fff", wantErr: true},
		{input: "3a6fb0ff", wantErr: true},
		{input: "12345g", wantErr: true},
		{input: "##3a6fb0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	colors := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 0x3a, G: 0x6f, B: 0xb0},
		{R: 1, G: 2, B: 3},
	}

	for _, c := range colors {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("round trip of %+v via %q = %+v", c, c.Hex(), got)
		}
	}
}

func TestFromFloats(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{name: "exact", r: 58, g: 111, b: 176, want: RGB{R: 58, G: 111, B: 176}},
		{name: "rounds", r: 57.6, g: 111.4, b: 175.5, want: RGB{R: 58, G: 111, B: 176}},
		{name: "clamps low", r: -10, g: 0, b: 0, want: RGB{}},
		{name: "clamps high", r: 300, g: 255.4, b: 255, want: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloats(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("FromFloats(%v, %v, %v) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		color   RGB
		h, s, l float64
	}{
		{name: "red", color: RGB{R: 255}, h: 0, s: 1, l: 0.5},
		{name: "green", color: RGB{G: 255}, h: 120, s: 1, l: 0.5},
		{name: "blue", color: RGB{B: 255}, h: 240, s: 1, l: 0.5},
		{name: "white", color: RGB{R: 255, G: 255, B: 255}, h: 0, s: 0, l: 1},
		{name: "black", color: RGB{}, h: 0, s: 0, l: 0},
		{name: "gray", color: RGB{R: 128, G: 128, B: 128}, h: 0, s: 0, l: 128.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.HSL()
			if !approx(got.H, tt.h, 1e-9) || !approx(got.S, tt.s, 1e-9) || !approx(got.L, tt.l, 1e-9) {
				t.Errorf("%+v.HSL() = %+v, want H=%v S=%v L=%v", tt.color, got, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestLab(t *testing.T) {
	tests := []struct {
		name    string
		color   RGB
		l, a, b float64
		tol     float64
	}{
		{name: "white", color: RGB{R: 255, G: 255, B: 255}, l: 100, a: 0, b: 0, tol: 0.01},
		{name: "black", color: RGB{}, l: 0, a: 0, b: 0, tol: 1e-9},
		{name: "red", color: RGB{R: 255}, l: 53.24, a: 80.09, b: 67.20, tol: 0.05},
		{name: "green", color: RGB{G: 255}, l: 87.74, a: -86.18, b: 83.18, tol: 0.05},
		{name: "blue", color: RGB{B: 255}, l: 32.30, a: 79.19, b: -107.86, tol: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.Lab()
			if !approx(got.L, tt.l, tt.tol) || !approx(got.A, tt.a, tt.tol) || !approx(got.B, tt.b, tt.tol) {
				t.Errorf("%+v.Lab() = %+v, want L=%v A=%v B=%v", tt.color, got, tt.l, tt.a, tt.b)
			}
		})
	}
}

func TestLabGrayIsNeutral(t *testing.T) {
	for _, v := range []uint8{32, 96, 128, 200} {
		lab := RGB{R: v, G: v, B: v}.Lab()
		if math.Abs(lab.A) > 0.01 || math.Abs(lab.B) > 0.01 {
			t.Errorf("gray %d has chroma: %+v", v, lab)
		}
	}
}

func TestDistance(t *testing.T) {
	a := RGB{R: 0x3a, G: 0x6f, B: 0xb0}
	b := RGB{R: 0x6b, G: 0x4a, B: 0x2f}

	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance(a, a) = %v, want 0", d)
	}
	if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
		t.Errorf("Distance not symmetric: %v vs %v", d1, d2)
	}
	if d := Distance(a, b); d <= 0 {
		t.Errorf("Distance(a, b) = %v, want > 0", d)
	}

	// White and black must be the most distant neutral pair.
	wb := Distance(RGB{R: 255, G: 255, B: 255}, RGB{})
	if !approx(wb, 100, 0.01) {
		t.Errorf("Distance(white, black) = %v, want ~100", wb)
	}
}

func TestDistanceHex(t *testing.T) {
	if d := DistanceHex("3a6fb0", "3a6fb0"); d != 0 {
		t.Errorf("DistanceHex of identical colors = %v, want 0", d)
	}
	if d := DistanceHex("not-hex", "3a6fb0"); !math.IsInf(d, 1) {
		t.Errorf("DistanceHex with bad first input = %v, want +Inf", d)
	}
	if d := DistanceHex("3a6fb0", "zzzzzz"); !math.IsInf(d, 1) {
		t.Errorf("DistanceHex with bad second input = %v, want +Inf", d)
	}
}

func approx(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}
