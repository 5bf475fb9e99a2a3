package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestToHSV(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  HSV
	}{
		{"black", color.RGBA{0, 0, 0, 255}, HSV{0, 0, 0}},
		{"white", color.RGBA{255, 255, 255, 255}, HSV{0, 0, 255}},
		{"gray", color.RGBA{128, 128, 128, 255}, HSV{0, 0, 128}},
		{"red", color.RGBA{255, 0, 0, 255}, HSV{0, 255, 255}},
		{"yellow", color.RGBA{255, 255, 0, 255}, HSV{30, 255, 255}},
		{"green", color.RGBA{0, 255, 0, 255}, HSV{60, 255, 255}},
		{"cyan", color.RGBA{0, 255, 255, 255}, HSV{90, 255, 255}},
		{"blue", color.RGBA{0, 0, 255, 255}, HSV{120, 255, 255}},
		{"magenta", color.RGBA{255, 0, 255, 255}, HSV{150, 255, 255}},
		{"dark yellow", color.RGBA{128, 128, 0, 255}, HSV{30, 255, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSV(tt.color)
			if got != tt.want {
				t.Errorf("ToHSV(%v): got %s, want %s", tt.color, got, tt.want)
			}
		})
	}
}

func TestToHSV_HueWrapsBelow180(t *testing.T) {
	// Hue just under 360 degrees rounds to 180 and must wrap to 0.
	got := ToHSV(color.RGBA{255, 0, 1, 255})
	if got.H >= 180 {
		t.Errorf("hue should be below 180, got %d", got.H)
	}
}

func TestHSVRange_Contains(t *testing.T) {
	r := HSVRange{Lower: HSV{20, 100, 100}, Upper: HSV{40, 255, 255}}

	tests := []struct {
		name string
		hsv  HSV
		want bool
	}{
		{"inside", HSV{30, 200, 200}, true},
		{"lower bound inclusive", HSV{20, 100, 100}, true},
		{"upper bound inclusive", HSV{40, 255, 255}, true},
		{"hue below", HSV{19, 200, 200}, false},
		{"hue above", HSV{41, 200, 200}, false},
		{"saturation below", HSV{30, 99, 200}, false},
		{"value below", HSV{30, 200, 99}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.hsv); got != tt.want {
				t.Errorf("Contains(%s): got %v, want %v", tt.hsv, got, tt.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{255, 255, 0, 255}) // yellow
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})   // blue
	img.Set(2, 0, color.RGBA{0, 0, 0, 255})     // black
	img.Set(3, 0, color.RGBA{200, 200, 0, 255}) // darker yellow

	yellow := HSVRange{Lower: HSV{20, 100, 100}, Upper: HSV{40, 255, 255}}
	mask := InRange(img, yellow)

	want := []uint8{MaskOn, 0, 0, MaskOn}
	for x, w := range want {
		if got := mask.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
}

func TestInRange_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(12, 21, color.RGBA{255, 255, 0, 255})

	mask := InRange(img, HSVRange{Lower: HSV{20, 100, 100}, Upper: HSV{40, 255, 255}})

	if mask.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("mask bounds: got %v, want (0,0)-(3,2)", mask.Bounds())
	}
	if mask.GrayAt(2, 1).Y != MaskOn {
		t.Error("offset pixel should map to (2,1)")
	}
	if CountOn(mask) != 1 {
		t.Errorf("CountOn: got %d, want 1", CountOn(mask))
	}
}

func TestCountOn(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 5, 5))
	mask.SetGray(1, 1, color.Gray{MaskOn})
	mask.SetGray(3, 4, color.Gray{MaskOn})

	if got := CountOn(mask); got != 2 {
		t.Errorf("CountOn: got %d, want 2", got)
	}
}
