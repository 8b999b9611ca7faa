package pixfilter

import (
	"errors"
	"testing"
)

func TestApplyUnknownFilter(t *testing.T) {
	src := randomPixels(4, 4, 8)
	orig := clonePixels(src)

	got := Apply(src, 4, 4, "blur", Params{})
	if &got[0] != &src[0] {
		t.Error("Apply with an unknown filter returned a new buffer")
	}
	assertPixels(t, got, orig)
}

func TestApplyInvalidBuffer(t *testing.T) {
	tests := []struct {
		name          string
		pix           []uint8
		width, height int
	}{
		{"short buffer", make([]uint8, 15), 2, 2},
		{"long buffer", make([]uint8, 20), 2, 2},
		{"zero width", make([]uint8, 16), 0, 4},
		{"negative height", make([]uint8, 16), 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.pix, tt.width, tt.height); !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("Validate() = %v, want ErrInvalidBuffer", err)
			}
			got := Apply(tt.pix, tt.width, tt.height, "sobel", Params{})
			if len(got) != len(tt.pix) || (len(got) > 0 && &got[0] != &tt.pix[0]) {
				t.Error("Apply with an invalid buffer did not return the input")
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		src := grayPixels(DefaultBinaryThreshold, DefaultBinaryThreshold+1)
		assertPixels(t, Apply(src, 2, 1, "binary", Params{}), grayPixels(0, 255))
	})
	t.Run("solarize", func(t *testing.T) {
		src := grayPixels(DefaultSolarizeThreshold, DefaultSolarizeThreshold+1)
		assertPixels(t, Apply(src, 2, 1, "solarize", Params{}), grayPixels(150, 106))
	})
	t.Run("grayscale", func(t *testing.T) {
		src := []uint8{100, 150, 200, 255}
		assertPixels(t, Apply(src, 1, 1, "grayscale", Params{}), grayPixels(143))
	})
}

func TestApplyClampsThreshold(t *testing.T) {
	src := grayPixels(0, 1, 255)

	got := Apply(src, 3, 1, "binary", Params{Threshold: Threshold(-10)})
	assertPixels(t, got, grayPixels(0, 255, 255))

	got = Apply(src, 3, 1, "binary", Params{Threshold: Threshold(256)})
	assertPixels(t, got, grayPixels(0, 0, 0))
}

func TestApplyMatchesFilters(t *testing.T) {
	const w, h = 11, 9
	src := randomPixels(w, h, 9)
	orig := clonePixels(src)
	params := Params{Threshold: Threshold(90), Mode: Average}

	tests := []struct {
		id   string
		want []uint8
	}{
		{"binary", Binary(src, 90)},
		{"colorInversion", ColorInversion(src)},
		{"eightColors", EightColors(src)},
		{"grayscale", Grayscale(src, Average)},
		{"laplacian", Laplacian(src, w, h)},
		{"sobel", Sobel(src, w, h)},
		{"solarize", Solarize(src, 90)},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := Apply(src, w, h, tt.id, params)
			assertPixels(t, got, tt.want)
			assertAlpha(t, src, got)
		})
	}
	assertPixels(t, src, orig)
}

func TestParseFilter(t *testing.T) {
	for _, f := range Catalog() {
		if got := ParseFilter(f.ID.String()); got != f.ID {
			t.Errorf("ParseFilter(%q) = %v, want %v", f.ID.String(), got, f.ID)
		}
	}
	for _, name := range []string{"", "unknown", "Sobel", "blur"} {
		if got := ParseFilter(name); got != FilterUnknown {
			t.Errorf("ParseFilter(%q) = %v, want FilterUnknown", name, got)
		}
	}
	if got := FilterID(99).String(); got != "unknown" {
		t.Errorf("FilterID(99).String() = %q, want unknown", got)
	}
}

func TestParseGrayscaleMode(t *testing.T) {
	tests := []struct {
		in   string
		want GrayscaleMode
		ok   bool
	}{
		{"average", Average, true},
		{"luminance", Luminance, true},
		{"luminosity", Luminance, true},
		{"", Luminance, true},
		{"lightness", Luminance, false},
	}
	for _, tt := range tests {
		got, ok := ParseGrayscaleMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseGrayscaleMode(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	if len(c) != 7 {
		t.Fatalf("len(Catalog()) = %d, want 7", len(c))
	}
	seen := make(map[FilterID]bool)
	for _, f := range c {
		if f.ID == FilterUnknown || seen[f.ID] {
			t.Errorf("unexpected catalog id %v", f.ID)
		}
		seen[f.ID] = true

		if f.WithThreshold && (f.MinThreshold != 0 || f.MaxThreshold != 255 || f.Step != 1) {
			t.Errorf("%s threshold range = [%d, %d] step %d, want [0, 255] step 1", f.ID, f.MinThreshold, f.MaxThreshold, f.Step)
		}
	}

	thresholds := map[FilterID]int{FilterBinary: 122, FilterSolarize: 105}
	for _, f := range c {
		want, ok := thresholds[f.ID]
		if f.WithThreshold != ok || f.DefaultThreshold != want {
			t.Errorf("%s default threshold = %d (%v), want %d (%v)", f.ID, f.DefaultThreshold, f.WithThreshold, want, ok)
		}
		if f.IsGrayscale != (f.ID == FilterGrayscale) {
			t.Errorf("%s IsGrayscale = %v", f.ID, f.IsGrayscale)
		}
	}

	c[0].Name = "changed"
	if Catalog()[0].Name == "changed" {
		t.Error("Catalog() exposes the internal table")
	}
}
