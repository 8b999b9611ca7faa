package pixfilter

import (
	"bytes"
	"math/rand"
	"testing"
)

// newPixels creates a width x height buffer filled with a single color.
func newPixels(width, height int, r, g, b, a uint8) []uint8 {
	pix := make([]uint8, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

// randomPixels creates a reproducible buffer of random channel values, alpha included.
func randomPixels(width, height int, seed int64) []uint8 {
	rnd := rand.New(rand.NewSource(seed))
	pix := make([]uint8, width*height*4)
	rnd.Read(pix)
	return pix
}

// grayPixels creates a buffer where every pixel has R=G=B set to the given value and full alpha.
func grayPixels(values ...uint8) []uint8 {
	pix := make([]uint8, 0, len(values)*4)
	for _, v := range values {
		pix = append(pix, v, v, v, 255)
	}
	return pix
}

func clonePixels(pix []uint8) []uint8 {
	out := make([]uint8, len(pix))
	copy(out, pix)
	return out
}

// assertAlpha checks that every alpha value of dst equals the one in src.
func assertAlpha(t *testing.T, src, dst []uint8) {
	t.Helper()
	if len(src) != len(dst) {
		t.Fatalf("len(dst) = %d, want %d", len(dst), len(src))
	}
	for i := 3; i < len(src); i += 4 {
		if src[i] != dst[i] {
			t.Fatalf("alpha of pixel %d = %d, want %d", i/4, dst[i], src[i])
		}
	}
}

func assertPixels(t *testing.T, got, want []uint8) {
	t.Helper()
	if !bytes.Equal(got, want) {
		t.Errorf("pixels = %v, want %v", got, want)
	}
}
