package pixfilter

import "math"

// pointFunc transforms every pixel of src into dst. Both slices hold the same number of whole pixels.
type pointFunc func(dst, src []uint8)

// rows adapts a point transformation to the row based backend contract.
func (fn pointFunc) rows() RowFunc {
	return func(dst, src []uint8, width, _, y0, y1 int) {
		start, end := ByteOffset(0, y0, width), ByteOffset(0, y1, width)
		fn(dst[start:end], src[start:end])
	}
}

// apply runs the transformation over the whole buffer and returns the new buffer.
func (fn pointFunc) apply(pix []uint8) []uint8 {
	dst := make([]uint8, len(pix))
	n := len(pix) &^ 3
	fn(dst[:n], pix[:n])
	return dst
}

// Binary converts the image to black and white. A pixel becomes white
// only if the rounded average of its channels is strictly above the threshold.
func Binary(pix []uint8, threshold int) []uint8 {
	return binary(Clamp(threshold, 0, 255)).apply(pix)
}

// Solarize inverts every color channel whose value is less than or equal to the threshold.
func Solarize(pix []uint8, threshold int) []uint8 {
	return solarize(Clamp(threshold, 0, 255)).apply(pix)
}

// Grayscale converts the image to grayscale using the given mode.
func Grayscale(pix []uint8, mode GrayscaleMode) []uint8 {
	return grayscale(mode).apply(pix)
}

// ColorInversion produces the negative of the image.
func ColorInversion(pix []uint8) []uint8 {
	return pointFunc(colorInversion).apply(pix)
}

func binary(threshold int) pointFunc {
	return func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			var c uint8
			if average(src, i) > threshold {
				c = 255
			}
			dst[i], dst[i+1], dst[i+2], dst[i+3] = c, c, c, src[i+3]
		}
	}
}

func solarize(threshold int) pointFunc {
	channel := func(v uint8) uint8 {
		if int(v) <= threshold {
			return 255 - v
		}
		return v
	}
	return func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			dst[i] = channel(src[i])
			dst[i+1] = channel(src[i+1])
			dst[i+2] = channel(src[i+2])
			dst[i+3] = src[i+3]
		}
	}
}

func grayscale(mode GrayscaleMode) pointFunc {
	value := luminance
	if mode == Average {
		value = average
	}
	return func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			c := uint8(value(src, i))
			dst[i], dst[i+1], dst[i+2], dst[i+3] = c, c, c, src[i+3]
		}
	}
}

// luminance weights each channel separately, rounding every term before summing.
func luminance(pix []uint8, i int) int {
	r := int(math.Round(float64(pix[i]) * 0.21))
	g := int(math.Round(float64(pix[i+1]) * 0.72))
	b := int(math.Round(float64(pix[i+2]) * 0.07))
	return Clamp(r+g+b, 0, 255)
}

func colorInversion(dst, src []uint8) {
	for i := 0; i < len(src); i += 4 {
		dst[i] = 255 - src[i]
		dst[i+1] = 255 - src[i+1]
		dst[i+2] = 255 - src[i+2]
		dst[i+3] = src[i+3]
	}
}
