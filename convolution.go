package pixfilter

import "math"

// Kernel is a 3x3 convolution matrix indexed as [column shift][row shift].
type Kernel [3][3]int

var (
	sobelHorizontal = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	sobelVertical = Kernel{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}

	laplacian = Kernel{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	}
)

// SobelKernels returns a copy of the horizontal and vertical gradient operators.
func SobelKernels() (horizontal, vertical Kernel) {
	return sobelHorizontal, sobelVertical
}

// LaplacianKernel returns a copy of the 8-neighbour laplacian operator.
func LaplacianKernel() Kernel {
	return laplacian
}

// window holds the average grayscale values of the 3x3 neighbourhood sampled for a pixel.
type window [3][3]int

// sample collects the neighbourhood of (x, y). Neighbours past the right or bottom edge
// are replaced according to Reflect.
func sample(pix []uint8, x, y, width, height int) window {
	var w window
	for m := 0; m < 3; m++ {
		k := Reflect(x, m, width)
		for n := 0; n < 3; n++ {
			l := Reflect(y, n, height)
			w[m][n] = average(pix, ByteOffset(x+k, y+l, width))
		}
	}
	return w
}

// convolve returns the weighted sum of the window with the kernel.
func (k *Kernel) convolve(w *window) int {
	var sum int
	for m := 0; m < 3; m++ {
		for n := 0; n < 3; n++ {
			sum += w[m][n] * k[m][n]
		}
	}
	return sum
}

// Sobel detects the image edges. Every pixel is replaced by the inverted gradient magnitude,
// so edges appear dark over a white background.
// See https://en.wikipedia.org/wiki/Sobel_operator
func Sobel(pix []uint8, width, height int) []uint8 {
	dst := make([]uint8, len(pix))
	sobelRows(dst, pix, width, height, 0, height)
	return dst
}

// Laplacian computes the inverted laplacian edge response of the image.
func Laplacian(pix []uint8, width, height int) []uint8 {
	dst := make([]uint8, len(pix))
	laplacianRows(dst, pix, width, height, 0, height)
	return dst
}

// LaplacianInPlace applies the laplacian filter over pix itself and returns it.
// Neighbours are only ever sampled at or after the current pixel in scan order,
// so every read happens before the pixel is overwritten and the result matches Laplacian.
func LaplacianInPlace(pix []uint8, width, height int) []uint8 {
	laplacianRows(pix, pix, width, height, 0, height)
	return pix
}

func sobelRows(dst, src []uint8, width, height, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			w := sample(src, x, y, width, height)
			gx := sobelHorizontal.convolve(&w)
			gy := sobelVertical.convolve(&w)

			c := toByte(255 - math.Sqrt(float64(gx*gx+gy*gy)))
			setGray(dst, src, ByteOffset(x, y, width), c)
		}
	}
}

func laplacianRows(dst, src []uint8, width, height, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			w := sample(src, x, y, width, height)
			sum := laplacian.convolve(&w)

			c := uint8(255 - Clamp(sum, 0, 255))
			setGray(dst, src, ByteOffset(x, y, width), c)
		}
	}
}

// setGray writes c to the color channels of the pixel at offset i, keeping the source alpha.
func setGray(dst, src []uint8, i int, c uint8) {
	dst[i], dst[i+1], dst[i+2], dst[i+3] = c, c, c, src[i+3]
}
