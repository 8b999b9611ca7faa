package pixfilter

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToPixels returns the RGBA pixel buffer of img together with its dimensions.
// The returned slice may share memory with img when it's already an *image.NRGBA
// with the min point at (0, 0) and without row padding.
func ToPixels(img image.Image) (pix []uint8, width, height int) {
	dst := toNRGBA(img)
	width, height = dst.Bounds().Dx(), dst.Bounds().Dy()
	if dst.Stride == width*4 {
		return dst.Pix[:width*height*4], width, height
	}
	pix = make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		copy(pix[y*width*4:(y+1)*width*4], dst.Pix[y*dst.Stride:])
	}
	return pix, width, height
}

// FromPixels wraps a pixel buffer into an *image.NRGBA without copying it.
func FromPixels(pix []uint8, width, height int) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				siy := src.YOffset(srcMinX+dstX, srcMinY+dstY)
				sic := src.COffset(srcMinX+dstX, srcMinY+dstY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	case *image.Gray:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := src.Pix[si]
				dst.Pix[di+0] = c
				dst.Pix[di+1] = c
				dst.Pix[di+2] = c
				dst.Pix[di+3] = 0xff
				di += 4
				si++
			}
		}
	default:
		draw.Draw(dst, dstBounds, img, srcBounds.Min, draw.Src)
	}

	return dst
}
