package pixfilter

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the source can't be decoded by any registered decoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

const (
	captionPadding = 6
	captionMargin  = 8
)

// Processor : type with processing options
type Processor struct {
	// Chain lists the filters to apply. A nil or empty chain leaves the image unchanged.
	Chain *Chain
	// Backend runs the filters. When nil the package backend is used.
	Backend Backend
	// Compare renders the source and the result side by side.
	Compare bool
}

// Process decodes the image read from r, filters it and writes the result to w as PNG.
// It returns the filtered image, before any side by side composition.
func (p *Processor) Process(r io.Reader, w io.Writer) (*image.NRGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("unable to decode the source image: %w", err)
	}
	img := p.Filter(src)

	Logger().Info("pixfilter: image processed",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"filters", p.chain().String(),
	)

	if p.Compare {
		err = compare(src, img, p.chain().String()).EncodePNG(w)
	} else {
		err = png.Encode(w, img)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to encode the output image: %w", err)
	}
	return img, nil
}

// Filter runs the processor chain over an already decoded image.
func (p *Processor) Filter(src image.Image) *image.NRGBA {
	pix, width, height := ToPixels(src)
	if width == 0 || height == 0 {
		return FromPixels(pix, width, height)
	}
	b := p.Backend
	if b == nil {
		b = CurrentBackend()
	}
	return FromPixels(p.chain().Run(b, pix, width, height), width, height)
}

func (p *Processor) chain() *Chain {
	if p.Chain == nil {
		return NewChain()
	}
	return p.Chain
}

// compare draws the source on the left and the filtered image on the right
// of a canvas twice as wide, each one captioned.
func compare(src image.Image, dst *image.NRGBA, label string) *gg.Context {
	width, height := dst.Bounds().Dx(), dst.Bounds().Dy()

	ctx := gg.NewContext(width*2, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	ctx.DrawImage(src, -src.Bounds().Min.X, -src.Bounds().Min.Y)
	ctx.DrawImage(dst, width, 0)

	ctx.SetRGBA(0, 0, 0, 0.6)
	ctx.SetLineWidth(2)
	ctx.DrawLine(float64(width), 0, float64(width), float64(height))
	ctx.Stroke()

	drawCaption(ctx, "original", captionMargin, captionMargin)
	drawCaption(ctx, label, float64(width+captionMargin), captionMargin)

	return ctx
}

// drawCaption writes a label over a translucent box with its top-left corner at (x, y).
func drawCaption(ctx *gg.Context, label string, x, y float64) {
	if label == "" {
		return
	}
	tw, th := ctx.MeasureString(label)

	ctx.SetRGBA(0, 0, 0, 0.5)
	ctx.DrawRectangle(x, y, tw+captionPadding*2, th+captionPadding*2)
	ctx.Fill()

	ctx.SetRGB(1, 1, 1)
	ctx.DrawStringAnchored(label, x+captionPadding, y+captionPadding, 0, 1)
}
