package pixfilter

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// palette holds the eight colors used by the quantizer in matching order.
// Ties are resolved in favor of the color declared first.
var palette = [8]Color{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
	{0, 0, 0},
}

// Palette returns a copy of the quantizer palette in matching order.
func Palette() [8]Color {
	return palette
}

// maxDelta is greater than the largest possible squared distance in RGB space (3*255*255).
const maxDelta = 3*255*255 + 1

// Nearest returns the palette color closest to (r, g, b) by squared euclidean distance.
func Nearest(r, g, b uint8) Color {
	minDelta := maxDelta
	selected := palette[0]

	for _, c := range palette {
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)

		if delta := dr*dr + dg*dg + db*db; delta < minDelta {
			minDelta = delta
			selected = c
		}
	}
	return selected
}

// EightColors reduces the image to the eight color palette.
func EightColors(pix []uint8) []uint8 {
	return pointFunc(eightColors).apply(pix)
}

func eightColors(dst, src []uint8) {
	for i := 0; i < len(src); i += 4 {
		c := Nearest(src[i], src[i+1], src[i+2])
		dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, src[i+3]
	}
}
