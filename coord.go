package pixfilter

// PixelToCoord converts a pixel ordinal (byte offset divided by 4) into its x and y coordinates.
func PixelToCoord(pixel, width int) (x, y int) {
	return pixel % width, pixel / width
}

// ByteOffset returns the offset of the red channel of the pixel at (x, y).
func ByteOffset(x, y, width int) int {
	return (y*width + x) * 4
}

// Reflect returns the step to add to axisValue when sampling the kernel cell at shift (0, 1 or 2).
// When the step would leave the image it is replaced by the distance to the last row or column.
//
// Only the upper boundary is guarded. Since shift is never negative the sampled
// neighbors are always at axisValue, axisValue+1 or axisValue+2 and can't cross the lower edge.
func Reflect(axisValue, shift, axisLength int) int {
	if axisValue+shift >= axisLength {
		return axisLength - axisValue - 1
	}
	return shift
}
