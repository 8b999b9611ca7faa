/*
Package pixfilter is an image processing library which applies visual filters over a raw RGBA pixel buffer.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ pixfilter --help

The filters work on a flat slice of bytes holding width*height*4 channel values in R, G, B, A order,
row-major with the origin at the top-left corner. Every filter returns a freshly allocated buffer
of the same size and never modifies its input. The alpha channel is always preserved.

The supported filters are:

	binary          threshold binarization
	colorInversion  per-channel inversion
	eightColors     quantization to an eight color palette
	grayscale       average or luminance grayscale conversion
	laplacian       3x3 laplacian edge response
	sobel           3x3 sobel gradient magnitude
	solarize        per-channel solarization

Example to apply a filter over a decoded image:

	package main

	import (
		"github.com/esimov/pixfilter"
	)

	func main() {
		pix, width, height := pixfilter.ToPixels(srcImg)

		out := pixfilter.Apply(pix, width, height, "solarize", pixfilter.Params{
			Threshold: pixfilter.Threshold(105),
		})
		img := pixfilter.FromPixels(out, width, height)
	}

Example to chain multiple filters and write the result as PNG:

	package main

	import (
		"fmt"
		"github.com/esimov/pixfilter"
	)

	func main() {
		chain, err := pixfilter.ParseChain("grayscale,sobel", pixfilter.Params{})
		if err != nil {
			fmt.Printf("Error parsing filters: %s", err.Error())
		}
		p := &pixfilter.Processor{
			Chain:   chain,
			Compare: true,
		}
		if _, err := p.Process(input, output); err != nil {
			fmt.Printf("Error on filtering process: %s", err.Error())
		}
	}

By default the filters run sequentially on the calling goroutine. The row-parallel backend
produces byte-identical results and can be selected with:

	pixfilter.SetBackend(&pixfilter.Parallel{Workers: 4})
*/
package pixfilter
