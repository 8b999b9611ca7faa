package pixfilter

import (
	"errors"
	"fmt"
)

// FilterID identifies one of the supported filters.
type FilterID uint8

// Filter identifiers.
const (
	// FilterUnknown stands for any identifier outside the supported set.
	FilterUnknown FilterID = iota
	FilterBinary
	FilterColorInversion
	FilterEightColors
	FilterGrayscale
	FilterLaplacian
	FilterSobel
	FilterSolarize
)

var filterNames = [...]string{
	FilterUnknown:        "unknown",
	FilterBinary:         "binary",
	FilterColorInversion: "colorInversion",
	FilterEightColors:    "eightColors",
	FilterGrayscale:      "grayscale",
	FilterLaplacian:      "laplacian",
	FilterSobel:          "sobel",
	FilterSolarize:       "solarize",
}

// String returns the identifier used by Apply and the catalog.
func (id FilterID) String() string {
	if int(id) < len(filterNames) {
		return filterNames[id]
	}
	return filterNames[FilterUnknown]
}

// ParseFilter maps a filter identifier to its FilterID. Unsupported names give FilterUnknown.
func ParseFilter(name string) FilterID {
	for id, n := range filterNames {
		if id != int(FilterUnknown) && n == name {
			return FilterID(id)
		}
	}
	return FilterUnknown
}

// GrayscaleMode selects how the grayscale filter combines the color channels.
type GrayscaleMode uint8

const (
	// Luminance weights the channels by 0.21, 0.72 and 0.07. It is the default.
	Luminance GrayscaleMode = iota
	// Average takes the mean of the three channels.
	Average
)

func (m GrayscaleMode) String() string {
	if m == Average {
		return "average"
	}
	return "luminance"
}

// ParseGrayscaleMode parses "average" or "luminance". The legacy
// spelling "luminosity" is accepted as well.
func ParseGrayscaleMode(s string) (GrayscaleMode, bool) {
	switch s {
	case "average":
		return Average, true
	case "luminance", "luminosity", "":
		return Luminance, true
	}
	return Luminance, false
}

// Default thresholds used when Params.Threshold is nil.
const (
	DefaultBinaryThreshold   = 122
	DefaultSolarizeThreshold = 105
)

// Params holds the optional filter parameters.
type Params struct {
	// Threshold is clamped to [0, 255]. A nil value selects the filter default.
	Threshold *int
	// Mode is only used by the grayscale filter.
	Mode GrayscaleMode
}

// Threshold is a helper returning a pointer to v, to be used with Params.
func Threshold(v int) *int {
	return &v
}

func (p Params) threshold(def int) int {
	if p.Threshold == nil {
		return def
	}
	return Clamp(*p.Threshold, 0, 255)
}

// ErrInvalidBuffer is returned by Validate for a buffer not matching its dimensions.
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Validate checks that pix holds exactly width*height RGBA pixels.
func Validate(pix []uint8, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: non positive dimensions %dx%d", ErrInvalidBuffer, width, height)
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: length %d, want %d for %dx%d", ErrInvalidBuffer, len(pix), width*height*4, width, height)
	}
	return nil
}

// Apply runs the filter named by id over pix using the current backend.
// An unknown id or a malformed buffer is not an error: pix is returned unchanged.
func Apply(pix []uint8, width, height int, id string, params Params) []uint8 {
	return ApplyFilter(pix, width, height, ParseFilter(id), params)
}

// ApplyFilter is the typed counterpart of Apply.
func ApplyFilter(pix []uint8, width, height int, id FilterID, params Params) []uint8 {
	return applyFilter(CurrentBackend(), pix, width, height, id, params)
}

func applyFilter(b Backend, pix []uint8, width, height int, id FilterID, params Params) []uint8 {
	if err := Validate(pix, width, height); err != nil {
		Logger().Debug("pixfilter: buffer ignored", "filter", id.String(), "error", err)
		return pix
	}
	fn := rowFunc(id, params)
	if fn == nil {
		Logger().Debug("pixfilter: unknown filter ignored", "filter", id.String())
		return pix
	}
	dst := make([]uint8, len(pix))
	b.Run(dst, pix, width, height, fn)

	return dst
}

// rowFunc resolves the filter implementation with its parameters bound.
func rowFunc(id FilterID, params Params) RowFunc {
	switch id {
	case FilterBinary:
		return binary(params.threshold(DefaultBinaryThreshold)).rows()
	case FilterColorInversion:
		return pointFunc(colorInversion).rows()
	case FilterEightColors:
		return pointFunc(eightColors).rows()
	case FilterGrayscale:
		return grayscale(params.Mode).rows()
	case FilterLaplacian:
		return laplacianRows
	case FilterSobel:
		return sobelRows
	case FilterSolarize:
		return solarize(params.threshold(DefaultSolarizeThreshold)).rows()
	}
	return nil
}

// FilterInfo describes a filter for building user controls.
// It carries no behavior: Apply only needs the id and the Params.
type FilterInfo struct {
	Name                 string
	ID                   FilterID
	IsGrayscale          bool
	WithThreshold        bool
	MinThreshold         int
	MaxThreshold         int
	DefaultThreshold     int
	Step                 int
	DefaultGrayscaleMode GrayscaleMode
}

var catalog = [...]FilterInfo{
	{Name: "Binary", ID: FilterBinary, WithThreshold: true, MaxThreshold: 255, DefaultThreshold: DefaultBinaryThreshold, Step: 1},
	{Name: "Color inversion", ID: FilterColorInversion},
	{Name: "Eight colors", ID: FilterEightColors},
	{Name: "Grayscale", ID: FilterGrayscale, IsGrayscale: true, DefaultGrayscaleMode: Luminance},
	{Name: "Laplacian filter", ID: FilterLaplacian},
	{Name: "Sobel filter", ID: FilterSobel},
	{Name: "Solarize", ID: FilterSolarize, WithThreshold: true, MaxThreshold: 255, DefaultThreshold: DefaultSolarizeThreshold, Step: 1},
}

// Catalog returns the description of every supported filter, ordered by id.
func Catalog() []FilterInfo {
	out := make([]FilterInfo, len(catalog))
	copy(out, catalog[:])
	return out
}
