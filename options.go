package inkwill

import "github.com/tsawler/inkwill/geom"

// ConvertOptions holds configuration for decoding and export.
type ConvertOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Rendering options
	mode          geom.Mode
	precision     int
	fallbackColor string

	// Decoding options
	lenient bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		pages:         nil, // nil means all pages
		mode:          geom.ModePolyline,
		precision:     2,
		fallbackColor: "black",
		lenient:       false,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		mode:          o.mode,
		precision:     o.precision,
		fallbackColor: o.fallbackColor,
		lenient:       o.lenient,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
