// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default engine: estimated metrics, all face images assumed present
//	e := cardface.NewEngine()
//
//	// Font-backed metrics and a real asset store (dependency injection)
//	e := cardface.NewEngine(
//	    cardface.WithMeasurer(fontmeasure.Default()),
//	    cardface.WithCatalog(store),
//	)
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	measurer  Measurer
	catalog   Catalog
	faceScale float64
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		measurer:  EstimateMeasurer{},
		catalog:   StandardCatalog{},
		faceScale: FaceCardScaleFactor,
	}
}

// WithMeasurer sets the text measurer used to center pips and size corner
// indices. A nil measurer keeps the default estimate.
func WithMeasurer(m Measurer) EngineOption {
	return func(o *engineOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithCatalog sets the asset catalog consulted before emitting a face image.
// A nil catalog keeps the default, which assumes every face image exists.
func WithCatalog(c Catalog) EngineOption {
	return func(o *engineOptions) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithFaceScale sets the fraction of each viewport dimension covered by the
// inner face rectangle (images and card back). Values outside (0, 1] are
// ignored.
func WithFaceScale(scale float64) EngineOption {
	return func(o *engineOptions) {
		if scale > 0 && scale <= 1 {
			o.faceScale = scale
		}
	}
}
