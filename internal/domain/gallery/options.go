package gallery

import (
	"github.com/flamesblue/omsk-gallery/pkg/logger"
)

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithLimit sets the maximum number of images returned per aggregation.
func WithLimit(limit int) Option {
	return func(a *Aggregator) {
		if limit > 0 {
			a.limit = limit
		}
	}
}

// WithThumbSize sets the requested thumbnail pixel edge length.
func WithThumbSize(size int) Option {
	return func(a *Aggregator) {
		if size > 0 {
			a.thumbSize = size
		}
	}
}

// WithLogger sets a custom logger for the aggregator.
func WithLogger(log logger.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}
