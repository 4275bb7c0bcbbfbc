// Package gallery implements the curated image aggregation over an
// external media search service.
package gallery

import (
	"context"

	"github.com/flamesblue/omsk-gallery/internal/domain/dedupe"
	"github.com/flamesblue/omsk-gallery/internal/domain/model"
	"github.com/flamesblue/omsk-gallery/pkg/logger"
	"github.com/flamesblue/omsk-gallery/pkg/metrics"
)

// Default aggregation parameters.
const (
	defaultLimit     = 30
	defaultThumbSize = 800

	// The search service caps a single generator-search request at 50
	// results, regardless of the caller's desired total.
	perQueryCap = 50
)

// Searcher issues one search against the external media service and
// returns the images that carry a retrievable thumbnail.
type Searcher interface {
	Search(ctx context.Context, query string, limit, thumbSize int) ([]model.Image, error)
}

// Aggregator collects unique thumbnailed images across a sequence of
// search queries. It holds no state between invocations; concurrent
// Collect calls are independent.
type Aggregator struct {
	searcher  Searcher
	limit     int
	thumbSize int
	log       logger.Logger
}

// New creates an Aggregator backed by the given searcher.
func New(searcher Searcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		searcher:  searcher,
		limit:     defaultLimit,
		thumbSize: defaultThumbSize,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		a.log = logger.Get()
	}

	return a
}

// Collect runs one search per query, in input order, and merges the
// results into a single list deduplicated by page identifier. The first
// occurrence of an identifier wins; the merged list is truncated to the
// configured limit.
//
// A failing query is logged, counted, and skipped; it never fails the
// aggregation. If every query fails, Collect returns an empty list.
func (a *Aggregator) Collect(ctx context.Context, queries []string) []model.Image {
	set := dedupe.NewSet()

	perQuery := a.limit
	if perQuery > perQueryCap {
		perQuery = perQueryCap
	}

	for _, q := range queries {
		images, err := a.searcher.Search(ctx, q, perQuery, a.thumbSize)
		if err != nil {
			metrics.RecordSearchError()
			a.log.Warn(ctx, "search failed, skipping query",
				logger.String("query", q),
				logger.Error(err),
			)
			continue
		}

		for _, img := range images {
			if !set.Add(img) {
				metrics.RecordDuplicateDropped()
			}
		}
	}

	items := set.Items(a.limit)
	a.log.Debug(ctx, "aggregation finished",
		logger.Int("queries", len(queries)),
		logger.Int("unique", set.Len()),
		logger.Int("returned", len(items)),
	)
	return items
}

// Limit returns the configured maximum result count.
func (a *Aggregator) Limit() int {
	return a.limit
}
