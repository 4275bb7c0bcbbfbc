// Package dedupe provides an insertion-ordered, first-write-wins image set.
package dedupe

import (
	"github.com/flamesblue/omsk-gallery/internal/domain/model"
)

// Set collects images keyed by their page identifier. The first image
// added under a given identifier wins; later additions with the same
// identifier are dropped. Iteration order is insertion order.
//
// A Set lives for a single aggregation and is not safe for concurrent
// use; each request owns its own Set.
type Set struct {
	seen  map[int]struct{}
	items []model.Image
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		seen: make(map[int]struct{}),
	}
}

// Add inserts img unless its ID has been seen before.
// Returns true if the image was inserted, false if it was a duplicate.
func (s *Set) Add(img model.Image) bool {
	if _, ok := s.seen[img.ID]; ok {
		return false
	}
	s.seen[img.ID] = struct{}{}
	s.items = append(s.items, img)
	return true
}

// Items returns the collected images in insertion order, truncated to
// at most limit entries. A non-positive limit returns all items.
func (s *Set) Items(limit int) []model.Image {
	if limit > 0 && len(s.items) > limit {
		return s.items[:limit]
	}
	return s.items
}

// Len returns the number of unique images collected.
func (s *Set) Len() int {
	return len(s.items)
}
