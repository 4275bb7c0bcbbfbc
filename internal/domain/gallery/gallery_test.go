package gallery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/flamesblue/omsk-gallery/internal/domain/gallery"
	"github.com/flamesblue/omsk-gallery/internal/domain/model"
	"github.com/flamesblue/omsk-gallery/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// fakeSearcher maps query -> canned result or error and records the
// limits it was asked for.
type fakeSearcher struct {
	results map[string][]model.Image
	errs    map[string]error
	limits  []int
	calls   []string
}

func (f *fakeSearcher) Search(_ context.Context, query string, limit, _ int) ([]model.Image, error) {
	f.calls = append(f.calls, query)
	f.limits = append(f.limits, limit)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

func TestAggregator_Collect(t *testing.T) {
	ctx := context.Background()

	Convey("Given two queries that share a page identifier", t, func() {
		searcher := &fakeSearcher{
			results: map[string][]model.Image{
				"A": {{ID: 1, Title: "from A"}},
				"B": {{ID: 1, Title: "from B"}, {ID: 2, Title: "only B"}},
			},
		}
		agg := gallery.New(searcher)

		Convey("When collecting", func() {
			items := agg.Collect(ctx, []string{"A", "B"})

			Convey("Then exactly two unique images come back in discovery order", func() {
				So(items, ShouldHaveLength, 2)
				So(items[0].ID, ShouldEqual, 1)
				So(items[1].ID, ShouldEqual, 2)
			})

			Convey("And the shared identifier keeps the first query's fields", func() {
				So(items[0].Title, ShouldEqual, "from A")
			})

			Convey("And exactly one call was made per query", func() {
				So(searcher.calls, ShouldResemble, []string{"A", "B"})
			})
		})
	})

	Convey("Given more results than the configured limit", t, func() {
		searcher := &fakeSearcher{
			results: map[string][]model.Image{
				"A": {{ID: 1}, {ID: 2}},
			},
		}
		agg := gallery.New(searcher, gallery.WithLimit(1))

		Convey("When collecting", func() {
			items := agg.Collect(ctx, []string{"A"})

			Convey("Then only the first encountered image is returned", func() {
				So(items, ShouldHaveLength, 1)
				So(items[0].ID, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a query that fails", t, func() {
		searcher := &fakeSearcher{
			results: map[string][]model.Image{
				"B": {{ID: 7}},
			},
			errs: map[string]error{
				"A": errors.New("timeout"),
			},
		}
		agg := gallery.New(searcher)

		Convey("When collecting", func() {
			items := agg.Collect(ctx, []string{"A", "B"})

			Convey("Then the failure is absorbed and the other query still contributes", func() {
				So(items, ShouldHaveLength, 1)
				So(items[0].ID, ShouldEqual, 7)
			})
		})
	})

	Convey("Given every query fails", t, func() {
		searcher := &fakeSearcher{
			errs: map[string]error{
				"A": errors.New("network"),
				"B": errors.New("network"),
			},
		}
		agg := gallery.New(searcher)

		Convey("When collecting", func() {
			items := agg.Collect(ctx, []string{"A", "B"})

			Convey("Then the result is empty without raising", func() {
				So(items, ShouldHaveLength, 0)
			})
		})
	})
}

func TestAggregator_PerQueryCap(t *testing.T) {
	ctx := context.Background()

	Convey("Given a limit above the per-query request cap", t, func() {
		searcher := &fakeSearcher{}
		agg := gallery.New(searcher, gallery.WithLimit(200))

		Convey("When collecting", func() {
			agg.Collect(ctx, []string{"A"})

			Convey("Then the searcher is asked for at most 50 results", func() {
				So(searcher.limits, ShouldResemble, []int{50})
			})
		})
	})

	Convey("Given a limit below the per-query request cap", t, func() {
		searcher := &fakeSearcher{}
		agg := gallery.New(searcher, gallery.WithLimit(32))

		Convey("When collecting", func() {
			agg.Collect(ctx, []string{"A"})

			Convey("Then the searcher is asked for the limit itself", func() {
				So(searcher.limits, ShouldResemble, []int{32})
			})
		})
	})
}

func TestAggregator_Defaults(t *testing.T) {
	Convey("Given an aggregator with default options", t, func() {
		agg := gallery.New(&fakeSearcher{})

		Convey("Then the default limit applies", func() {
			So(agg.Limit(), ShouldEqual, 30)
		})
	})
}
