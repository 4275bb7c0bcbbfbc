package commons_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flamesblue/omsk-gallery/internal/adapters/commons"
	. "github.com/smartystreets/goconvey/convey"
)

const twoPageResponse = `{
	"query": {
		"pages": {
			"101": {
				"pageid": 101,
				"title": "File:Omsk at night.jpg",
				"fullurl": "https://commons.wikimedia.org/wiki/File:Omsk_at_night.jpg",
				"thumbnail": {
					"source": "https://upload.wikimedia.org/thumb/omsk_night.jpg",
					"width": 1024,
					"height": 683
				}
			},
			"55": {
				"pageid": 55,
				"title": "File:Irtysh embankment.jpg",
				"fullurl": "https://commons.wikimedia.org/wiki/File:Irtysh_embankment.jpg",
				"thumbnail": {
					"source": "https://upload.wikimedia.org/thumb/irtysh.jpg",
					"width": 1024,
					"height": 768
				}
			}
		}
	}
}`

const mixedThumbnailResponse = `{
	"query": {
		"pages": {
			"1": {
				"pageid": 1,
				"title": "File:With thumb.jpg",
				"fullurl": "https://commons.wikimedia.org/wiki/File:With_thumb.jpg",
				"thumbnail": {"source": "https://upload.wikimedia.org/thumb/a.jpg", "width": 800, "height": 600}
			},
			"2": {
				"pageid": 2,
				"title": "Category:No thumbnail here",
				"fullurl": "https://commons.wikimedia.org/wiki/Category:No_thumbnail_here"
			}
		}
	}
}`

func TestClient_Search(t *testing.T) {
	ctx := context.Background()

	Convey("Given a search service returning two thumbnailed pages", t, func() {
		var gotQuery map[string]string
		var gotUserAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			gotQuery = map[string]string{}
			for key, vals := range r.URL.Query() {
				gotQuery[key] = vals[0]
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(twoPageResponse))
		}))
		defer srv.Close()

		client := commons.New(commons.WithBaseURL(srv.URL))

		Convey("When searching", func() {
			images, err := client.Search(ctx, "Омск ночь", 32, 1024)

			Convey("Then both pages come back in response order", func() {
				So(err, ShouldBeNil)
				So(images, ShouldHaveLength, 2)
				So(images[0].ID, ShouldEqual, 101)
				So(images[1].ID, ShouldEqual, 55)
			})

			Convey("And image fields are filled from the page", func() {
				So(images[0].Title, ShouldEqual, "File:Omsk at night.jpg")
				So(images[0].PageURL, ShouldEqual, "https://commons.wikimedia.org/wiki/File:Omsk_at_night.jpg")
				So(images[0].Thumbnail, ShouldEqual, "https://upload.wikimedia.org/thumb/omsk_night.jpg")
				So(images[0].Width, ShouldEqual, 1024)
				So(images[0].Height, ShouldEqual, 683)
				So(images[0].Source, ShouldEqual, "Wikimedia Commons")
				So(images[0].License, ShouldEqual, "See source page")
			})

			Convey("And the request carries the generator-search parameters", func() {
				So(gotQuery["action"], ShouldEqual, "query")
				So(gotQuery["format"], ShouldEqual, "json")
				So(gotQuery["generator"], ShouldEqual, "search")
				So(gotQuery["gsrsearch"], ShouldEqual, "Омск ночь")
				So(gotQuery["gsrlimit"], ShouldEqual, "32")
				So(gotQuery["prop"], ShouldEqual, "pageimages|info")
				So(gotQuery["inprop"], ShouldEqual, "url")
				So(gotQuery["pithumbsize"], ShouldEqual, "1024")
			})

			Convey("And the identifying User-Agent is sent", func() {
				So(gotUserAgent, ShouldEqual, "Flames.Blue Omsk Gallery/1.0")
			})
		})

		Convey("When searching with a limit above the per-request cap", func() {
			_, err := client.Search(ctx, "Омск", 200, 800)

			Convey("Then the request is capped at 50", func() {
				So(err, ShouldBeNil)
				So(gotQuery["gsrlimit"], ShouldEqual, "50")
			})
		})
	})

	Convey("Given a page without a thumbnail", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(mixedThumbnailResponse))
		}))
		defer srv.Close()

		client := commons.New(commons.WithBaseURL(srv.URL))

		Convey("When searching", func() {
			images, err := client.Search(ctx, "anything", 10, 800)

			Convey("Then the thumbnail-less page is excluded", func() {
				So(err, ShouldBeNil)
				So(images, ShouldHaveLength, 1)
				So(images[0].ID, ShouldEqual, 1)
			})
		})
	})

	Convey("Given an empty result set", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"batchcomplete":""}`))
		}))
		defer srv.Close()

		client := commons.New(commons.WithBaseURL(srv.URL))

		Convey("When searching", func() {
			images, err := client.Search(ctx, "no hits", 10, 800)

			Convey("Then no images and no error are returned", func() {
				So(err, ShouldBeNil)
				So(images, ShouldHaveLength, 0)
			})
		})
	})
}

func TestClient_SearchErrors(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service returning a server error", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := commons.New(commons.WithBaseURL(srv.URL))

		Convey("When searching", func() {
			_, err := client.Search(ctx, "q", 10, 800)

			Convey("Then an unexpected status error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unexpected response status")
			})
		})
	})

	Convey("Given a service returning malformed JSON", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"query": {"pages": [1,2,3]}}`))
		}))
		defer srv.Close()

		client := commons.New(commons.WithBaseURL(srv.URL))

		Convey("When searching", func() {
			_, err := client.Search(ctx, "q", 10, 800)

			Convey("Then a decode error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a service that hangs past the client timeout", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(twoPageResponse))
		}))
		defer srv.Close()

		client := commons.New(
			commons.WithBaseURL(srv.URL),
			commons.WithTimeout(20*time.Millisecond),
		)

		Convey("When searching", func() {
			_, err := client.Search(ctx, "q", 10, 800)

			Convey("Then the call fails instead of blocking", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
