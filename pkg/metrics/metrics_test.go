package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a new metrics manager on its own registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("gallery"),
			WithPrometheusRegistry(reg),
		)

		Convey("Then it should be created with all metrics registered", func() {
			So(m, ShouldNotBeNil)

			m.searchRequests.Inc()
			m.httpRequests.WithLabelValues("photos", "GET", "200").Inc()

			families, err := reg.Gather()
			So(err, ShouldBeNil)

			names := make([]string, 0, len(families))
			for _, f := range families {
				names = append(names, f.GetName())
			}
			joined := strings.Join(names, ",")
			So(joined, ShouldContainSubstring, "test_gallery_search_requests_total")
			So(joined, ShouldContainSubstring, "test_gallery_http_requests_total")
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording through the package-level helpers", func() {
			RecordHTTPRequest("photos", "GET", "200")
			RecordHTTPRequestDuration("photos", "GET", "200", 12.5)
			RecordSearchRequest()
			RecordSearchError()
			RecordSearchLatency(42)
			UpdateImagesReturned(7)
			RecordDuplicateDropped()
			RecordPageSkipped()
			RecordDBProbe()
			UpdateDBProbeUp(true)
			UpdateDBProbeUp(false)
			UpdateSystemMemoryUsage(1024)
			UpdateSystemGoroutineCount(10)

			Convey("Then the custom registry should gather without error", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
