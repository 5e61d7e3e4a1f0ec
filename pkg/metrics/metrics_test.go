package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created with the default names", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "glorypath")
				So(manager.subsystem, ShouldEqual, "dashboard")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.pageBuilds.WithLabelValues("overview").Inc()

			Convey("Then metrics are registered under the custom names", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_page_builds_total")
			})
		})

		Convey("When empty options are given", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "glorypath")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording dataset metrics", func() {
			before, _ := Value("dataset_load_failures_total", map[string]string{"table": "record_test"})
			RecordDatasetLoadFailure("record_test")
			RecordDatasetLoad("record_test", 1.5, 42)
			RecordDatasetSkippedRows("record_test", 2)

			Convey("Then the counters move", func() {
				after, err := Value("dataset_load_failures_total", map[string]string{"table": "record_test"})
				So(err, ShouldBeNil)
				So(after-before, ShouldEqual, 1)

				rows, err := Value("dataset_rows", map[string]string{"table": "record_test"})
				So(err, ShouldBeNil)
				So(rows, ShouldEqual, 42)
			})
		})

		Convey("When recording cache and watcher metrics", func() {
			So(func() {
				RecordCacheHit("record_test")
				RecordCacheMiss("record_test")
				RecordCacheInvalidation("record_test")
				RecordWatcherEvent("write")
				RecordWatcherError()
			}, ShouldNotPanic)

			hits, err := Value("cache_hits_total", map[string]string{"table": "record_test"})
			So(err, ShouldBeNil)
			So(hits, ShouldBeGreaterThanOrEqualTo, 1)
		})

		Convey("When recording page and HTTP metrics", func() {
			So(func() {
				RecordPageBuild("overview", 3)
				RecordFilterEvaluation(true)
				RecordFilterEvaluation(false)
				RecordExportRows("medals", 10)
				RecordHTTPRequest("/api/overview", "GET", "200")
				RecordHTTPRequestDuration("/api/overview", "GET", "200", 1.2)
				RecordErrorByComponent("api", "bad_request")
				RecordErrorByEndpoint("/api/overview", "GET", "bad_request")
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)

			builds, err := Value("page_build_duration_milliseconds", map[string]string{"page": "overview"})
			So(err, ShouldBeNil)
			So(builds, ShouldBeGreaterThanOrEqualTo, 1)
		})

		Convey("When asking for an unknown metric", func() {
			_, err := Value("no_such_metric", nil)
			So(err, ShouldEqual, ErrUnknownMetric)
		})

		Convey("Then the custom registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
