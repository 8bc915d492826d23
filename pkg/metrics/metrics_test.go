package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should use the default namespace", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "podium")
				So(manager.subsystem, ShouldEqual, "medals")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithLatencyBuckets([]float64{1.0, 0.1, 0.5, 0.5, -1}),
				WithLoadBuckets([]float64{100, 1000}),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options are applied", func() {
				So(manager.namespace, ShouldEqual, "test_namespace")
				So(manager.subsystem, ShouldEqual, "test_subsystem")
				So(manager.latencyBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
				So(manager.loadBuckets, ShouldResemble, []float64{100, 1000})
			})

			Convey("And metrics carry the constant labels", func() {
				manager.queries.WithLabelValues("lookup", "hit").Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() != "test_namespace_test_subsystem_queries_total" {
						continue
					}
					found = true
					labels := map[string]string{}
					for _, l := range f.GetMetric()[0].GetLabel() {
						labels[l.GetName()] = l.GetValue()
					}
					So(labels["env"], ShouldEqual, "test")
					So(labels["kind"], ShouldEqual, "lookup")
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When empty options are given", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithLatencyBuckets(nil),
				WithLoadBuckets([]float64{0}),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "podium")
				So(manager.latencyBuckets, ShouldHaveLength, 13)
				So(manager.loadBuckets[0], ShouldEqual, 10)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording dataset metrics", func() {
			UpdateDatasetRowsLoaded("events", 271116)
			RecordDatasetRowsDropped("exact_duplicate", 2)
			RecordDatasetRowsDropped("exact_duplicate", 3)
			UpdateSeasonRows("Summer", 10)
			UpdateTallyCountries("Summer", 4)

			Convey("Then the values are stored", func() {
				So(value(globalManager.datasetRowsLoaded.WithLabelValues("events")), ShouldEqual, 271116)
				So(value(globalManager.datasetRowsDropped.WithLabelValues("exact_duplicate")), ShouldBeGreaterThanOrEqualTo, 5)
				So(value(globalManager.seasonRows.WithLabelValues("Summer")), ShouldEqual, 10)
				So(value(globalManager.tallyCountries.WithLabelValues("Summer")), ShouldEqual, 4)
			})
		})

		Convey("When recording queries", func() {
			before := value(globalManager.queries.WithLabelValues("trend", "hit"))
			RecordQuery("trend", "hit")

			Convey("Then the counter increases", func() {
				So(value(globalManager.queries.WithLabelValues("trend", "hit")), ShouldEqual, before+1)
			})
		})

		Convey("When recording latency, HTTP, error and system metrics", func() {
			So(func() {
				RecordDatasetLoadDuration(120)
				RecordQueryLatency("lookup", 0.2)
				RecordHTTPRequest("country", "GET", "200")
				RecordHTTPRequestDuration("country", "GET", "200", 1.5)
				RecordErrorByType("not_found", "medium")
				RecordErrorByEndpoint("country", "GET", "not_found")
				RecordErrorLatency("http", "not_found", 1.0)
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("When gathering from the registry", func() {
			families, err := GetRegistry().Gather()

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

// value reads the current value of a gauge or counter.
func value(c prometheus.Metric) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return -1
	}
	if m.Gauge != nil {
		return m.Gauge.GetValue()
	}
	return m.Counter.GetValue()
}
