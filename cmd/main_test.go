package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

const (
	eventsFixture  = "../internal/adapters/dataset/testdata/athlete_events.csv"
	regionsFixture = "../internal/adapters/dataset/testdata/noc_regions.csv"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_EVENTS_PATH", eventsFixture)
			_ = os.Setenv("PODIUM_MAX_TALLY_LIMIT", "50")
			defer func() {
				_ = os.Unsetenv("PODIUM_ADDR")
				_ = os.Unsetenv("PODIUM_EVENTS_PATH")
				_ = os.Unsetenv("PODIUM_MAX_TALLY_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.EventsPath, convey.ShouldEqual, eventsFixture)
				convey.So(cfg.MaxTallyLimit, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager()
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should return once the context ends", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given a started service and the default config", t, func() {
		ctx := context.Background()
		cfg := config.New()
		svc := app.New(app.WithDataPaths(eventsFixture, regionsFixture))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		handler := newHandler(ctx, cfg, svc)
		get := func(target string, header http.Header) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
			for k, v := range header {
				req.Header[k] = v
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			return w
		}

		convey.Convey("Then the country lookup is served end to end", func() {
			w := get("/country/usa", nil)
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, `"total":3`)
		})

		convey.Convey("And an unknown NOC is not found", func() {
			convey.So(get("/country/ZZZ", nil).Code, convey.ShouldEqual, http.StatusNotFound)
		})

		convey.Convey("And the landing page, docs and dashboard are mounted", func() {
			convey.So(get("/", nil).Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/api-docs", nil).Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/openapi.yaml", nil).Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/dashboard", nil).Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("And readiness reports ok", func() {
			w := get("/healthz", http.Header{"Accept": {"application/json"}})
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("And cross-origin requests are allowed", func() {
			w := get("/years", http.Header{"Origin": {"http://example.com"}})
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Header().Get("Access-Control-Allow-Origin"), convey.ShouldEqual, "*")
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("PODIUM_MAX_TALLY_LIMIT", "0")
			defer func() { _ = os.Unsetenv("PODIUM_MAX_TALLY_LIMIT") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the dataset files are missing", func() {
			svc := app.New(app.WithDataPaths("missing-events.csv", "missing-regions.csv"))

			convey.Convey("Then the service should refuse to start", func() {
				convey.So(svc.Start(context.Background()), convey.ShouldNotBeNil)
			})
		})
	})
}
