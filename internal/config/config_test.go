package config_test

import (
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.EventsPath, convey.ShouldEqual, "data/athlete_events.csv")
			convey.So(cfg.RegionsPath, convey.ShouldEqual, "data/noc_regions.csv")
			convey.So(cfg.DedupeTeamEvents, convey.ShouldBeTrue)
			convey.So(cfg.MaxTallyLimit, convey.ShouldEqual, 250)
			convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"*"})
			convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 0)
			convey.So(cfg.RateLimitBurst, convey.ShouldEqual, 20)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
