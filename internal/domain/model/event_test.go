package model_test

import (
	"testing"

	model "github.com/okian/podium/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestMergedRecordKeys(t *testing.T) {
	convey.Convey("Given two relay team members sharing one outcome", t, func() {
		a := model.MergedRecord{EventRecord: model.EventRecord{
			ID: "1", Name: "A", Team: "United States", NOC: "USA", Games: "2000 Summer",
			Year: 2000, Season: "Summer", City: "Sydney", Sport: "Swimming",
			Event: "Swimming Men's 4 x 100 metres Freestyle Relay", Medal: "Silver",
		}, Region: "USA"}
		b := a
		b.ID, b.Name = "2", "B"

		convey.Convey("Then their team keys should match", func() {
			convey.So(a.TeamKey(), convey.ShouldEqual, b.TeamKey())
		})

		convey.Convey("And their row keys should differ", func() {
			convey.So(a.RowKey(), convey.ShouldNotEqual, b.RowKey())
		})

		convey.Convey("When the year differs", func() {
			c := a
			c.Year = 2004

			convey.Convey("Then the team key should differ", func() {
				convey.So(c.TeamKey(), convey.ShouldNotEqual, a.TeamKey())
			})
		})
	})
}

func TestMergedRecordRegionKey(t *testing.T) {
	convey.Convey("Given merged records", t, func() {
		convey.Convey("When the region is known", func() {
			r := model.MergedRecord{EventRecord: model.EventRecord{NOC: "USA"}, Region: "USA"}
			convey.So(r.RegionKey(), convey.ShouldEqual, "USA")
		})

		convey.Convey("When the region is missing", func() {
			r := model.MergedRecord{EventRecord: model.EventRecord{NOC: "SGP"}}

			convey.Convey("Then the NOC is used as the key", func() {
				convey.So(r.RegionKey(), convey.ShouldEqual, "SGP")
			})
		})
	})
}

func TestMedalCounts(t *testing.T) {
	convey.Convey("Given empty medal counts", t, func() {
		var c model.MedalCounts

		convey.Convey("When adding medals and non-medals", func() {
			for _, m := range []string{"Gold", "Gold", "Silver", "No_Medal", "Bronze", ""} {
				c.Add(m)
			}

			convey.Convey("Then only real medals are counted", func() {
				convey.So(c.Gold, convey.ShouldEqual, 2)
				convey.So(c.Silver, convey.ShouldEqual, 1)
				convey.So(c.Bronze, convey.ShouldEqual, 1)
				convey.So(c.Total, convey.ShouldEqual, c.Gold+c.Silver+c.Bronze)
			})
		})
	})
}

func TestParseSeason(t *testing.T) {
	convey.Convey("Given season strings", t, func() {
		s, ok := model.ParseSeason("Summer")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s, convey.ShouldEqual, model.SeasonSummer)

		_, ok = model.ParseSeason("summer")
		convey.So(ok, convey.ShouldBeFalse)

		_, ok = model.ParseSeason("Autumn")
		convey.So(ok, convey.ShouldBeFalse)

		convey.So(model.Seasons(), convey.ShouldResemble, []model.Season{model.SeasonSummer, model.SeasonWinter})
	})
}

func TestTable(t *testing.T) {
	convey.Convey("Given a table", t, func() {
		rows := []model.RegionRecord{{NOC: "USA", Region: "USA"}, {NOC: "CHN", Region: "China"}}
		tbl := model.NewTable([]string{"NOC", "region"}, rows)

		convey.Convey("Then it should not alias the input slice", func() {
			rows[0].Region = "changed"
			convey.So(tbl.At(0).Region, convey.ShouldEqual, "USA")
		})

		convey.Convey("And Missing should report absent columns", func() {
			convey.So(tbl.Missing("NOC"), convey.ShouldBeEmpty)
			convey.So(tbl.Missing("NOC", "notes"), convey.ShouldResemble, []string{"notes"})
		})

		convey.Convey("When filtering", func() {
			out := tbl.Filter(func(r model.RegionRecord) bool { return r.NOC == "CHN" })

			convey.Convey("Then a new table is returned and the original is unchanged", func() {
				convey.So(out.Len(), convey.ShouldEqual, 1)
				convey.So(out.At(0).Region, convey.ShouldEqual, "China")
				convey.So(tbl.Len(), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When mapping", func() {
			out := tbl.Map(func(r model.RegionRecord) model.RegionRecord {
				r.Notes = "x"
				return r
			})

			convey.So(out.At(1).Notes, convey.ShouldEqual, "x")
			convey.So(tbl.At(1).Notes, convey.ShouldEqual, "")
		})
	})
}
