package tally_test

import (
	"errors"
	"testing"

	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/tally"
	. "github.com/smartystreets/goconvey/convey"
)

var mergedColumns = []string{"ID", "Team", "NOC", "Games", "Year", "Season", "City", "Sport", "Event", "Medal", "region", "notes"}

func row(noc, region string, year int, event, medal string) model.MergedRecord {
	return model.MergedRecord{
		EventRecord: model.EventRecord{
			Team: noc, NOC: noc, Games: "g", Year: year, Season: "Summer",
			City: "c", Sport: "s", Event: event, Medal: medal,
		},
		Region: region,
	}
}

func TestTally(t *testing.T) {
	Convey("Given USA rows with a duplicated team outcome", t, func() {
		tbl := model.NewTable(mergedColumns, []model.MergedRecord{
			row("USA", "USA", 2000, "Relay", "Gold"),
			row("USA", "USA", 2000, "Relay", "Gold"),
			row("USA", "USA", 2000, "Sprint", "Silver"),
			row("CHN", "China", 2000, "Dive", "Bronze"),
			row("IND", "India", 2000, "Run", "No_Medal"),
		})

		Convey("When deduplicating and tallying", func() {
			tt, err := tally.Tally(dedupe.Dedupe(tbl))
			So(err, ShouldBeNil)

			Convey("Then USA has one gold and one silver", func() {
				usa, ok := tally.LookupCountry("USA", tt)
				So(ok, ShouldBeTrue)
				So(usa, ShouldResemble, tally.MedalDetails{Gold: 1, Silver: 1, Bronze: 0, Total: 2})
			})

			Convey("And countries with only No_Medal rows appear with zeros", func() {
				ind, ok := tally.LookupCountry("IND", tt)
				So(ok, ShouldBeTrue)
				So(ind, ShouldResemble, tally.MedalDetails{})
			})

			Convey("And Total equals the sum of the medal columns for every country", func() {
				for _, code := range tt.Codes() {
					c, _ := tally.LookupCountry(code, tt)
					So(c.Total, ShouldEqual, c.Gold+c.Silver+c.Bronze)
				}
			})

			Convey("And codes are sorted", func() {
				So(tt.Codes(), ShouldResemble, []string{"CHN", "IND", "USA"})
				So(tt.Len(), ShouldEqual, 3)
			})

			Convey("And unknown or differently cased codes are not found", func() {
				_, ok := tally.LookupCountry("ZZZ", tt)
				So(ok, ShouldBeFalse)
				_, ok = tally.LookupCountry("usa", tt)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When tallying without dedupe", func() {
			tt, err := tally.Tally(tbl)
			So(err, ShouldBeNil)

			Convey("Then the team gold is counted per athlete row", func() {
				usa, _ := tally.LookupCountry("USA", tt)
				So(usa.Gold, ShouldEqual, 2)
			})
		})
	})

	Convey("Given a table without a Medal column", t, func() {
		tbl := model.NewTable([]string{"NOC", "Year"}, []model.MergedRecord{row("USA", "USA", 2000, "e", "Gold")})
		_, err := tally.Tally(tbl)

		Convey("Then Tally fails with a schema error", func() {
			So(errors.Is(err, tally.ErrSchema), ShouldBeTrue)
			So(errors.Is(err, model.ErrSchema), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "Medal")
		})
	})
}

func TestRanked(t *testing.T) {
	Convey("Given a tally", t, func() {
		tbl := model.NewTable(mergedColumns, []model.MergedRecord{
			row("AAA", "A", 2000, "e1", "Bronze"),
			row("AAA", "A", 2000, "e2", "Bronze"),
			row("BBB", "B", 2000, "e1", "Gold"),
			row("BBB", "B", 2000, "e2", "Bronze"),
			row("CCC", "C", 2000, "e1", "Gold"),
			row("DDD", "D", 2000, "e1", "No_Medal"),
		})
		tt, err := tally.Tally(tbl)
		So(err, ShouldBeNil)

		Convey("When ranking all rows", func() {
			ranked := tally.Ranked(tt, 0)

			Convey("Then rows are ordered by total and then gold", func() {
				So(len(ranked), ShouldEqual, 4)
				So(ranked[0].NOC, ShouldEqual, "BBB")
				So(ranked[1].NOC, ShouldEqual, "AAA")
				So(ranked[2].NOC, ShouldEqual, "CCC")
				So(ranked[3].NOC, ShouldEqual, "DDD")
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[3].Rank, ShouldEqual, 4)
				So(ranked[0].Region, ShouldEqual, "B")
			})
		})

		Convey("When limiting", func() {
			So(len(tally.Ranked(tt, 2)), ShouldEqual, 2)
		})
	})
}
