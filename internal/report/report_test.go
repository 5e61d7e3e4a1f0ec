package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func medals() []model.Medal {
	d := time.Date(2024, 7, 27, 0, 0, 0, 0, time.UTC)
	return []model.Medal{
		{NOC: "FRA", Tier: model.Bronze, Name: "CYSIQUE Sarah", Discipline: "Judo", Date: d},
		{NOC: "USA", Tier: model.Gold, Name: "LEDECKY Katie", Discipline: "Swimming", Date: d},
		{NOC: "FRA", Tier: model.Gold, Name: "RINER Teddy", Discipline: "Judo", Date: d.AddDate(0, 0, 1)},
		{NOC: "USA", Tier: model.Silver, Name: "SMITH Regan", Discipline: "Swimming", Date: d},
	}
}

func TestStandings(t *testing.T) {
	Convey("Given medal rows", t, func() {
		Convey("When grouping by country", func() {
			rows, err := report.Standings(medals(), filter.All(), report.Config{By: "country"})
			So(err, ShouldBeNil)

			Convey("Then rows are ranked by gold, silver, bronze", func() {
				So(len(rows), ShouldEqual, 2)
				So(rows[0].Key, ShouldEqual, "USA")
				So(rows[0].Label, ShouldEqual, "🇺🇸 USA")
				So(rows[0].Total, ShouldEqual, 2)
				So(rows[1].Rank, ShouldEqual, 2)
			})
		})

		Convey("When grouping by athlete with a limit", func() {
			rows, err := report.Standings(medals(), filter.All(), report.Config{By: "Athlete", Top: 2})
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Label, ShouldEqual, "LEDECKY Katie (USA)")
			So(rows[1].Label, ShouldEqual, "RINER Teddy (FRA)")
		})

		Convey("When grouping by date with a tier filter", func() {
			sel := filter.Selection{MedalTypes: filter.Only(model.Gold)}
			rows, err := report.Standings(medals(), sel, report.Config{By: "date"})
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Key, ShouldEqual, "2024-07-27")
		})

		Convey("When the grouping is unknown", func() {
			_, err := report.Standings(medals(), filter.All(), report.Config{By: "venue"})
			So(errors.Is(err, report.ErrUnknownGrouping), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "athlete, continent, country, date, discipline")
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given report rows", t, func() {
		rows := []report.Row{
			{Rank: 1, Key: "USA", Label: "USA", Gold: 1040, Silver: 1, Total: 1041},
			{Rank: 2, Key: "FRA", Label: "FRA", Gold: 1, Bronze: 1, Total: 2},
		}
		var buf bytes.Buffer

		Convey("When rendering a table", func() {
			So(report.Write(&buf, rows, report.FormatTable), ShouldBeNil)

			Convey("Then numbers are humanized and summed", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "1,040")
				So(out, ShouldContainSubstring, "1,043")
				So(len(strings.Split(strings.TrimSpace(out), "\n")), ShouldEqual, 4)
			})
		})

		Convey("When rendering JSON", func() {
			So(report.Write(&buf, rows, report.FormatJSON), ShouldBeNil)
			var got []report.Row
			So(json.Unmarshal(buf.Bytes(), &got), ShouldBeNil)
			So(got, ShouldResemble, rows)
		})

		Convey("When rendering CSV", func() {
			So(report.Write(&buf, rows, report.FormatCSV), ShouldBeNil)
			So(buf.String(), ShouldStartWith, "rank,key,gold,silver,bronze,total\n1,USA,1040,1,0,1041\n")
		})

		Convey("When the format is unknown", func() {
			So(report.Write(&buf, rows, "xml"), ShouldNotBeNil)
		})
	})
}

func TestVerify(t *testing.T) {
	Convey("Given medal rows and published totals", t, func() {
		Convey("When they agree", func() {
			totals := []model.MedalTotal{
				{NOC: "USA", Gold: 1, Silver: 1, Total: 2},
				{NOC: "FRA", Gold: 1, Bronze: 1, Total: 2},
			}
			So(report.Verify(medals(), totals), ShouldBeEmpty)
		})

		Convey("When they disagree", func() {
			totals := []model.MedalTotal{
				{NOC: "USA", Gold: 2, Silver: 1, Total: 3},
				{NOC: "FRA", Gold: 1, Bronze: 1, Total: 2},
				{NOC: "JPN", Gold: 1, Total: 1},
			}
			got := report.Verify(medals(), totals)

			Convey("Then each differing country is reported once, by NOC", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].NOC, ShouldEqual, "JPN")
				So(got[0].Computed.Total, ShouldEqual, 0)
				So(got[1].NOC, ShouldEqual, "USA")
				So(got[1].Published.Gold, ShouldEqual, 2)
				So(got[1].Computed.Gold, ShouldEqual, 1)
			})
		})
	})
}
