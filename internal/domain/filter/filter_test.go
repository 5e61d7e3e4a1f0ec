package filter_test

import (
	"errors"
	"testing"

	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
	. "github.com/smartystreets/goconvey/convey"
)

func medals() []model.Medal {
	return []model.Medal{
		{NOC: "USA", Tier: model.Gold, Discipline: "Swimming"},
		{NOC: "FRA", Tier: model.Silver, Discipline: "Judo"},
		{NOC: "JPN", Tier: model.Bronze, Discipline: "Judo"},
		{NOC: "CAN", Tier: model.Gold, Discipline: "Athletics"},
		{NOC: "ZZZ", Tier: model.Bronze, Discipline: "Athletics"},
	}
}

func nocs(rows []model.Medal) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.NOC
	}
	return out
}

func TestApply(t *testing.T) {
	Convey("Given a medal table", t, func() {
		rows := medals()

		Convey("When the selection restricts nothing", func() {
			got := filter.Apply(rows, filter.All())

			Convey("Then the rows come back unchanged", func() {
				So(got, ShouldResemble, rows)
			})

			Convey("And the result does not alias the input", func() {
				got[0].NOC = "XXX"
				So(rows[0].NOC, ShouldEqual, "USA")
			})
		})

		Convey("When all three tiers are selected explicitly", func() {
			sel := filter.Selection{MedalTypes: filter.Only(model.Gold, model.Silver, model.Bronze)}
			So(filter.Apply(rows, sel), ShouldResemble, rows)
		})

		Convey("When the medal type set is empty", func() {
			empty := filter.Selection{MedalTypes: filter.Only[model.Tier]()}
			all := filter.Selection{MedalTypes: filter.Only(model.Gold, model.Silver, model.Bronze)}

			Convey("Then it behaves exactly like all tiers", func() {
				So(filter.Apply(rows, empty), ShouldResemble, filter.Apply(rows, all))
				So(len(filter.Apply(rows, empty)), ShouldEqual, len(rows))
			})
		})

		Convey("When restricting by country", func() {
			sel := filter.Selection{Countries: filter.Only("USA", "FRA")}
			So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"USA", "FRA"})
		})

		Convey("When the country set is explicitly empty", func() {
			sel := filter.Selection{Countries: filter.Only[string]()}
			So(filter.Apply(rows, sel), ShouldBeEmpty)
		})

		Convey("When restricting by continent", func() {
			sel := filter.Selection{Continents: filter.Only(reference.NorthAmerica)}
			So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"USA", "CAN"})

			Convey("Then unknown NOCs are matched through Other", func() {
				sel := filter.Selection{Continents: filter.Only(reference.Other)}
				So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"ZZZ"})
			})
		})

		Convey("When countries and continents are both restricted", func() {
			sel := filter.Selection{
				Countries:  filter.Only("USA", "FRA"),
				Continents: filter.Only(reference.Europe),
			}

			Convey("Then both predicates must hold", func() {
				So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"FRA"})
			})
		})

		Convey("When restricting by sport", func() {
			sel := filter.Selection{Sports: filter.Only("Judo")}
			So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"FRA", "JPN"})
		})

		Convey("When restricting by medal type", func() {
			sel := filter.Selection{MedalTypes: filter.Only(model.Gold)}
			So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"USA", "CAN"})
		})

		Convey("When every field is restricted", func() {
			sel := filter.Selection{
				Countries:  filter.Only("USA", "CAN", "FRA"),
				Continents: filter.Only(reference.NorthAmerica),
				Sports:     filter.Only("Athletics"),
				MedalTypes: filter.Only(model.Gold),
			}
			So(nocs(filter.Apply(rows, sel)), ShouldResemble, []string{"CAN"})
		})
	})
}

func TestApplySkipsMissingColumns(t *testing.T) {
	Convey("Given tables without some filter columns", t, func() {
		athletes := []model.Athlete{{Name: "A", NOC: "FRA"}, {Name: "B", NOC: "USA"}}
		events := []model.Event{{Event: "100m", Sport: "Athletics"}, {Event: "Kata", Sport: "Judo"}}
		venues := []model.Venue{{Name: "Stade de France"}}

		Convey("When filtering athletes by sport and medal type", func() {
			sel := filter.Selection{Sports: filter.Only("Judo"), MedalTypes: filter.Only(model.Gold)}

			Convey("Then those predicates are skipped", func() {
				So(filter.Apply(athletes, sel), ShouldResemble, athletes)
			})
		})

		Convey("When filtering athletes by country", func() {
			sel := filter.Selection{Countries: filter.Only("USA")}
			got := filter.Apply(athletes, sel)
			So(len(got), ShouldEqual, 1)
			So(got[0].Name, ShouldEqual, "B")
		})

		Convey("When filtering events by sport", func() {
			sel := filter.Selection{Sports: filter.Only("Judo")}

			Convey("Then the sport column stands in for discipline", func() {
				got := filter.Apply(events, sel)
				So(len(got), ShouldEqual, 1)
				So(got[0].Event, ShouldEqual, "Kata")
			})
		})

		Convey("When filtering events by country", func() {
			sel := filter.Selection{Countries: filter.Only("USA")}
			So(filter.Apply(events, sel), ShouldResemble, events)
		})

		Convey("When filtering venues by anything", func() {
			sel := filter.Selection{
				Countries:  filter.Only("USA"),
				Sports:     filter.Only("Judo"),
				Continents: filter.Only(reference.Asia),
			}
			So(filter.Apply(venues, sel), ShouldResemble, venues)
		})
	})
}

func TestSet(t *testing.T) {
	Convey("Given filter sets", t, func() {
		Convey("Then the zero value allows everything", func() {
			var s filter.Set[string]
			So(s.Restricted(), ShouldBeFalse)
			So(s.Empty(), ShouldBeFalse)
			So(s.Allows("anything"), ShouldBeTrue)
		})

		Convey("Then an empty Only allows nothing", func() {
			s := filter.Only[string]()
			So(s.Restricted(), ShouldBeTrue)
			So(s.Empty(), ShouldBeTrue)
			So(s.Allows("anything"), ShouldBeFalse)
		})

		Convey("Then members come back ordered", func() {
			s := filter.Only("b", "c", "a", "b")
			So(s.Len(), ShouldEqual, 3)
			So(s.Members(func(a, b string) bool { return a < b }), ShouldResemble, []string{"a", "b", "c"})
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given raw filter values", t, func() {
		Convey("When nothing is submitted", func() {
			sel, err := filter.Parse(filter.Values{})
			So(err, ShouldBeNil)
			So(sel.Countries.Restricted(), ShouldBeFalse)
			So(sel.MedalTypes.Restricted(), ShouldBeFalse)
		})

		Convey("When values are comma separated or labelled", func() {
			sel, err := filter.Parse(filter.Values{
				Countries:  []string{"🇫🇷 FRA, usa", ""},
				Sports:     []string{"Judo"},
				Continents: []string{"europe"},
				Medals:     []string{"Gold Medal,Silver"},
				MedalsSet:  true,
			})
			So(err, ShouldBeNil)
			So(sel.Countries.Allows("FRA"), ShouldBeTrue)
			So(sel.Countries.Allows("USA"), ShouldBeTrue)
			So(sel.Countries.Len(), ShouldEqual, 2)
			So(sel.Sports.Allows("Judo"), ShouldBeTrue)
			So(sel.Continents.Allows(reference.Europe), ShouldBeTrue)
			So(sel.MedalTypes.Allows(model.Gold), ShouldBeTrue)
			So(sel.MedalTypes.Allows(model.Bronze), ShouldBeFalse)
		})

		Convey("When the medal field is submitted empty", func() {
			sel, err := filter.Parse(filter.Values{MedalsSet: true})
			So(err, ShouldBeNil)
			So(sel.MedalTypes.Empty(), ShouldBeTrue)
			So(sel.Tiers().Restricted(), ShouldBeFalse)
		})

		Convey("When a continent is unknown", func() {
			_, err := filter.Parse(filter.Values{Continents: []string{"Atlantis"}})
			So(errors.Is(err, filter.ErrInvalidSelection), ShouldBeTrue)
			So(errors.Is(err, reference.ErrUnknownContinent), ShouldBeTrue)
		})

		Convey("When a medal tier is unknown", func() {
			_, err := filter.Parse(filter.Values{Medals: []string{"Platinum"}, MedalsSet: true})
			So(errors.Is(err, filter.ErrInvalidSelection), ShouldBeTrue)
			So(errors.Is(err, model.ErrUnknownTier), ShouldBeTrue)
		})
	})
}

func TestCountryOptions(t *testing.T) {
	Convey("Given a list of NOCs", t, func() {
		list := []string{"FRA", "USA", "ZZZ"}

		Convey("When no continent is selected", func() {
			opts := filter.CountryOptions(list, filter.Any[reference.Continent]())
			So(len(opts), ShouldEqual, 3)
			So(opts[0].Label, ShouldEqual, "🇫🇷 FRA")
			So(opts[2].Label, ShouldEqual, "ZZZ")
			So(opts[2].Continent, ShouldEqual, reference.Other)
		})

		Convey("When continents narrow the list", func() {
			opts := filter.CountryOptions(list, filter.Only(reference.Europe))
			So(len(opts), ShouldEqual, 1)
			So(opts[0].NOC, ShouldEqual, "FRA")
		})
	})
}

func TestSummary(t *testing.T) {
	Convey("Given selections", t, func() {
		Convey("When nothing is restricted", func() {
			So(filter.Summary(filter.All()), ShouldBeEmpty)
		})

		Convey("When all tiers are checked", func() {
			sel := filter.Selection{MedalTypes: filter.Only(model.Gold, model.Silver, model.Bronze)}
			So(filter.Summary(sel), ShouldBeEmpty)
		})

		Convey("When several fields are restricted", func() {
			sel := filter.Selection{
				Countries:  filter.Only("FRA", "USA"),
				Sports:     filter.Only("Judo"),
				Continents: filter.Only(reference.Asia, reference.Europe),
				MedalTypes: filter.Only(model.Bronze, model.Gold),
			}
			So(filter.Summary(sel), ShouldResemble, []string{
				"Countries: 2",
				"Sports: 1",
				"Continents: Europe, Asia",
				"Medals: Gold, Bronze",
			})
		})

		Convey("When no tier is checked", func() {
			sel := filter.Selection{MedalTypes: filter.Only[model.Tier]()}
			So(filter.Summary(sel), ShouldResemble, []string{"Medals: all (no tier selected)"})
		})
	})
}
