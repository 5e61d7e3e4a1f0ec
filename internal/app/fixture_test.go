package service_test

import (
	"context"
	"time"

	"github.com/okian/glorypath/internal/domain/model"
)

// tables is an in-memory table source.
type tables struct {
	athletes  []model.Athlete
	medals    []model.Medal
	totals    []model.MedalTotal
	events    []model.Event
	schedules []model.ScheduleEntry
	venues    []model.Venue
	teams     []model.Team
	nocs      []model.NOC
}

func (t *tables) Athletes(context.Context) []model.Athlete        { return t.athletes }
func (t *tables) Medals(context.Context) []model.Medal            { return t.medals }
func (t *tables) Medallists(context.Context) []model.Medal        { return t.medals }
func (t *tables) MedalTotals(context.Context) []model.MedalTotal  { return t.totals }
func (t *tables) Events(context.Context) []model.Event            { return t.events }
func (t *tables) Schedules(context.Context) []model.ScheduleEntry { return t.schedules }
func (t *tables) Venues(context.Context) []model.Venue            { return t.venues }
func (t *tables) Coaches(context.Context) []model.Coach           { return nil }
func (t *tables) Teams(context.Context) []model.Team              { return t.teams }
func (t *tables) NOCs(context.Context) []model.NOC                { return t.nocs }

func day(d int) time.Time { return time.Date(2024, 7, d, 0, 0, 0, 0, time.UTC) }

func at(d, h int) time.Time { return time.Date(2024, 7, d, h, 0, 0, 0, time.UTC) }

func age(v float64) *float64 { return &v }

func fixture() *tables {
	return &tables{
		athletes: []model.Athlete{
			{Name: "RINER Teddy", NOC: "FRA", Gender: "Male", Age: age(35), Disciplines: []string{"Judo"}, Events: []string{"Men +100 kg"}},
			{Name: "LEDECKY Katie", NOC: "USA", Gender: "Female", Age: age(27), Disciplines: []string{"Swimming"}, Events: []string{"Women's 800m Freestyle"}},
			{Name: "ABE Hifumi", NOC: "JPN", Gender: "Male", Age: age(26), Disciplines: []string{"Judo"}, Coach: "SUZUKI K."},
			{Name: "QUAN Hongchan", NOC: "CHN", Gender: "Female", Disciplines: []string{"Diving"}},
		},
		medals: []model.Medal{
			{Tier: model.Gold, Date: day(27), Name: "LEDECKY Katie", Discipline: "Swimming", NOC: "USA"},
			{Tier: model.Silver, Date: day(27), Name: "SMITH Regan", Discipline: "Swimming", NOC: "USA"},
			{Tier: model.Gold, Date: day(28), Name: "RINER Teddy", Discipline: "Judo", NOC: "FRA"},
			{Tier: model.Bronze, Date: day(28), Name: "CYSIQUE Sarah", Discipline: "Judo", NOC: "FRA"},
			{Tier: model.Gold, Date: day(27), Name: "QUAN Hongchan", Discipline: "Diving", NOC: "CHN"},
			{Tier: model.Bronze, Date: day(28), Name: "ABE Hifumi", Discipline: "Judo", NOC: "JPN"},
		},
		totals: []model.MedalTotal{
			{NOC: "USA", Country: "United States"},
			{NOC: "FRA", Country: "France"},
			{NOC: "CHN", Country: "China"},
			{NOC: "JPN", Country: "Japan"},
		},
		events: []model.Event{
			{Event: "Women's 800m Freestyle", Sport: "Swimming"},
			{Event: "Men +100 kg", Sport: "Judo"},
			{Event: "Women's 10m Platform", Sport: "Diving"},
		},
		schedules: []model.ScheduleEntry{
			{Start: at(27, 10), End: at(27, 11), Discipline: "Swimming", Event: "Women's 800m Freestyle"},
			{Start: at(27, 9), End: at(27, 10), Discipline: "Diving", Event: "Women's 10m Platform"},
			{Start: at(28, 9), Discipline: "Judo", Event: "Men +100 kg"},
		},
		venues: []model.Venue{{Name: "Bercy Arena", Sports: []string{"Basketball"}}},
		teams: []model.Team{
			{Name: "France Judo", NOC: "FRA", Country: "France", Discipline: "Judo", Coaches: []string{"ROUGE A.", "DOUCET B."}},
		},
		nocs: []model.NOC{
			{Code: "USA", Country: "USA"},
			{Code: "FRA", Country: "FRA"},
			{Code: "CHN", Country: "CHN"},
			{Code: "JPN", Country: "JPN"},
		},
	}
}
