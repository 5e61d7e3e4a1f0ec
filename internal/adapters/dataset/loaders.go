package dataset

import (
	"time"

	"github.com/okian/glorypath/internal/domain/derive"
	"github.com/okian/glorypath/internal/domain/model"
)

// Each loader turns a sheet into rows. skipped counts source rows that were
// dropped; field level parse failures never drop a row.

func loadAthletes(s *sheet, ref time.Time) (out []model.Athlete, skipped int, err error) {
	if err := s.require("name"); err != nil {
		return nil, 0, err
	}
	s.each(func(r row) {
		a := model.Athlete{
			Code:        r.str("code"),
			Name:        r.str("name"),
			NOC:         r.str(colNOC...),
			Country:     r.str("country"),
			Gender:      r.str("gender"),
			Function:    r.str("function"),
			Category:    r.str("category"),
			BirthDate:   r.date("birth_date"),
			Height:      r.float("height"),
			Weight:      r.float("weight"),
			Disciplines: derive.Tokens(r.str("disciplines")),
			Events:      derive.Tokens(r.str("events")),
			Coach:       r.str("coach"),
		}
		if age, ok := derive.Age(a.BirthDate, ref); ok {
			a.Age = &age
		}
		out = append(out, a)
	})
	return out, 0, nil
}

// loadMedals reads medals.csv and medallists.csv, which share their medal
// columns. Rows whose tier is not Gold, Silver or Bronze are dropped.
func loadMedals(s *sheet) (out []model.Medal, skipped int, err error) {
	if err := s.require(colTier...); err != nil {
		return nil, 0, err
	}
	s.each(func(r row) {
		tier, err := model.ParseTier(r.str(colTier...))
		if err != nil {
			skipped++
			return
		}
		out = append(out, model.Medal{
			Tier:       tier,
			Date:       r.date("medal_date"),
			Name:       r.str("name"),
			Gender:     r.str("gender"),
			Discipline: r.str("discipline"),
			Event:      r.str("event"),
			EventType:  r.str("event_type"),
			Team:       r.str("team"),
			TeamGender: r.str("team_gender"),
			NOC:        r.str(colNOC...),
			Country:    r.str("country"),
		})
	})
	return out, skipped, nil
}

func loadMedalTotals(s *sheet) (out []model.MedalTotal, skipped int, err error) {
	if err := s.require(colNOC...); err != nil {
		return nil, 0, err
	}
	s.each(func(r row) {
		t := model.MedalTotal{
			NOC:         r.str(colNOC...),
			Country:     r.str("country"),
			CountryLong: r.str("country_long"),
			Gold:        r.integer("Gold Medal", "gold", "Gold"),
			Silver:      r.integer("Silver Medal", "silver", "Silver"),
			Bronze:      r.integer("Bronze Medal", "bronze", "Bronze"),
		}
		t.Total = t.Gold + t.Silver + t.Bronze
		out = append(out, t)
	})
	return out, 0, nil
}

func loadEvents(s *sheet) (out []model.Event, skipped int, err error) {
	if err := s.require("event"); err != nil {
		return nil, 0, err
	}
	s.each(func(r row) {
		out = append(out, model.Event{
			Event:     r.str("event"),
			Tag:       r.str("tag"),
			Sport:     r.str("sport"),
			SportCode: r.str("sport_code"),
		})
	})
	return out, 0, nil
}

func loadSchedules(s *sheet) (out []model.ScheduleEntry, skipped int, err error) {
	s.each(func(r row) {
		out = append(out, model.ScheduleEntry{
			Start:      r.date("start_date"),
			End:        r.date("end_date"),
			Day:        r.str("day"),
			Status:     r.str("status"),
			Discipline: r.str("discipline"),
			Event:      r.str("event"),
			Phase:      r.str("phase"),
			Gender:     r.str("gender"),
			EventType:  r.str("event_type"),
			Venue:      r.str("venue"),
			Location:   r.str("location_description", "location"),
		})
	})
	return out, 0, nil
}

func loadVenues(s *sheet) (out []model.Venue, skipped int, err error) {
	if err := s.require("venue"); err != nil {
		return nil, 0, err
	}
	s.each(func(r row) {
		out = append(out, model.Venue{
			Name:   r.str("venue"),
			Sports: derive.Tokens(r.str("sports")),
			Tag:    r.str("tag"),
			Lat:    r.optFloat("lat", "latitude"),
			Lon:    r.optFloat("lon", "lng", "longitude"),
		})
	})
	return out, 0, nil
}

func loadCoaches(s *sheet) (out []model.Coach, skipped int, err error) {
	s.each(func(r row) {
		out = append(out, model.Coach{
			Code:        r.str("code"),
			Name:        r.str("name"),
			Gender:      r.str("gender"),
			Function:    r.str("function"),
			Category:    r.str("category"),
			NOC:         r.str(colNOC...),
			Country:     r.str("country"),
			Disciplines: derive.Tokens(r.str("disciplines")),
		})
	})
	return out, 0, nil
}

func loadTeams(s *sheet) (out []model.Team, skipped int, err error) {
	s.each(func(r row) {
		out = append(out, model.Team{
			Code:       r.str("code"),
			Name:       r.str("team"),
			Gender:     r.str("team_gender"),
			NOC:        r.str(colNOC...),
			Country:    r.str("country"),
			Discipline: r.str("discipline"),
			Events:     derive.Tokens(r.str("events")),
			Athletes:   derive.Tokens(r.str("athletes")),
			Coaches:    derive.Tokens(r.str("coaches")),
		})
	})
	return out, 0, nil
}

func loadNOCs(s *sheet) (out []model.NOC, skipped int, err error) {
	if err := s.require("code", "noc"); err != nil {
		return nil, 0, err
	}
	s.each(func(r row) {
		out = append(out, model.NOC{
			Code:        r.str("code", "noc"),
			Country:     r.str("country"),
			CountryLong: r.str("country_long"),
			Tag:         r.str("tag"),
		})
	})
	return out, 0, nil
}
