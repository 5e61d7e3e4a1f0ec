package model

import "time"

// Event is a row of events.csv.
type Event struct {
	Event     string `json:"event"`
	Tag       string `json:"tag"`
	Sport     string `json:"sport"`
	SportCode string `json:"sport_code"`
}

// SportName implements the sport column accessor used by filters.
func (e Event) SportName() string { return e.Sport }

// ScheduleEntry is a row of schedules.csv.
type ScheduleEntry struct {
	Start      time.Time `json:"start_date"`
	End        time.Time `json:"end_date"`
	Day        string    `json:"day"`
	Status     string    `json:"status"`
	Discipline string    `json:"discipline"`
	Event      string    `json:"event"`
	Phase      string    `json:"phase"`
	Gender     string    `json:"gender"`
	EventType  string    `json:"event_type"`
	Venue      string    `json:"venue"`
	Location   string    `json:"location"`
}

func (s ScheduleEntry) DisciplineName() string { return s.Discipline }

// Timed reports whether both ends of the slot are known.
func (s ScheduleEntry) Timed() bool { return !s.Start.IsZero() && !s.End.IsZero() }

// Venue is a row of venues.csv. Coordinates are optional in the source.
type Venue struct {
	Name   string   `json:"venue"`
	Sports []string `json:"sports"`
	Tag    string   `json:"tag"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

// Located reports whether the venue carries both coordinates.
func (v Venue) Located() bool { return v.Lat != nil && v.Lon != nil }
