package model

import "time"

// DateLayout is the calendar day format used for medal dates and day keys.
const DateLayout = "2006-01-02"

// Medal is one awarded medal, read from medals.csv or medallists.csv.
type Medal struct {
	Tier       Tier      `json:"medal"`
	Date       time.Time `json:"medal_date"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	Discipline string    `json:"discipline"`
	Event      string    `json:"event"`
	EventType  string    `json:"event_type"`
	Team       string    `json:"team,omitempty"`
	TeamGender string    `json:"team_gender,omitempty"`
	NOC        string    `json:"noc"`
	Country    string    `json:"country"`
}

func (m Medal) NOCCode() string        { return m.NOC }
func (m Medal) DisciplineName() string { return m.Discipline }
func (m Medal) MedalTier() Tier        { return m.Tier }

// MedalTotal is a row of medals_total.csv.
type MedalTotal struct {
	NOC         string `json:"noc"`
	Country     string `json:"country"`
	CountryLong string `json:"country_long"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
	Total       int    `json:"total"`
}

func (t MedalTotal) NOCCode() string { return t.NOC }
