package model

// Team is a row of teams.csv.
type Team struct {
	Code       string   `json:"code"`
	Name       string   `json:"team"`
	Gender     string   `json:"team_gender"`
	NOC        string   `json:"noc"`
	Country    string   `json:"country"`
	Discipline string   `json:"discipline"`
	Events     []string `json:"events"`
	Athletes   []string `json:"athletes"`
	Coaches    []string `json:"coaches"`
}

func (t Team) NOCCode() string        { return t.NOC }
func (t Team) DisciplineName() string { return t.Discipline }

// Coach is a row of coaches.csv.
type Coach struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	Function    string   `json:"function"`
	Category    string   `json:"category"`
	NOC         string   `json:"noc"`
	Country     string   `json:"country"`
	Disciplines []string `json:"disciplines"`
}

func (c Coach) NOCCode() string { return c.NOC }

// NOC is a row of nocs.csv.
type NOC struct {
	Code        string `json:"code"`
	Country     string `json:"country"`
	CountryLong string `json:"country_long"`
	Tag         string `json:"tag"`
}
