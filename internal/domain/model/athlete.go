package model

import "time"

// Athlete is a row of athletes.csv.
type Athlete struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	NOC         string    `json:"noc"`
	Country     string    `json:"country"`
	Gender      string    `json:"gender"`
	Function    string    `json:"function"`
	Category    string    `json:"category,omitempty"`
	BirthDate   time.Time `json:"birth_date"`
	Age         *float64  `json:"age"`    // nil when the birth date is missing or the age is not positive
	Height      float64   `json:"height"` // centimetres, 0 when unknown
	Weight      float64   `json:"weight"` // kilograms, 0 when unknown
	Disciplines []string  `json:"disciplines"`
	Events      []string  `json:"events"`
	Coach       string    `json:"coach,omitempty"`
}

// NOCCode implements the country column accessor used by filters.
func (a Athlete) NOCCode() string { return a.NOC }
