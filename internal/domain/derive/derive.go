// Package derive computes the fields that are not stored in the source
// tables: athlete age, multi-value token lists and an athlete's coaches.
package derive

import (
	"strings"
	"time"

	"github.com/okian/glorypath/internal/domain/model"
)

// DaysPerYear converts an age in days to years.
const DaysPerYear = 365.25

// MaxCoaches caps the coach list of an athlete profile.
const MaxCoaches = 3

const (
	coachDisciplines = 2 // disciplines of the athlete that are searched
	coachesPerTeam   = 3 // coach tokens taken from each matching team
)

// ReferenceDate is the opening day of the Paris 2024 Games, used as "today"
// when computing ages.
var ReferenceDate = time.Date(2024, 7, 26, 0, 0, 0, 0, time.UTC)

// Age returns the age in fractional years at ref. ok is false when the birth
// date is unknown or the result is not positive; such ages are excluded from
// distributions rather than coerced to zero.
func Age(birth, ref time.Time) (float64, bool) {
	if birth.IsZero() {
		return 0, false
	}
	days := ref.Sub(birth).Hours() / 24
	age := days / DaysPerYear
	if age <= 0 {
		return 0, false
	}
	return age, true
}

// Tokens splits a list rendered like "['Judo', 'Wrestling']" or
// "Judo, Wrestling" into its items. Order is preserved and empty items are
// dropped.
func Tokens(s string) []string {
	s = strings.NewReplacer("[", "", "]", "", "'", "").Replace(s)
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// CoachRef is a coach found through one of the athlete's teams.
type CoachRef struct {
	Name       string `json:"name"`
	Team       string `json:"team,omitempty"`
	Country    string `json:"country,omitempty"`
	Discipline string `json:"discipline,omitempty"`
	TeamGender string `json:"team_gender,omitempty"`
}

// Coaches lists up to MaxCoaches distinct coaches for an athlete.
//
// For each of the athlete's first two disciplines, every team of that
// discipline contributes its first three coach names. A name keeps the team
// it was first seen with.
func Coaches(a model.Athlete, teams []model.Team) []CoachRef {
	disciplines := a.Disciplines
	if len(disciplines) > coachDisciplines {
		disciplines = disciplines[:coachDisciplines]
	}

	seen := make(map[string]struct{})
	var out []CoachRef
	for _, d := range disciplines {
		for _, t := range teams {
			if t.Discipline != d {
				continue
			}
			names := t.Coaches
			if len(names) > coachesPerTeam {
				names = names[:coachesPerTeam]
			}
			for _, n := range names {
				if _, dup := seen[n]; dup {
					continue
				}
				seen[n] = struct{}{}
				out = append(out, CoachRef{
					Name:       n,
					Team:       t.Name,
					Country:    t.Country,
					Discipline: t.Discipline,
					TeamGender: t.Gender,
				})
				if len(out) == MaxCoaches {
					return out
				}
			}
		}
	}
	return out
}
