package service

import "github.com/okian/glorypath/internal/domain/model"

func ptr(f float64) *float64 { return &f }

// parisVenues is shown when the venue table carries no coordinates.
var parisVenues = []model.Venue{
	{Name: "Stade de France", Lat: ptr(48.9244), Lon: ptr(2.3601), Sports: []string{"Athletics", "Rugby"}},
	{Name: "Champs de Mars Arena", Lat: ptr(48.8584), Lon: ptr(2.2945), Sports: []string{"Judo", "Wrestling"}},
	{Name: "Grand Palais", Lat: ptr(48.8660), Lon: ptr(2.3125), Sports: []string{"Fencing", "Taekwondo"}},
	{Name: "Roland-Garros", Lat: ptr(48.8469), Lon: ptr(2.2472), Sports: []string{"Tennis"}},
	{Name: "Parc des Princes", Lat: ptr(48.8414), Lon: ptr(2.2530), Sports: []string{"Football"}},
	{Name: "Arena Bercy", Lat: ptr(48.8386), Lon: ptr(2.3786), Sports: []string{"Basketball", "Gymnastics"}},
	{Name: "Stade Pierre-Mauroy", Lat: ptr(50.6127), Lon: ptr(3.0299), Sports: []string{"Handball"}},
	{Name: "Vélodrome de Saint-Quentin", Lat: ptr(48.7866), Lon: ptr(2.0448), Sports: []string{"Cycling"}},
}

// locatedVenues returns the venues with coordinates, or the Paris fallback
// when none has any.
func locatedVenues(venues []model.Venue) (out []model.Venue, fallback bool) {
	for _, v := range venues {
		if v.Located() {
			out = append(out, v)
		}
	}
	if len(out) > 0 {
		return out, false
	}
	out = make([]model.Venue, len(parisVenues))
	copy(out, parisVenues)
	return out, true
}
