package api

import (
	"net/http"
	"net/url"

	"github.com/okian/glorypath/internal/domain/filter"
)

// Query parameter names shared by every page.
const (
	paramCountry   = "country"
	paramSport     = "sport"
	paramContinent = "continent"
	paramMedal     = "medal"
)

// parseSelection reads the filter selection from the query string. A medal
// parameter that is present but empty selects no tier, which still means
// every tier.
func parseSelection(q url.Values) (filter.Selection, error) {
	_, medalsSet := q[paramMedal]
	return filter.Parse(filter.Values{
		Countries:  q[paramCountry],
		Sports:     q[paramSport],
		Continents: q[paramContinent],
		Medals:     q[paramMedal],
		MedalsSet:  medalsSet,
	})
}

// selection parses the request filters and writes a 400 on failure.
func selection(w http.ResponseWriter, r *http.Request, op string) (filter.Selection, bool) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return filter.Selection{}, false
	}
	return sel, true
}
