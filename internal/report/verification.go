package report

import (
	"sort"

	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/standings"
)

// Mismatch is a country whose medal rows disagree with the published table.
type Mismatch struct {
	NOC       string          `json:"noc"`
	Computed  standings.Tally `json:"computed"`
	Published standings.Tally `json:"published"`
}

// Verify recounts medals per country and compares the result with the
// published medal totals. Countries missing from either side count as zero
// there. Mismatches are ordered by NOC.
func Verify(medals []model.Medal, totals []model.MedalTotal) []Mismatch {
	computed := make(map[string]standings.Tally)
	for _, t := range standings.Group(medals, standings.ByCountry) {
		computed[t.Key] = t
	}
	published := make(map[string]standings.Tally)
	for _, t := range standings.FromTotals(totals) {
		published[t.Key] = t
	}

	var out []Mismatch
	check := func(noc string) {
		c, p := computed[noc], published[noc]
		c.Key, p.Key = noc, noc
		if c != p {
			out = append(out, Mismatch{NOC: noc, Computed: c, Published: p})
		}
	}
	for noc := range computed {
		check(noc)
	}
	for noc := range published {
		if _, ok := computed[noc]; !ok {
			check(noc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NOC < out[j].NOC })
	return out
}
