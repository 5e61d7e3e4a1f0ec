package standings

import (
	"github.com/okian/glorypath/internal/domain/model"
)

// Cell is the medal count for one path through a hierarchy, e.g.
// continent / country / discipline.
type Cell struct {
	Path  []string `json:"path"`
	Count int      `json:"count"`
}

// Tier is a Key that groups by medal tier.
func Tier(m model.Medal) (string, bool) { return string(m.Tier), true }

// Cells counts medals along keys. A row is skipped when any key drops it.
// Cells come out in first-appearance order.
func Cells(medals []model.Medal, keys ...Key) []Cell {
	if len(keys) == 0 {
		return nil
	}
	idx := make(map[string]int)
	var out []Cell
	path := make([]string, len(keys))
	for _, m := range medals {
		ok := true
		for i, k := range keys {
			if path[i], ok = k(m); !ok {
				break
			}
		}
		if !ok {
			continue
		}
		id := joinPath(path)
		i, seen := idx[id]
		if !seen {
			i = len(out)
			idx[id] = i
			out = append(out, Cell{Path: append([]string(nil), path...)})
		}
		out[i].Count++
	}
	return out
}

func joinPath(p []string) string {
	n := 0
	for _, s := range p {
		n += len(s) + 1
	}
	b := make([]byte, 0, n)
	for _, s := range p {
		b = append(b, s...)
		b = append(b, 0)
	}
	return string(b)
}
