// Package dataset loads the Olympic CSV tables from a data directory and
// keeps them memoized until they are invalidated.
package dataset

import (
	"path/filepath"
	"strings"
)

// Table names a source table. The file name is the table name plus ".csv".
type Table string

// Source tables.
const (
	Athletes    Table = "athletes"
	Medals      Table = "medals"
	Medallists  Table = "medallists"
	MedalsTotal Table = "medals_total"
	Events      Table = "events"
	Schedules   Table = "schedules"
	Venues      Table = "venues"
	Coaches     Table = "coaches"
	Teams       Table = "teams"
	NOCs        Table = "nocs"
)

var allTables = []Table{Athletes, Medals, Medallists, MedalsTotal, Events, Schedules, Venues, Coaches, Teams, NOCs}

// Tables returns every known table.
func Tables() []Table { return append([]Table(nil), allTables...) }

// File returns the file name of t inside the data directory.
func (t Table) File() string { return string(t) + ".csv" }

// TableForFile maps a path back to its table.
func TableForFile(path string) (Table, bool) {
	name := strings.TrimSuffix(filepath.Base(path), ".csv")
	if name == filepath.Base(path) {
		return "", false
	}
	for _, t := range allTables {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}
