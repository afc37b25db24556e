package seeder

import "uni-seeder/internal/model"

// Table maps an entity's natural key (its name) to the id the remote
// assigned. It is built once from a read-all response and only read after.
type Table map[string]model.ID

// NewTable indexes entities by name. When the remote holds several entities
// with the same name, the one listed last wins.
func NewTable(entities []model.Entity) Table {
	table := make(Table, len(entities))
	for _, e := range entities {
		table[e.Name] = e.ID
	}
	return table
}

// Lookup returns the id for name, or the empty id when name is unknown.
func (t Table) Lookup(name string) model.ID {
	return t[name]
}
