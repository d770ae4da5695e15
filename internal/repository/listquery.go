package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort is a caller-requested ordering. Field must be one of the allowed sort
// keys for the entity; anything else falls back to id.
type Sort struct {
	Field string
	Desc  bool
}

// applySort orders the query by the requested field if it is in the allowed
// map (request key -> column name). Unknown fields sort by id so a bad query
// param can never produce a SQL error. The column goes through clause.Column so
// the dialect quotes it; "row" is a reserved word in Postgres.
func applySort(db *gorm.DB, allowed map[string]string, s Sort) *gorm.DB {
	col, ok := allowed[s.Field]
	if !ok {
		col = "id"
	}
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: s.Desc})
}

// applyContains adds a case-insensitive substring match when val is non-empty.
func applyContains(db *gorm.DB, col, val string) *gorm.DB {
	if val == "" {
		return db
	}
	return db.Where("LOWER("+col+") LIKE LOWER(?)", "%"+val+"%")
}
