// Package sqlstore contiene lo que comparten los adaptadores SQL (PostgreSQL y SQLite):
// nombres de tablas, registros con tags db y las consultas construidas con squirrel.
package sqlstore

import (
	sq "github.com/Masterminds/squirrel"
)

// Tablas.
const (
	TableItems     = "inventory_items"
	TableMovements = "movements"
	TableAuditLogs = "audit_logs"
	TableUsers     = "users"
)

// Dialect diferencias entre motores que afectan a las consultas.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
	// InsertionOrder columna que desempata registros con la misma fecha.
	InsertionOrder string
}

var (
	Postgres = Dialect{Name: "postgres", Placeholder: sq.Dollar, InsertionOrder: "seq"}
	SQLite   = Dialect{Name: "sqlite", Placeholder: sq.Question, InsertionOrder: "rowid"}
)

// Builder devuelve un StatementBuilder con el formato de placeholders del motor.
func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder)
}
