package postgres

import (
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var dialect = sqlstore.Postgres

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// build materializa una consulta squirrel.
func build(b sq.Sqlizer, op string) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%s: construir consulta: %w", op, err)
	}
	return query, args, nil
}
