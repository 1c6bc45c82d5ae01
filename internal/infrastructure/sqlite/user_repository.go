package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios sobre SQLite.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query, args, err := build(dialect.InsertUser(sqlstore.NewUserRecord(user)), "insert user")
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := r.find(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(ctx, sq.Eq{"email": email})
}

func (r *UserRepo) find(ctx context.Context, where sq.Eq) (*entity.User, error) {
	query, args, err := build(dialect.SelectUser(where), "get user")
	if err != nil {
		return nil, err
	}
	var rec sqlstore.UserRecord
	if err := sqlscan.Get(ctx, r.db, &rec, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return rec.Entity(), nil
}
