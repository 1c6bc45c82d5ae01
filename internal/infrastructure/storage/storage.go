// Package storage elige el adaptador de persistencia según DB_DRIVER y expone los repositorios.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventory-tracker/pkg/config"
)

// Store agrupa los repositorios de un mismo backend.
type Store struct {
	Driver    string
	Items     repository.InventoryRepository
	Movements repository.MovementRepository
	AuditLog  repository.AuditLogRepository
	Users     repository.UserRepository

	close func()
}

// Close libera la conexión o el pool subyacente.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta con el backend configurado y asegura el esquema.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Driver:    cfg.Driver,
			Items:     postgres.NewInventoryRepository(pool),
			Movements: postgres.NewMovementRepository(pool),
			AuditLog:  postgres.NewAuditLogRepository(pool),
			Users:     postgres.NewUserRepository(pool),
			close:     pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    cfg.Driver,
			Items:     sqlite.NewInventoryRepository(db),
			Movements: sqlite.NewMovementRepository(db),
			AuditLog:  sqlite.NewAuditLogRepository(db),
			Users:     sqlite.NewUserRepository(db),
			close:     func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}
