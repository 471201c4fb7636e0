package app

import (
	"context"
	"fmt"

	"github.com/safetyplan/actionplan/internal/adapter/postgres"
	"github.com/safetyplan/actionplan/internal/adapter/postgres/recordstore"
	"github.com/safetyplan/actionplan/internal/adapter/sheet"
	"github.com/safetyplan/actionplan/internal/config"
	"github.com/safetyplan/actionplan/internal/domain"
)

// RecordStore is the storage contract shared by both backends.
type RecordStore interface {
	ReadAll(ctx context.Context, table string) ([]domain.Record, error)
	Get(ctx context.Context, table, id string) (domain.Record, error)
	Insert(ctx context.Context, table string, rec domain.Record) (string, error)
	UpdateFields(ctx context.Context, table, id string, fields domain.Record) error
}

// TxRunner runs fn as one unit of work.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles the configured backend. Close releases it.
type Store struct {
	Records RecordStore
	Tx      TxRunner
	Health  Pinger
	Backend string
	Close   func()
}

// OpenStore connects the backend selected by cfg.Store.Backend.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return &Store{
			Records: recordstore.New(pool),
			Tx:      postgres.NewTxManager(pool),
			Health:  pool,
			Backend: config.StoreBackendPostgres,
			Close:   pool.Close,
		}, nil

	case config.StoreBackendSheet:
		s, err := sheet.New(cfg.Store.SheetDir)
		if err != nil {
			return nil, fmt.Errorf("open sheet store: %w", err)
		}
		return &Store{
			Records: s,
			Tx:      s,
			Health:  s,
			Backend: config.StoreBackendSheet,
			Close:   func() {},
		}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
