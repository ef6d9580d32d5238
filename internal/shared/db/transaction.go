// Package db carries the gorm transaction propagation helpers used by the
// repository layer.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs units of work inside a single database
// transaction. It satisfies the Transactor interface the use case layer
// depends on.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn inside a transaction and stashes the tx
// handle in the context so that repositories called through fn join it.
// A returned error rolls the transaction back, nil commits it.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the ambient transaction when the caller is
// running under RunInTransaction, and defaultDB otherwise. Repositories
// route every query through this so reads and writes inside a unit of
// work see uncommitted state.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
