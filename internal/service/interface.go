package service

import (
	"context"

	"transaction-management/internal/models"
)

// Store is the durable transaction table the service orchestrates. Lookups
// return (nil, nil) when no record matches; an error always means a store
// failure, never a plain miss.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go Store
type Store interface {
	Insert(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	List(ctx context.Context, filter models.ListFilter, page models.PageRequest) (*models.TransactionPage, error)
	Update(ctx context.Context, txn *models.Transaction) error
	Delete(ctx context.Context, id int64) error
}
