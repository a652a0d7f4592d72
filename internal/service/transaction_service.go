package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"transaction-management/internal/cache"
	"transaction-management/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateReference  = errors.New("transaction with reference already exists")
)

// TransactionService is the single authority for consistency between the
// store and the cache. Reads are cache-first; every mutation writes to the
// store and then invalidates the affected cache entries, so a read issued
// after a completed mutation never observes the pre-mutation value.
type TransactionService struct {
	store  Store
	cache  *cache.TransactionCache
	logger *zap.Logger
}

func NewTransactionService(store Store, txnCache *cache.TransactionCache, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		cache:  txnCache,
		logger: logger,
	}
}

// Create persists a new transaction. The uniqueness check goes straight to
// the store: a cached absence marker for the reference must not be allowed
// to hide a real duplicate. On success all list pages are invalidated, and
// any point entries for the new record (normally negative markers left by
// earlier probes) are dropped so the record is visible immediately.
func (s *TransactionService) Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	exists, err := s.store.ExistsByReference(ctx, txn.Reference)
	if err != nil {
		return nil, fmt.Errorf("checking reference %s: %w", txn.Reference, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateReference, txn.Reference)
	}

	created, err := s.store.Insert(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}

	s.cache.InvalidateLists()
	s.cache.InvalidatePoint(cache.IDKey(created.ID), cache.RefKey(created.Reference))

	s.logger.Info("Transaction created",
		zap.Int64("id", created.ID),
		zap.String("reference", created.Reference),
	)
	return created, nil
}

// GetByID returns the transaction with the given id, or (nil, nil) when it
// does not exist. Both outcomes are cached under the id point key, so a
// repeated lookup within the TTL does not touch the store again.
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.getPoint(ctx, cache.IDKey(id), func() (*models.Transaction, error) {
		return s.store.GetByID(ctx, id)
	})
}

// GetByReference is GetByID keyed by reference.
func (s *TransactionService) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	return s.getPoint(ctx, cache.RefKey(reference), func() (*models.Transaction, error) {
		return s.store.GetByReference(ctx, reference)
	})
}

func (s *TransactionService) getPoint(ctx context.Context, key string, fetch func() (*models.Transaction, error)) (*models.Transaction, error) {
	if txn, found := s.cache.GetPoint(key); found {
		return txn, nil
	}

	txn, err := fetch()
	if err != nil {
		// Store failures propagate; they are never cached and never
		// reported as a plain not-found.
		return nil, fmt.Errorf("fetching %s: %w", key, err)
	}

	s.cache.SetPoint(key, txn)
	return txn, nil
}

// ListPage returns one page of transactions matching the filter, cache-first
// on the composite list key. Only successful pages are cached.
func (s *TransactionService) ListPage(ctx context.Context, filter models.ListFilter, page models.PageRequest) (*models.TransactionPage, error) {
	key := cache.ListKey(filter, page)
	if cached, found := s.cache.GetList(key); found {
		return cached, nil
	}

	result, err := s.store.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	s.cache.SetList(key, result)
	return result, nil
}

// Update applies the mutable fields of changes to the transaction with the
// given id. The point entry is invalidated rather than overwritten in place,
// which avoids racing a concurrent invalidation with a stale write.
func (s *TransactionService) Update(ctx context.Context, id int64, changes *models.Transaction) (*models.Transaction, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w with id: %d", ErrTransactionNotFound, id)
	}

	updated := *current
	updated.Description = changes.Description
	updated.Amount = changes.Amount
	updated.Type = changes.Type
	updated.Category = changes.Category

	if err := s.store.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating transaction %d: %w", id, err)
	}

	s.cache.InvalidateLists()
	s.cache.InvalidatePoint(cache.IDKey(id), cache.RefKey(updated.Reference))

	s.logger.Info("Transaction updated", zap.Int64("id", id))
	return &updated, nil
}

// Delete removes the transaction with the given id. The existence check goes
// straight to the store so a cached absence marker cannot fake a not-found
// for a row that actually exists.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("checking transaction %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("%w with id: %d", ErrTransactionNotFound, id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}

	s.cache.InvalidateLists()
	s.cache.InvalidatePoint(cache.IDKey(id))

	s.logger.Info("Transaction deleted", zap.Int64("id", id))
	return nil
}

// DeleteByReference resolves the reference to an id and reuses the delete
// flow, additionally dropping the reference point entry.
func (s *TransactionService) DeleteByReference(ctx context.Context, reference string) error {
	txn, err := s.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w with reference: %s", ErrTransactionNotFound, reference)
	}

	if err := s.Delete(ctx, txn.ID); err != nil {
		return err
	}

	s.cache.InvalidatePoint(cache.RefKey(reference))
	return nil
}

// ClearCache empties both cache regions. Operational recovery from suspected
// staleness; not part of normal request flow.
func (s *TransactionService) ClearCache() {
	s.cache.Clear()
	s.logger.Info("Transaction caches cleared")
}
