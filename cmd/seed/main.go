// Command seed creates the transactions schema and loads a small set of
// sample records. Reseeding is idempotent: rows whose reference already
// exists are skipped.
package main

import (
	"context"
	"errors"
	"log"

	"transaction-management/internal/cache"
	"transaction-management/internal/models"
	"transaction-management/internal/repository"
	"transaction-management/internal/service"
	"transaction-management/pkg/config"
	"transaction-management/pkg/logger"
	"transaction-management/pkg/postgres"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id                    BIGSERIAL PRIMARY KEY,
    description           VARCHAR(255) NOT NULL,
    amount                NUMERIC(19,4) NOT NULL CHECK (amount > 0),
    type                  VARCHAR(10) NOT NULL CHECK (type IN ('DEBIT', 'CREDIT')),
    category              VARCHAR(100) NOT NULL,
    transaction_reference VARCHAR(50) NOT NULL UNIQUE,
    transaction_date      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_txn_ref ON transactions (transaction_reference);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}
	appLogger.Info("Schema ready")

	txnRepo := repository.NewTransactionRepository(db, appLogger)
	txnService := service.NewTransactionService(txnRepo, cache.New(cache.Config{}), appLogger)

	seeded, skipped := 0, 0
	for _, txn := range sampleTransactions() {
		if _, err := txnService.Create(ctx, txn); err != nil {
			if errors.Is(err, service.ErrDuplicateReference) {
				skipped++
				continue
			}
			appLogger.Fatal("Failed to seed transaction",
				zap.String("reference", txn.Reference),
				zap.Error(err),
			)
		}
		seeded++
	}

	appLogger.Info("Seeding completed",
		zap.Int("seeded", seeded),
		zap.Int("skipped", skipped),
	)
}

func sampleTransactions() []*models.Transaction {
	return []*models.Transaction{
		{
			Description: "Grocery shopping",
			Amount:      decimal.RequireFromString("100.50"),
			Type:        models.TypeDebit,
			Category:    "Food",
			Reference:   "REF100001",
		},
		{
			Description: "Monthly salary",
			Amount:      decimal.RequireFromString("4200.00"),
			Type:        models.TypeCredit,
			Category:    "Income",
			Reference:   "REF100002",
		},
		{
			Description: "Electricity bill",
			Amount:      decimal.RequireFromString("86.23"),
			Type:        models.TypeDebit,
			Category:    "Utilities",
			Reference:   "REF100003",
		},
		{
			Description: "Bus pass",
			Amount:      decimal.RequireFromString("45.00"),
			Type:        models.TypeDebit,
			Category:    "Transport",
			Reference:   "REF100004",
		},
		{
			Description: "Tax refund",
			Amount:      decimal.RequireFromString("312.75"),
			Type:        models.TypeCredit,
			Category:    "Income",
			Reference:   "REF100005",
		},
	}
}
