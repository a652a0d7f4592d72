package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are emitted as JSON numbers, matching the public API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	TypeDebit  TransactionType = "DEBIT"
	TypeCredit TransactionType = "CREDIT"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeDebit || t == TypeCredit
}

// Transaction is a financial transaction record. ID and TransactionDate are
// assigned by the store at insert time and never change afterwards; Reference
// is caller-supplied but immutable and globally unique across live records.
type Transaction struct {
	ID              int64           `json:"id" db:"id"`
	Description     string          `json:"description" db:"description"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Type            TransactionType `json:"type" db:"type"`
	Category        string          `json:"category" db:"category"`
	Reference       string          `json:"transactionReference" db:"transaction_reference"`
	TransactionDate time.Time       `json:"transactionDate" db:"transaction_date"`
}

// ListFilter narrows a listing. Empty fields mean "no constraint"; non-empty
// fields are matched case-insensitively against the stored value.
type ListFilter struct {
	Category string
	Type     string
}

// PageRequest describes the slice and ordering of a listing. Page is 0-based.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// TransactionPage is one page of a filtered listing.
type TransactionPage struct {
	Content     []*Transaction `json:"content"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int64          `json:"totalItems"`
	PageSize    int            `json:"pageSize"`
}
