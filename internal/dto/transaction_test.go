package dto

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transaction-management/internal/models"
)

func validCreateRequest() CreateTransactionRequest {
	return CreateTransactionRequest{
		Description: "Grocery shopping",
		Amount:      decimal.RequireFromString("100.50"),
		Type:        "DEBIT",
		Category:    "Food",
		Reference:   "REF123456",
	}
}

func TestCreateRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateTransactionRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *CreateTransactionRequest) {},
		},
		{
			name:    "blank description",
			mutate:  func(r *CreateTransactionRequest) { r.Description = "" },
			wantErr: "description",
		},
		{
			name:    "description too long",
			mutate:  func(r *CreateTransactionRequest) { r.Description = strings.Repeat("a", 256) },
			wantErr: "description",
		},
		{
			name:    "zero amount",
			mutate:  func(r *CreateTransactionRequest) { r.Amount = decimal.Zero },
			wantErr: "amount",
		},
		{
			name:    "negative amount",
			mutate:  func(r *CreateTransactionRequest) { r.Amount = decimal.RequireFromString("-5.00") },
			wantErr: "amount",
		},
		{
			name:    "too many decimal places",
			mutate:  func(r *CreateTransactionRequest) { r.Amount = decimal.RequireFromString("1.00001") },
			wantErr: "amount",
		},
		{
			name: "too many integer digits",
			mutate: func(r *CreateTransactionRequest) {
				r.Amount = decimal.RequireFromString("1234567890123456.5")
			},
			wantErr: "amount",
		},
		{
			name:   "fifteen integer digits is allowed",
			mutate: func(r *CreateTransactionRequest) { r.Amount = decimal.RequireFromString("999999999999999.9999") },
		},
		{
			name:    "invalid type",
			mutate:  func(r *CreateTransactionRequest) { r.Type = "TRANSFER" },
			wantErr: "type",
		},
		{
			name:    "lowercase type rejected",
			mutate:  func(r *CreateTransactionRequest) { r.Type = "debit" },
			wantErr: "type",
		},
		{
			name:    "blank category",
			mutate:  func(r *CreateTransactionRequest) { r.Category = "" },
			wantErr: "category",
		},
		{
			name:    "category too long",
			mutate:  func(r *CreateTransactionRequest) { r.Category = strings.Repeat("a", 101) },
			wantErr: "category",
		},
		{
			name:    "blank reference",
			mutate:  func(r *CreateTransactionRequest) { r.Reference = "" },
			wantErr: "transactionReference",
		},
		{
			name:    "reference too long",
			mutate:  func(r *CreateTransactionRequest) { r.Reference = strings.Repeat("R", 51) },
			wantErr: "transactionReference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr, "field detail must be preserved")
		})
	}
}

func TestUpdateRequestValidation(t *testing.T) {
	valid := UpdateTransactionRequest{
		Description: "Updated",
		Amount:      decimal.RequireFromString("10.00"),
		Type:        "CREDIT",
		Category:    "Income",
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.Type = "WIRE"
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be either DEBIT or CREDIT")
}

func TestCreateRequestToModel(t *testing.T) {
	req := validCreateRequest()
	txn := req.ToModel()

	assert.Equal(t, models.TypeDebit, txn.Type)
	assert.Equal(t, req.Reference, txn.Reference)
	assert.True(t, txn.Amount.Equal(req.Amount))
	// Server-assigned fields stay zero until the store fills them in.
	assert.Zero(t, txn.ID)
	assert.True(t, txn.TransactionDate.IsZero())
}
