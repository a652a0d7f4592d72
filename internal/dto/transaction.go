package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"transaction-management/internal/models"
)

const (
	maxAmountIntegerDigits  = 15
	maxAmountFractionDigits = 4
)

// CreateTransactionRequest is the create payload. The record id and
// transaction date are always server-assigned, so the payload has no fields
// for them and any extra JSON properties are dropped by the decoder.
type CreateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Reference   string          `json:"transactionReference"`
}

func (r CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Amount, validation.By(validAmount)),
		validation.Field(&r.Type, validation.Required, validation.In("DEBIT", "CREDIT").Error("must be either DEBIT or CREDIT")),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Reference, validation.Required, validation.Length(1, 50)),
	)
}

func (r CreateTransactionRequest) ToModel() *models.Transaction {
	return &models.Transaction{
		Description: r.Description,
		Amount:      r.Amount,
		Type:        models.TransactionType(r.Type),
		Category:    r.Category,
		Reference:   r.Reference,
	}
}

// UpdateTransactionRequest carries the mutable fields only; id, reference and
// transaction date cannot be changed after creation.
type UpdateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
}

func (r UpdateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Amount, validation.By(validAmount)),
		validation.Field(&r.Type, validation.Required, validation.In("DEBIT", "CREDIT").Error("must be either DEBIT or CREDIT")),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
	)
}

// validAmount enforces the amount contract: strictly positive, at most 4
// fraction digits and at most 15 integer digits.
func validAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal number")
	}
	if !amount.IsPositive() {
		return errors.New("must be greater than 0")
	}
	if amount.Exponent() < -maxAmountFractionDigits {
		return errors.New("must have at most 4 decimal places")
	}
	if len(amount.Abs().Truncate(0).String()) > maxAmountIntegerDigits {
		return errors.New("must have at most 15 integer digits")
	}
	return nil
}
