package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transaction-management/internal/models"
)

func TestOrderClauseWhitelistsSortFields(t *testing.T) {
	tests := []struct {
		sortBy    string
		direction string
		want      string
	}{
		{"transactionDate", "desc", "transaction_date DESC"},
		{"transactionDate", "asc", "transaction_date ASC"},
		{"transactionDate", "ASC", "transaction_date ASC"},
		{"transactionReference", "desc", "transaction_reference DESC"},
		{"amount", "asc", "amount ASC"},
		{"id", "", "id DESC"},
		{"category", "sideways", "category DESC"},
	}

	for _, tt := range tests {
		clause, err := orderClause(models.PageRequest{SortBy: tt.sortBy, Direction: tt.direction})
		require.NoError(t, err)
		assert.Equal(t, tt.want, clause)
	}
}

func TestOrderClauseRejectsUnknownField(t *testing.T) {
	for _, sortBy := range []string{"", "bogus", "transaction_date; DROP TABLE transactions"} {
		_, err := orderClause(models.PageRequest{SortBy: sortBy, Direction: "desc"})
		require.ErrorIs(t, err, ErrInvalidSortField)
	}
}
