package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transaction-management/internal/api"
	"transaction-management/internal/api/handlers"
	"transaction-management/internal/cache"
	"transaction-management/internal/models"
	"transaction-management/internal/repository"
	"transaction-management/internal/service"
)

// fakeStore is an in-memory Store so the full handler → service → cache path
// runs without a database.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[int64]*models.Transaction)}
}

func (s *fakeStore) Insert(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	stored := *txn
	stored.ID = s.nextID
	stored.TransactionDate = time.Now().UTC()
	s.byID[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn, ok := s.byID[id]; ok {
		copied := *txn
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeStore) GetByReference(_ context.Context, reference string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range s.byID {
		if txn.Reference == reference {
			copied := *txn
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	txn, err := s.GetByID(ctx, id)
	return txn != nil, err
}

func (s *fakeStore) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	txn, err := s.GetByReference(ctx, reference)
	return txn != nil, err
}

func (s *fakeStore) List(_ context.Context, filter models.ListFilter, page models.PageRequest) (*models.TransactionPage, error) {
	if page.SortBy != "transactionDate" && page.SortBy != "id" && page.SortBy != "amount" {
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidSortField, page.SortBy)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*models.Transaction, 0)
	for _, txn := range s.byID {
		if filter.Category != "" && !strings.EqualFold(filter.Category, txn.Category) {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(filter.Type, string(txn.Type)) {
			continue
		}
		copied := *txn
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := page.Page * page.Size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return &models.TransactionPage{
		Content:     matched[start:end],
		CurrentPage: page.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    page.Size,
	}, nil
}

func (s *fakeStore) Update(_ context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.byID[txn.ID]; ok {
		current.Description = txn.Description
		current.Amount = txn.Amount
		current.Type = txn.Type
		current.Category = txn.Category
	}
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

type envelope struct {
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Result json.RawMessage `json:"result"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := service.NewTransactionService(newFakeStore(), cache.New(cache.Config{}), zap.NewNop())
	handler := handlers.NewTransactionHandler(svc, zap.NewNop())
	return api.SetupRouter(handler, zap.NewNop())
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func TestTransactionLifecycle(t *testing.T) {
	app := newTestApp(t)

	createBody := `{"description":"Grocery shopping","amount":100.50,"type":"DEBIT","category":"Food","transactionReference":"REF-A"}`

	// Create assigns id and timestamp.
	code, env := doJSON(t, app, http.MethodPost, "/api/v1/transactions", createBody)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Transaction created successfully", env.Status.Message)

	var created models.Transaction
	require.NoError(t, json.Unmarshal(env.Result, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.TransactionDate.IsZero())
	assert.Equal(t, "100.5", created.Amount.String())

	// Duplicate reference conflicts and persists no second row.
	code, env = doJSON(t, app, http.MethodPost, "/api/v1/transactions", createBody)
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, 409, env.Status.Code)

	code, env = doJSON(t, app, http.MethodGet, "/api/v1/transactions?sortBy=id", "")
	require.Equal(t, http.StatusOK, code)
	var page models.TransactionPage
	require.NoError(t, json.Unmarshal(env.Result, &page))
	assert.Equal(t, int64(1), page.TotalItems)

	// Read back by id and by reference.
	code, env = doJSON(t, app, http.MethodGet, "/api/v1/transactions/1", "")
	require.Equal(t, http.StatusOK, code)
	var fetched models.Transaction
	require.NoError(t, json.Unmarshal(env.Result, &fetched))
	assert.Equal(t, "Grocery shopping", fetched.Description)

	code, env = doJSON(t, app, http.MethodGet, "/api/v1/transactions/reference/REF-A", "")
	require.Equal(t, http.StatusOK, code)

	// Update is visible on the very next read.
	updateBody := `{"description":"X","amount":100.50,"type":"DEBIT","category":"Food"}`
	code, env = doJSON(t, app, http.MethodPut, "/api/v1/transactions/1", updateBody)
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, app, http.MethodGet, "/api/v1/transactions/1", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Result, &fetched))
	assert.Equal(t, "X", fetched.Description)
	assert.Equal(t, "REF-A", fetched.Reference)

	// Delete, then both the read and the repeated delete report not-found.
	code, env = doJSON(t, app, http.MethodDelete, "/api/v1/transactions/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, env.Result, "result is omitted when there is no payload")

	code, env = doJSON(t, app, http.MethodGet, "/api/v1/transactions/1", "")
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Transaction not found with input parameter: 1", env.Status.Message)

	code, _ = doJSON(t, app, http.MethodDelete, "/api/v1/transactions/1", "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestListReflectsNewRecords(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/api/v1/transactions?category=Food&page=0&size=10", "")
	require.Equal(t, http.StatusOK, code)
	var page models.TransactionPage
	require.NoError(t, json.Unmarshal(env.Result, &page))
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Empty(t, page.Content)

	body := `{"description":"Lunch","amount":12.30,"type":"DEBIT","category":"Food","transactionReference":"REF-F1"}`
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/transactions", body)
	require.Equal(t, http.StatusCreated, code)

	// The create invalidated the cached empty page.
	code, env = doJSON(t, app, http.MethodGet, "/api/v1/transactions?category=Food&page=0&size=10", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Result, &page))
	assert.Equal(t, int64(1), page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 0, page.CurrentPage)
}

func TestCreateValidationFailures(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "blank description",
			body: `{"description":"","amount":10,"type":"DEBIT","category":"Food","transactionReference":"R1"}`,
			want: "description",
		},
		{
			name: "non-positive amount",
			body: `{"description":"d","amount":0,"type":"DEBIT","category":"Food","transactionReference":"R1"}`,
			want: "amount",
		},
		{
			name: "bad type",
			body: `{"description":"d","amount":10,"type":"WIRE","category":"Food","transactionReference":"R1"}`,
			want: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := doJSON(t, app, http.MethodPost, "/api/v1/transactions", tt.body)
			require.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, 400, env.Status.Code)
			assert.Contains(t, env.Status.Message, tt.want)
		})
	}
}

func TestCreateIgnoresClientSuppliedServerFields(t *testing.T) {
	app := newTestApp(t)

	body := `{"id":999,"transactionDate":"2001-01-01T00:00:00Z","description":"d","amount":10,"type":"CREDIT","category":"Income","transactionReference":"REF-S1"}`
	code, env := doJSON(t, app, http.MethodPost, "/api/v1/transactions", body)
	require.Equal(t, http.StatusCreated, code)

	var created models.Transaction
	require.NoError(t, json.Unmarshal(env.Result, &created))
	assert.Equal(t, int64(1), created.ID, "id is server-assigned")
	assert.NotEqual(t, 2001, created.TransactionDate.Year(), "timestamp is server-assigned")
}

func TestListInvalidSortField(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/api/v1/transactions?sortBy=bogus", "")
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Status.Message, "invalid sort field")
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodGet, "/api/v1/transactions/abc", "")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteByReference(t *testing.T) {
	app := newTestApp(t)

	body := `{"description":"d","amount":10,"type":"DEBIT","category":"Food","transactionReference":"REF-D1"}`
	code, _ := doJSON(t, app, http.MethodPost, "/api/v1/transactions", body)
	require.Equal(t, http.StatusCreated, code)

	code, _ = doJSON(t, app, http.MethodDelete, "/api/v1/transactions/reference/REF-D1", "")
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, app, http.MethodDelete, "/api/v1/transactions/reference/REF-D1", "")
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Transaction not found with input parameter: REF-D1", env.Status.Message)
}

func TestClearCacheEndpoint(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/api/v1/cache/clear", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cache cleared", env.Status.Message)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", env.Status.Message)
}
