package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"transaction-management/internal/dto"
	"transaction-management/internal/models"
	"transaction-management/internal/repository"
	"transaction-management/internal/service"
)

const (
	msgSuccess        = "Success"
	msgCreated        = "Transaction created successfully"
	msgNotFoundPrefix = "Transaction not found with input parameter: "
	msgDuplicate      = "Transaction with reference already exists"
	msgInvalidBody    = "Invalid request body"
	msgInternal       = "Internal server error"

	maxPageSize     = 100
	defaultPageSize = 10
)

type TransactionHandler struct {
	txnService *service.TransactionService
	logger     *zap.Logger
}

func NewTransactionHandler(txnService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txnService: txnService,
		logger:     logger,
	}
}

// Create godoc
// @Summary Create a new transaction
// @Description Creates a new financial transaction. Any id or transactionDate in the payload is ignored; both are server-assigned.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction to create"
// @Success 201 {object} dto.CommonResponse
// @Failure 400 {object} dto.CommonResponse
// @Failure 409 {object} dto.CommonResponse
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, msgInvalidBody))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, err.Error()))
	}

	created, err := h.txnService.Create(c.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrDuplicateReference) {
			return c.Status(fiber.StatusConflict).JSON(dto.Error(fiber.StatusConflict, msgDuplicate))
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(created, msgCreated))
}

// GetByID godoc
// @Summary Get transaction by ID
// @Description Returns a transaction by its ID
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.CommonResponse
// @Failure 404 {object} dto.CommonResponse
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, "Invalid transaction id"))
	}

	txn, err := h.txnService.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get transaction", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}
	if txn == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(fiber.StatusNotFound, msgNotFoundPrefix+strconv.FormatInt(id, 10)))
	}

	return c.JSON(dto.Success(txn, msgSuccess))
}

// GetByReference godoc
// @Summary Get transaction by reference
// @Description Returns a transaction by its reference number
// @Tags transactions
// @Produce json
// @Param reference path string true "Transaction reference"
// @Success 200 {object} dto.CommonResponse
// @Failure 404 {object} dto.CommonResponse
// @Router /api/v1/transactions/reference/{reference} [get]
func (h *TransactionHandler) GetByReference(c *fiber.Ctx) error {
	reference := c.Params("reference")

	txn, err := h.txnService.GetByReference(c.Context(), reference)
	if err != nil {
		h.logger.Error("Failed to get transaction", zap.String("reference", reference), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}
	if txn == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(fiber.StatusNotFound, msgNotFoundPrefix+reference))
	}

	return c.JSON(dto.Success(txn, msgSuccess))
}

// List godoc
// @Summary List transactions
// @Description Returns a paginated list of transactions with optional case-insensitive category and type filters
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (0-based)" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(transactionDate)
// @Param direction query string false "Sort direction (asc or desc)" default(desc)
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by type (DEBIT or CREDIT)"
// @Success 200 {object} dto.CommonResponse
// @Failure 400 {object} dto.CommonResponse
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	size := c.QueryInt("size", defaultPageSize)
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := models.ListFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
	}
	pageReq := models.PageRequest{
		Page:      page,
		Size:      size,
		SortBy:    c.Query("sortBy", "transactionDate"),
		Direction: c.Query("direction", "desc"),
	}

	result, err := h.txnService.ListPage(c.Context(), filter, pageReq)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortField) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, err.Error()))
		}
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}

	return c.JSON(dto.Success(result, msgSuccess))
}

// Update godoc
// @Summary Update a transaction
// @Description Updates the description, amount, type and category of an existing transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.CommonResponse
// @Failure 400 {object} dto.CommonResponse
// @Failure 404 {object} dto.CommonResponse
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, "Invalid transaction id"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, msgInvalidBody))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, err.Error()))
	}

	changes := &models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		Category:    req.Category,
	}

	updated, err := h.txnService.Update(c.Context(), id, changes)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error(fiber.StatusNotFound, msgNotFoundPrefix+strconv.FormatInt(id, 10)))
		}
		h.logger.Error("Failed to update transaction", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}

	return c.JSON(dto.Success(updated, msgSuccess))
}

// Delete godoc
// @Summary Delete a transaction
// @Description Deletes a transaction by its ID
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.CommonResponse
// @Failure 404 {object} dto.CommonResponse
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(fiber.StatusBadRequest, "Invalid transaction id"))
	}

	if err := h.txnService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error(fiber.StatusNotFound, msgNotFoundPrefix+strconv.FormatInt(id, 10)))
		}
		h.logger.Error("Failed to delete transaction", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}

	return c.JSON(dto.SuccessMessage(msgSuccess))
}

// DeleteByReference godoc
// @Summary Delete a transaction by reference
// @Description Deletes a transaction by its reference number
// @Tags transactions
// @Produce json
// @Param reference path string true "Transaction reference"
// @Success 200 {object} dto.CommonResponse
// @Failure 404 {object} dto.CommonResponse
// @Router /api/v1/transactions/reference/{reference} [delete]
func (h *TransactionHandler) DeleteByReference(c *fiber.Ctx) error {
	reference := c.Params("reference")

	if err := h.txnService.DeleteByReference(c.Context(), reference); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error(fiber.StatusNotFound, msgNotFoundPrefix+reference))
		}
		h.logger.Error("Failed to delete transaction", zap.String("reference", reference), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(fiber.StatusInternalServerError, msgInternal))
	}

	return c.JSON(dto.SuccessMessage(msgSuccess))
}

// ClearCache godoc
// @Summary Clear transaction caches
// @Description Administrative recovery from suspected cache staleness; flushes both cache regions
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CommonResponse
// @Router /api/v1/cache/clear [post]
func (h *TransactionHandler) ClearCache(c *fiber.Ctx) error {
	h.txnService.ClearCache()
	return c.JSON(dto.SuccessMessage("Cache cleared"))
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
