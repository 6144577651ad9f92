package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
	"github.com/mchen-dev/rentops/internal/service"
)

// transactionResponse carries the transaction plus the user-facing label for
// its category, resolved from the shared table so clients do not duplicate it.
type transactionResponse struct {
	model.Transaction
	CategoryLabel string `json:"category_label,omitempty"`
}

func transactionView(t model.Transaction) transactionResponse {
	label, _ := billing.CategoryLabel(t.Category, t.TransactionType)
	return transactionResponse{Transaction: t, CategoryLabel: label}
}

func transactionViews(transactions []model.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, transactionView(t))
	}
	return out
}

type transactionRequest struct {
	TransactionType   string  `json:"transaction_type" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Amount            float64 `json:"amount" binding:"required"`
	TransactionDate   string  `json:"transaction_date" binding:"required"`
	PropertyID        *string `json:"property_id"`
	TenantID          *string `json:"tenant_id"`
	LeaseID           *string `json:"lease_id"`
	PaymentScheduleID *string `json:"payment_schedule_id"`
	Description       string  `json:"description"`
}

func (h *Handler) bindTransactionInput(c *gin.Context) (service.TransactionInput, bool) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.TransactionInput{}, false
	}

	date, err := parseDate(req.TransactionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction_date"})
		return service.TransactionInput{}, false
	}
	propertyID, err := parseOptionalUUID(req.PropertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property_id"})
		return service.TransactionInput{}, false
	}
	tenantID, err := parseOptionalUUID(req.TenantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant_id"})
		return service.TransactionInput{}, false
	}
	leaseID, err := parseOptionalUUID(req.LeaseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease_id"})
		return service.TransactionInput{}, false
	}
	scheduleID, err := parseOptionalUUID(req.PaymentScheduleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment_schedule_id"})
		return service.TransactionInput{}, false
	}

	// The form sends either the storage enumerant or the user-facing label
	// ("租金收入" etc.); labels resolve through the shared category table.
	category := req.Category
	if code, ok := billing.CategoryCode(category); ok {
		category = code
	}

	return service.TransactionInput{
		TransactionType:   model.TransactionType(req.TransactionType),
		Category:          category,
		Amount:            req.Amount,
		TransactionDate:   date,
		PropertyID:        propertyID,
		TenantID:          tenantID,
		LeaseID:           leaseID,
		PaymentScheduleID: scheduleID,
		Description:       req.Description,
	}, true
}

func (h *Handler) listTransactions(c *gin.Context) {
	filter := repository.TransactionFilter{}

	if raw := strings.TrimSpace(c.Query("lease_id")); raw != "" {
		id, err := parseOptionalUUID(&raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease_id"})
			return
		}
		filter.LeaseID = id
	}
	if raw := strings.TrimSpace(c.Query("property_id")); raw != "" {
		id, err := parseOptionalUUID(&raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property_id"})
			return
		}
		filter.PropertyID = id
	}
	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		txnType := model.TransactionType(raw)
		filter.TransactionType = &txnType
	}
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		filter.From = &from
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		filter.To = &to
	}

	transactions, err := h.transactions.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionViews(transactions))
}

func (h *Handler) getTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	transaction, err := h.transactions.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionView(*transaction))
}

func (h *Handler) createTransaction(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	input, ok := h.bindTransactionInput(c)
	if !ok {
		return
	}
	transaction, err := h.transactions.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transactionView(*transaction))
}

func (h *Handler) updateTransaction(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	input, ok := h.bindTransactionInput(c)
	if !ok {
		return
	}
	transaction, err := h.transactions.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionView(*transaction))
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) financeExcel(c *gin.Context) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	result, err := h.reports.FinanceExcel(c.Request.Context(), year)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}
