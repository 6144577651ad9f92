package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mchen-dev/rentops/internal/http/middleware"
	"github.com/mchen-dev/rentops/internal/service"
)

type Handler struct {
	catalog      *service.CatalogService
	leases       *service.LeaseService
	schedules    *service.ScheduleService
	transactions *service.TransactionService
	dashboard    *service.DashboardService
	reports      *service.ReportService
	uploadDir    string
	log          zerolog.Logger
}

func NewHandler(
	catalog *service.CatalogService,
	leases *service.LeaseService,
	schedules *service.ScheduleService,
	transactions *service.TransactionService,
	dashboard *service.DashboardService,
	reports *service.ReportService,
	uploadDir string,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		catalog:      catalog,
		leases:       leases,
		schedules:    schedules,
		transactions: transactions,
		dashboard:    dashboard,
		reports:      reports,
		uploadDir:    uploadDir,
		log:          log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/api")
	protected.Use(authMiddleware)

	protected.GET("/properties", h.listProperties)
	protected.GET("/properties/:id", h.getProperty)
	protected.POST("/properties", h.createProperty)
	protected.PUT("/properties/:id", h.updateProperty)
	protected.DELETE("/properties/:id", h.deleteProperty)

	protected.GET("/tenants", h.listTenants)
	protected.GET("/tenants/:id", h.getTenant)
	protected.POST("/tenants", h.createTenant)
	protected.PUT("/tenants/:id", h.updateTenant)
	protected.DELETE("/tenants/:id", h.deleteTenant)
	protected.GET("/tenants/:id/leases", h.listTenantLeases)

	protected.GET("/parking-spaces", h.listParkingSpaces)
	protected.GET("/parking-spaces/:id", h.getParkingSpace)
	protected.POST("/parking-spaces", h.createParkingSpace)
	protected.PUT("/parking-spaces/:id", h.updateParkingSpace)
	protected.DELETE("/parking-spaces/:id", h.deleteParkingSpace)

	protected.GET("/tickets", h.listTickets)
	protected.GET("/tickets/:id", h.getTicket)
	protected.POST("/tickets", h.createTicket)
	protected.PUT("/tickets/:id", h.updateTicket)
	protected.DELETE("/tickets/:id", h.deleteTicket)

	protected.GET("/leases", h.listLeases)
	protected.GET("/leases/:id", h.getLease)
	protected.POST("/leases", h.createLease)
	protected.PUT("/leases/:id", h.updateLease)
	protected.DELETE("/leases/:id", h.deleteLease)
	protected.POST("/leases/:id/renew", h.renewLease)
	protected.POST("/leases/reconcile-status", h.reconcileLeaseStatuses)
	protected.GET("/leases/:id/rent-status", h.leaseRentStatus)
	protected.GET("/leases/:id/schedule", h.listSchedule)
	protected.POST("/leases/:id/schedule", h.generateSchedule)
	protected.POST("/leases/:id/schedule/regenerate", h.regenerateSchedule)
	protected.GET("/leases/:id/contract/pdf", h.leaseContractPDF)

	protected.PATCH("/schedules/:id", h.updateScheduleEntry)
	protected.DELETE("/schedules/:id", h.deleteScheduleEntry)

	protected.GET("/transactions", h.listTransactions)
	protected.GET("/transactions/:id", h.getTransaction)
	protected.POST("/transactions", h.createTransaction)
	protected.PUT("/transactions/:id", h.updateTransaction)
	protected.DELETE("/transactions/:id", h.deleteTransaction)

	protected.GET("/dashboard/stats", h.dashboardStats)
	protected.GET("/reports/finance/excel", h.financeExcel)

	protected.POST("/uploads", h.uploadFile)
	if h.uploadDir != "" {
		router.Static("/uploads", h.uploadDir)
	}
}

// requireWriter enforces write access; viewers get read-only endpoints.
func (h *Handler) requireWriter(c *gin.Context) bool {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return false
	}
	if !principal.CanWrite() {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only access"})
		return false
	}
	return true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalString(raw *string) *string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	return &trimmed
}
