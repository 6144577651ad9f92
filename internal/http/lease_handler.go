package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/service"
)

type leaseRequest struct {
	TenantID            string  `json:"tenant_id" binding:"required"`
	LeaseType           string  `json:"lease_type" binding:"required"`
	PropertyID          *string `json:"property_id"`
	ParkingSpaceID      *string `json:"parking_space_id"`
	LeaseStart          string  `json:"lease_start" binding:"required"`
	LeaseEnd            string  `json:"lease_end" binding:"required"`
	MonthlyRent         float64 `json:"monthly_rent" binding:"required"`
	DepositPaid         float64 `json:"deposit_paid"`
	TotalContractAmount float64 `json:"total_contract_amount"`
	PaymentMethod       string  `json:"payment_method" binding:"required"`
	CarNumber           *string `json:"car_number"`
	CarModel            *string `json:"car_model"`
	Notes               string  `json:"notes"`
	ContractPhotos      string  `json:"contract_photos"`
}

func (h *Handler) bindLeaseInput(c *gin.Context) (service.LeaseInput, bool) {
	var req leaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.LeaseInput{}, false
	}

	tenantID, err := parseOptionalUUID(&req.TenantID)
	if err != nil || tenantID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant_id"})
		return service.LeaseInput{}, false
	}
	propertyID, err := parseOptionalUUID(req.PropertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property_id"})
		return service.LeaseInput{}, false
	}
	parkingSpaceID, err := parseOptionalUUID(req.ParkingSpaceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parking_space_id"})
		return service.LeaseInput{}, false
	}
	start, err := parseDate(req.LeaseStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease_start"})
		return service.LeaseInput{}, false
	}
	end, err := parseDate(req.LeaseEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease_end"})
		return service.LeaseInput{}, false
	}

	return service.LeaseInput{
		TenantID:            *tenantID,
		LeaseType:           model.LeaseType(req.LeaseType),
		PropertyID:          propertyID,
		ParkingSpaceID:      parkingSpaceID,
		LeaseStart:          start,
		LeaseEnd:            end,
		MonthlyRent:         req.MonthlyRent,
		DepositPaid:         req.DepositPaid,
		TotalContractAmount: req.TotalContractAmount,
		PaymentMethod:       model.PaymentMethod(req.PaymentMethod),
		CarNumber:           optionalString(req.CarNumber),
		CarModel:            optionalString(req.CarModel),
		Notes:               req.Notes,
		ContractPhotos:      req.ContractPhotos,
	}, true
}

func (h *Handler) listLeases(c *gin.Context) {
	leases, err := h.leases.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handler) listTenantLeases(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	leases, err := h.leases.ListByTenant(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, leases)
}

func (h *Handler) getLease(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lease, err := h.leases.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lease)
}

func (h *Handler) createLease(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	input, ok := h.bindLeaseInput(c)
	if !ok {
		return
	}
	lease, err := h.leases.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lease)
}

func (h *Handler) updateLease(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	input, ok := h.bindLeaseInput(c)
	if !ok {
		return
	}
	lease, err := h.leases.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lease)
}

func (h *Handler) deleteLease(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.leases.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type renewLeaseRequest struct {
	Months int `json:"months"`
}

func (h *Handler) renewLease(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req renewLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	renewal, err := h.leases.Renew(c.Request.Context(), id, req.Months)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renewal)
}

func (h *Handler) reconcileLeaseStatuses(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	updated, err := h.leases.ReconcileStatuses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) leaseRentStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	figures, err := h.leases.RentStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, figures)
}

func (h *Handler) leaseContractPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.reports.ContractPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
