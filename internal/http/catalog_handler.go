package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mchen-dev/rentops/internal/model"
)

func (h *Handler) listProperties(c *gin.Context) {
	properties, err := h.catalog.ListProperties(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) getProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	property, err := h.catalog.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) createProperty(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	var property model.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalog.CreateProperty(c.Request.Context(), &property); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *Handler) updateProperty(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var property model.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.catalog.UpdateProperty(c.Request.Context(), id, &property)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteProperty(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteProperty(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTenants(c *gin.Context) {
	tenants, err := h.catalog.ListTenants(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (h *Handler) getTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tenant, err := h.catalog.GetTenant(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *Handler) createTenant(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	var tenant model.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalog.CreateTenant(c.Request.Context(), &tenant); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

func (h *Handler) updateTenant(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var tenant model.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.catalog.UpdateTenant(c.Request.Context(), id, &tenant)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteTenant(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteTenant(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listParkingSpaces(c *gin.Context) {
	spaces, err := h.catalog.ListParkingSpaces(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, spaces)
}

func (h *Handler) getParkingSpace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	space, err := h.catalog.GetParkingSpace(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

func (h *Handler) createParkingSpace(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	var space model.ParkingSpace
	if err := c.ShouldBindJSON(&space); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalog.CreateParkingSpace(c.Request.Context(), &space); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, space)
}

func (h *Handler) updateParkingSpace(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var space model.ParkingSpace
	if err := c.ShouldBindJSON(&space); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.catalog.UpdateParkingSpace(c.Request.Context(), id, &space)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteParkingSpace(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteParkingSpace(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTickets(c *gin.Context) {
	var status *model.TicketStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		value := model.TicketStatus(raw)
		status = &value
	}
	tickets, err := h.catalog.ListTickets(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *Handler) getTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ticket, err := h.catalog.GetTicket(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *Handler) createTicket(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	var ticket model.MaintenanceTicket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalog.CreateTicket(c.Request.Context(), &ticket); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *Handler) updateTicket(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var ticket model.MaintenanceTicket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.catalog.UpdateTicket(c.Request.Context(), id, &ticket)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteTicket(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteTicket(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
