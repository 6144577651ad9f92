package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchen-dev/rentops/internal/service"
)

func (h *Handler) listSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entries, err := h.schedules.ListByLease(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) generateSchedule(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	entries, err := h.schedules.Generate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entries)
}

func (h *Handler) regenerateSchedule(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	entries, err := h.schedules.Regenerate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entries)
}

type scheduleUpdateRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	PaidAmount float64 `json:"paid_amount"`
	Notes      string  `json:"notes"`
}

func (h *Handler) updateScheduleEntry(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req scheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.schedules.UpdateEntry(c.Request.Context(), id, service.ScheduleUpdateInput{
		Amount:     req.Amount,
		PaidAmount: req.PaidAmount,
		Notes:      req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) deleteScheduleEntry(c *gin.Context) {
	if !h.requireWriter(c) {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.schedules.DeleteEntry(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
