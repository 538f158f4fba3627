package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
)

// OrdersHandler covers pre-order intake and fulfillment transitions. Reads and
// plain edits stay on the generic resource routes.
type OrdersHandler struct {
	holder *Holder
	logger *zap.Logger
}

// NewOrdersHandler constructs the HTTP handler adapter.
func NewOrdersHandler(holder *Holder, logger *zap.Logger) *OrdersHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrdersHandler{holder: holder, logger: logger}
}

// Create records a pre-order through the orders service so every line is
// priced from the catalog rather than from the submitted payload.
func (h *OrdersHandler) Create(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	var draft models.Order
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	order, err := ws.Orders.CreateOrder(c.Request.Context(), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Status applies a narrow fulfillment-state transition.
func (h *OrdersHandler) Status(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	err := ws.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
