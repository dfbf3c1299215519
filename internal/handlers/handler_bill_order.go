package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emersonvf/centavo/internal/apperrors"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
	"github.com/emersonvf/centavo/internal/middleware"
)

// billOrderHandler handles HTTP requests for the manual bill ordering
// preference.
type billOrderHandler struct {
	billOrderService portssvc.BillOrderSvcFacade
}

func newBillOrderHandler(bs portssvc.BillOrderSvcFacade) *billOrderHandler {
	return &billOrderHandler{billOrderService: bs}
}

// registerBillOrderRoutes registers routes for the ordering preference.
func registerBillOrderRoutes(rg *gin.RouterGroup, billOrderService portssvc.BillOrderSvcFacade) {
	h := newBillOrderHandler(billOrderService)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("/bill-order", h.getBillOrder)
		prefs.PUT("/bill-order", h.updateBillOrder)
	}
}

// getBillOrder godoc
// @Summary Get the manual bill ordering
// @Description Returns the stored ordering and its version. A never-saved preference comes back empty at version 0.
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.BillOrderResponse
// @Failure 500 {object} map[string]string "Failed to load bill order"
// @Router /preferences/bill-order [get]
func (h *billOrderHandler) getBillOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.billOrderService.GetBillOrder(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load bill order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bill order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillOrderResponse(order))
}

// updateBillOrder godoc
// @Summary Replace the manual bill ordering
// @Description Stores a new ordering if expectedVersion matches the current one. A stale version is rejected with 409; reload and retry.
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   order body dto.UpdateBillOrderRequest true "New ordering and expected version"
// @Success 200 {object} dto.BillOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 409 {object} map[string]string "Stale version"
// @Failure 500 {object} map[string]string "Failed to save bill order"
// @Router /preferences/bill-order [put]
func (h *billOrderHandler) updateBillOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateBillOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	order, err := h.billOrderService.UpdateBillOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save bill order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bill order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillOrderResponse(order))
}
