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

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers routes related to investments.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/:id", h.getInvestment)
		investments.PUT("/:id", h.updateInvestment)
		investments.DELETE("/:id", h.deleteInvestment)
	}
}

// createInvestment godoc
// @Summary Create an investment
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create investment"
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	inv, err := h.investmentService.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create investment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create investment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(inv))
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Tags investments
// @Produce  json
// @Param   id path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve investment"
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	inv, err := h.investmentService.GetInvestmentByID(c.Request.Context(), investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		} else {
			logger.Error("Failed to get investment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve investment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// listInvestments godoc
// @Summary List all investments
// @Tags investments
// @Produce  json
// @Success 200 {array} dto.InvestmentResponse
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invs, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list investments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list investments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentResponse(invs))
}

// updateInvestment godoc
// @Summary Update an investment
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id path string true "Investment ID"
// @Param   investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to update investment"
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	inv, err := h.investmentService.UpdateInvestment(c.Request.Context(), investmentID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update investment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update investment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Tags investments
// @Param   id path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to delete investment"
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), investmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		} else {
			logger.Error("Failed to delete investment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete investment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
