package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emersonvf/centavo/internal/apperrors"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
	"github.com/emersonvf/centavo/internal/middleware"
)

// fixedExpenseHandler handles HTTP requests related to recurring bill
// definitions.
type fixedExpenseHandler struct {
	fixedExpenseService portssvc.FixedExpenseSvcFacade
}

// newFixedExpenseHandler creates a new fixedExpenseHandler.
func newFixedExpenseHandler(fs portssvc.FixedExpenseSvcFacade) *fixedExpenseHandler {
	return &fixedExpenseHandler{fixedExpenseService: fs}
}

// registerFixedExpenseRoutes registers routes related to fixed expenses.
func registerFixedExpenseRoutes(rg *gin.RouterGroup, fixedExpenseService portssvc.FixedExpenseSvcFacade) {
	h := newFixedExpenseHandler(fixedExpenseService)

	fixedExpenses := rg.Group("/fixed-expenses")
	{
		fixedExpenses.POST("", h.createFixedExpense)
		fixedExpenses.GET("", h.listFixedExpenses)
		fixedExpenses.POST("/check", h.checkFixedExpenses)
		fixedExpenses.GET("/:id", h.getFixedExpense)
		fixedExpenses.PUT("/:id", h.updateFixedExpense)
		fixedExpenses.DELETE("/:id", h.deleteFixedExpense)
	}
}

// createFixedExpense godoc
// @Summary Create a recurring bill definition
// @Description Creates a fixed expense that generates one pending bill per month
// @Tags fixed-expenses
// @Accept  json
// @Produce  json
// @Param   fixedExpense body dto.CreateFixedExpenseRequest true "Definition details"
// @Success 201 {object} dto.FixedExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create fixed expense"
// @Router /fixed-expenses [post]
func (h *fixedExpenseHandler) createFixedExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFixedExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	def, err := h.fixedExpenseService.CreateFixedExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create fixed expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fixed expense"})
		}
		return
	}

	logger.Info("Fixed expense created successfully", slog.String("fixed_expense_id", def.FixedExpenseID))
	c.JSON(http.StatusCreated, dto.ToFixedExpenseResponse(def))
}

// getFixedExpense godoc
// @Summary Get a fixed expense by ID
// @Tags fixed-expenses
// @Produce  json
// @Param   id path string true "Fixed expense ID"
// @Success 200 {object} dto.FixedExpenseResponse
// @Failure 404 {object} map[string]string "Fixed expense not found"
// @Failure 500 {object} map[string]string "Failed to retrieve fixed expense"
// @Router /fixed-expenses/{id} [get]
func (h *fixedExpenseHandler) getFixedExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedExpenseID := c.Param("id")

	def, err := h.fixedExpenseService.GetFixedExpenseByID(c.Request.Context(), fixedExpenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed expense not found"})
		} else {
			logger.Error("Failed to get fixed expense from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fixed expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedExpenseResponse(def))
}

// listFixedExpenses godoc
// @Summary List all fixed expenses
// @Description Retrieves all recurring bill definitions ordered by due day
// @Tags fixed-expenses
// @Produce  json
// @Success 200 {array} dto.FixedExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list fixed expenses"
// @Router /fixed-expenses [get]
func (h *fixedExpenseHandler) listFixedExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	defs, err := h.fixedExpenseService.ListFixedExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list fixed expenses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fixed expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFixedExpenseResponse(defs))
}

// updateFixedExpense godoc
// @Summary Update a fixed expense
// @Description Updates a definition. Bills already generated keep their values; the next materialization uses the new ones.
// @Tags fixed-expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Fixed expense ID"
// @Param   fixedExpense body dto.UpdateFixedExpenseRequest true "Fields to update"
// @Success 200 {object} dto.FixedExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Fixed expense not found"
// @Failure 500 {object} map[string]string "Failed to update fixed expense"
// @Router /fixed-expenses/{id} [put]
func (h *fixedExpenseHandler) updateFixedExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedExpenseID := c.Param("id")

	var req dto.UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFixedExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	def, err := h.fixedExpenseService.UpdateFixedExpense(c.Request.Context(), fixedExpenseID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed expense not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update fixed expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fixed expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedExpenseResponse(def))
}

// deleteFixedExpense godoc
// @Summary Delete a fixed expense
// @Description Removes the definition. Transactions already generated from it are untouched.
// @Tags fixed-expenses
// @Param   id path string true "Fixed expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Fixed expense not found"
// @Failure 500 {object} map[string]string "Failed to delete fixed expense"
// @Router /fixed-expenses/{id} [delete]
func (h *fixedExpenseHandler) deleteFixedExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedExpenseID := c.Param("id")

	if err := h.fixedExpenseService.DeleteFixedExpense(c.Request.Context(), fixedExpenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed expense not found"})
		} else {
			logger.Error("Failed to delete fixed expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fixed expense"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// checkFixedExpenses godoc
// @Summary Materialize this month's bills
// @Description Ensures every definition has exactly one bill transaction in the current month. Idempotent; safe to call on every app load.
// @Tags fixed-expenses
// @Produce  json
// @Success 200 {object} dto.MaterializeResponse
// @Failure 500 {object} map[string]string "Failed to check fixed expenses"
// @Router /fixed-expenses/check [post]
func (h *fixedExpenseHandler) checkFixedExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.fixedExpenseService.MaterializeMonth(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to materialize fixed expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check fixed expenses"})
		return
	}

	c.JSON(http.StatusOK, result)
}
