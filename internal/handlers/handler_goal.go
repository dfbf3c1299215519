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

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers routes related to goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// getGoal godoc
// @Summary Get a goal by ID
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve goal"
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to get goal from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List all goals
// @Tags goals
// @Produce  json
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list goals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   id path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to update goal"
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Param   id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to delete goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
