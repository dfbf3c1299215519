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

// jobHandler handles HTTP requests related to delivery jobs.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{jobService: js}
}

// registerJobRoutes registers routes related to jobs.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade) {
	h := newJobHandler(jobService)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.POST("/import-period", h.importPeriod)
		jobs.GET("/:id", h.getJob)
		jobs.PUT("/:id", h.updateJob)
		jobs.DELETE("/:id", h.deleteJob)
	}
}

// createJob godoc
// @Summary Record a delivery job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create job"
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create job in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// getJob godoc
// @Summary Get a job by ID
// @Tags jobs
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Router /jobs/{id} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")

	job, err := h.jobService.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to get job from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// listJobs godoc
// @Summary List all jobs
// @Tags jobs
// @Produce  json
// @Success 200 {array} dto.JobResponse
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	jobs, err := h.jobService.ListJobs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list jobs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobResponse(jobs))
}

// updateJob godoc
// @Summary Update a job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   job body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Router /jobs/{id} [put]
func (h *jobHandler) updateJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), jobID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update job in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// deleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Param   id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to delete job"
// @Router /jobs/{id} [delete]
func (h *jobHandler) deleteJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")

	if err := h.jobService.DeleteJob(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to delete job in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// importPeriod godoc
// @Summary Import a fortnight of jobs as income
// @Description Folds all jobs in the period into a single PAID income transaction, net of the operational cost. Re-importing the same period is rejected.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   period body dto.ImportPeriodRequest true "Period bounds"
// @Success 201 {object} dto.ImportPeriodResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "No jobs in period"
// @Failure 409 {object} map[string]string "Period already imported"
// @Failure 500 {object} map[string]string "Failed to import period"
// @Router /jobs/import-period [post]
func (h *jobHandler) importPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	result, err := h.jobService.ImportPeriod(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No jobs in period"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Period already imported"})
		default:
			logger.Error("Failed to import period in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import period"})
		}
		return
	}

	logger.Info("Period imported", slog.String("total_net", result.TotalNet.String()))
	c.JSON(http.StatusCreated, result)
}
