package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
	"github.com/emersonvf/centavo/internal/dto"
	"github.com/emersonvf/centavo/internal/middleware"
)

// backupHandler assembles the full-data export.
type backupHandler struct {
	services *portssvc.ServiceContainer
}

func newBackupHandler(services *portssvc.ServiceContainer) *backupHandler {
	return &backupHandler{services: services}
}

// registerBackupRoutes registers the backup route.
func registerBackupRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBackupHandler(services)
	rg.GET("/backup", h.getBackup)
}

// getBackup godoc
// @Summary Export all data
// @Description Returns every collection as one JSON document for manual backup
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.BackupResponse
// @Failure 500 {object} map[string]string "Failed to export data"
// @Router /backup [get]
func (h *backupHandler) getBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	txns, err := h.services.Transaction.ListTransactions(ctx)
	if err != nil {
		logger.Error("Backup failed listing transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	defs, err := h.services.FixedExpense.ListFixedExpenses(ctx)
	if err != nil {
		logger.Error("Backup failed listing fixed expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	goals, err := h.services.Goal.ListGoals(ctx)
	if err != nil {
		logger.Error("Backup failed listing goals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	invs, err := h.services.Investment.ListInvestments(ctx)
	if err != nil {
		logger.Error("Backup failed listing investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	jobs, err := h.services.Job.ListJobs(ctx)
	if err != nil {
		logger.Error("Backup failed listing jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	c.JSON(http.StatusOK, dto.BackupResponse{
		ExportedAt:    time.Now().UTC(),
		Transactions:  dto.ToListTransactionResponse(txns),
		FixedExpenses: dto.ToListFixedExpenseResponse(defs),
		Goals:         dto.ToListGoalResponse(goals),
		Investments:   dto.ToListInvestmentResponse(invs),
		Jobs:          dto.ToListJobResponse(jobs),
	})
}
