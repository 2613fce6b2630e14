package handlers

import (
	"context"
	"net/http"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

// DashboardService defines the dashboard operations used by these handlers.
type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

// NewDashboardSummaryHandler returns an HTTP handler for the household dashboard.
// @Summary Dashboard summary
// @Description Returns aggregated counts across maintenance, inventory, tasks, and bills plus upcoming maintenance
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardSummary "Summary"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardSummaryHandler(svc DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
