package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgettracker/internal/middleware"
	"budgettracker/internal/services"
	"budgettracker/internal/view"
)

// DashboardHandler serves the monthly summary.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	now              Clock
}

// NewDashboardHandler creates a new DashboardHandler. A nil clock uses time.Now.
func NewDashboardHandler(dashboardService services.DashboardServicer, clock Clock) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, now: clockOrNow(clock)}
}

// Index sends logged-in users to the dashboard.
// @Summary     Home
// @Tags        dashboard
// @Success     302 "Redirect to /dashboard"
// @Router      / [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.HomePath)
}

// GetDashboard renders the current month's spending summary.
// @Summary     Dashboard
// @Description Monthly totals, active budgets ranked by progress, top categories and recent expenses
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} view.Dashboard "Dashboard"
// @Failure     302 "Redirect to /auth/login when not logged in"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), user.ID, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewDashboard(user.Username, dashboard))
}
