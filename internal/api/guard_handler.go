package api

import (
	"net/http"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/guard"
	"zim/gym-app/internal/metrics"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// GuardHandler answers navigation requests: for a requested view it
// returns allow, a redirect target, or pending while the session is
// still restoring. The client calls it on every route change.
type GuardHandler struct {
	authService service.AuthService
	collector   *metrics.Collector
}

// NewGuardHandler creates a new GuardHandler.
func NewGuardHandler(authService service.AuthService, collector *metrics.Collector) *GuardHandler {
	return &GuardHandler{authService: authService, collector: collector}
}

// Navigate decides whether the requested view may be rendered.
func (h *GuardHandler) Navigate(c *gin.Context) {
	view := guard.View(c.Query("view"))
	if view == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'view' is required")
		return
	}
	if !guard.Known(view) {
		abortWithError(c, http.StatusBadRequest, "Unknown view")
		return
	}

	var role domain.Role
	if identity := h.authService.Current(); identity != nil {
		role = identity.Role
	}

	decision := guard.Decide(h.authService.State(), role, view)
	h.collector.RecordGuardDecision(string(decision.Action))
	c.JSON(http.StatusOK, decision)
}
