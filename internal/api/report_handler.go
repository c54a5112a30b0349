package api

import (
	"net/http"
	"strings"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the owner dashboard aggregates and the customer
// portal's read-only views.
type ReportHandler struct {
	rosterService     service.RosterService
	attendanceService service.AttendanceService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rosterService service.RosterService, attendanceService service.AttendanceService) *ReportHandler {
	return &ReportHandler{rosterService: rosterService, attendanceService: attendanceService}
}

// Dashboard serves the owner dashboard summary.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.rosterService.DashboardSummary(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DueDates serves members sorted by membership expiry, soonest first.
func (h *ReportHandler) DueDates(c *gin.Context) {
	members, err := h.rosterService.DueDates(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// memberForIdentity matches the signed-in customer to a member record by
// email. Customers without a matching record get an empty portal rather
// than an error.
func (h *ReportHandler) memberForIdentity(c *gin.Context) (*domain.Member, bool) {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	members, err := h.rosterService.ListMembers(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return nil, false
	}
	for i := range members {
		if strings.EqualFold(members[i].Email, identity.Email) {
			return &members[i], true
		}
	}
	return nil, true
}

// CustomerProfile serves the member record linked to the signed-in customer.
func (h *ReportHandler) CustomerProfile(c *gin.Context) {
	member, ok := h.memberForIdentity(c)
	if !ok {
		return
	}
	if member == nil {
		abortWithError(c, http.StatusNotFound, "No member record is linked to this account")
		return
	}

	resp := MemberResponse{Member: *member}
	if name, ok := h.rosterService.PlanName(c.Request.Context(), member.MembershipID); ok {
		resp.MembershipName = name
	}
	c.JSON(http.StatusOK, resp)
}

// CustomerAttendance serves the signed-in customer's visit history.
func (h *ReportHandler) CustomerAttendance(c *gin.Context) {
	member, ok := h.memberForIdentity(c)
	if !ok {
		return
	}
	if member == nil {
		c.JSON(http.StatusOK, []domain.Attendance{})
		return
	}

	records, err := h.attendanceService.History(c.Request.Context(), member.ID)
	if err != nil {
		attendanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
