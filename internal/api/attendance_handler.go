package api

import (
	"errors"
	"fmt"
	"net/http"

	"zim/gym-app/internal/metrics"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler exposes the check-in ledger.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
	collector         *metrics.Collector
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService service.AttendanceService, collector *metrics.Collector) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, collector: collector}
}

type CheckInRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

func attendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyCheckedIn), errors.Is(err, service.ErrNotCheckedIn):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// CheckIn opens a ledger record for the member; at most one open record
// per member is allowed.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	record, err := h.attendanceService.CheckIn(c.Request.Context(), req.MemberID)
	if err != nil {
		attendanceError(c, err)
		return
	}

	h.collector.RecordCheckIn()
	c.JSON(http.StatusCreated, record)
}

// CheckOut closes the member's open record and stamps the duration.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	record, err := h.attendanceService.CheckOut(c.Request.Context(), req.MemberID)
	if err != nil {
		attendanceError(c, err)
		return
	}

	h.collector.RecordCheckOut()
	c.JSON(http.StatusOK, record)
}

// List returns the ledger; ?open=true narrows to members currently in
// the gym, ?memberId= to one member's history.
func (h *AttendanceHandler) List(c *gin.Context) {
	if memberID := c.Query("memberId"); memberID != "" {
		records, err := h.attendanceService.History(c.Request.Context(), memberID)
		if err != nil {
			attendanceError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	if c.Query("open") == "true" {
		records, err := h.attendanceService.ListOpen(c.Request.Context())
		if err != nil {
			attendanceError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := h.attendanceService.List(c.Request.Context())
	if err != nil {
		attendanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
