package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler exposes the member collection of the roster.
type MemberHandler struct {
	rosterService service.RosterService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(rosterService service.RosterService) *MemberHandler {
	return &MemberHandler{rosterService: rosterService}
}

// --- Request/Response Structs ---

type MemberRequest struct {
	ID           string              `json:"id"`
	Name         string              `json:"name" binding:"required"`
	Email        string              `json:"email" binding:"required,email"`
	Phone        string              `json:"phone" binding:"required"`
	MembershipID string              `json:"membershipId" binding:"required"`
	TrainerID    string              `json:"trainerId"`
	Status       domain.MemberStatus `json:"status" binding:"omitempty,oneof=active inactive pending"`
	MemberID     string              `json:"memberId"`
	JoinDate     time.Time           `json:"joinDate"`
	ExpiryDate   *time.Time          `json:"expiryDate"`
}

func (r MemberRequest) toDomain() domain.Member {
	return domain.Member{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		MembershipID: r.MembershipID,
		TrainerID:    r.TrainerID,
		Status:       r.Status,
		MemberID:     r.MemberID,
		JoinDate:     r.JoinDate,
		ExpiryDate:   r.ExpiryDate,
	}
}

// MemberResponse is a Member plus the resolved plan name. An empty
// MembershipName means the plan reference dangles; this is legal.
type MemberResponse struct {
	domain.Member
	MembershipName string `json:"membershipName,omitempty"`
}

type AssignTrainerRequest struct {
	TrainerID string `json:"trainerId" binding:"required"`
}

// rosterError maps roster service errors to HTTP status codes.
func rosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrTrainerNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrOwnerNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateID):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// --- Handler Methods ---

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member, err := h.rosterService.AddMember(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	req.ID = c.Param("id")

	member, err := h.rosterService.UpdateMember(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.rosterService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		rosterError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.rosterService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		rosterError(c, err)
		return
	}

	resp := MemberResponse{Member: *member}
	if name, ok := h.rosterService.PlanName(c.Request.Context(), member.MembershipID); ok {
		resp.MembershipName = name
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) List(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		matched, err := h.rosterService.SearchMembers(c.Request.Context(), query)
		if err != nil {
			rosterError(c, err)
			return
		}
		c.JSON(http.StatusOK, matched)
		return
	}

	members, err := h.rosterService.ListMembers(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AssignTrainer links the member and trainer in both directions.
func (h *MemberHandler) AssignTrainer(c *gin.Context) {
	var req AssignTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.rosterService.AssignTrainer(c.Request.Context(), c.Param("id"), req.TrainerID); err != nil {
		rosterError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnassignTrainer removes the member's trainer link on both sides.
func (h *MemberHandler) UnassignTrainer(c *gin.Context) {
	if err := h.rosterService.UnassignTrainer(c.Request.Context(), c.Param("id")); err != nil {
		rosterError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
