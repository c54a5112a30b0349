package api

import (
	"fmt"
	"net/http"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler exposes the membership plan collection.
type MembershipHandler struct {
	rosterService service.RosterService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(rosterService service.RosterService) *MembershipHandler {
	return &MembershipHandler{rosterService: rosterService}
}

type MembershipRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
}

func (r MembershipRequest) toDomain() domain.Membership {
	return domain.Membership{
		ID:          r.ID,
		Name:        r.Name,
		Duration:    r.Duration,
		Price:       r.Price,
		Description: r.Description,
		Features:    r.Features,
		Color:       r.Color,
	}
}

func (h *MembershipHandler) Create(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.rosterService.AddMembership(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *MembershipHandler) Update(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	req.ID = c.Param("id")

	plan, err := h.rosterService.UpdateMembership(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete removes a plan. Members referencing it keep their membershipId;
// lookups degrade to an absent plan name.
func (h *MembershipHandler) Delete(c *gin.Context) {
	if err := h.rosterService.DeleteMembership(c.Request.Context(), c.Param("id")); err != nil {
		rosterError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MembershipHandler) Get(c *gin.Context) {
	plan, err := h.rosterService.GetMembership(c.Request.Context(), c.Param("id"))
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *MembershipHandler) List(c *gin.Context) {
	plans, err := h.rosterService.ListMemberships(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}
