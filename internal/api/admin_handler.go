package api

import (
	"fmt"
	"net/http"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the gym owner collection and the admin dashboard.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type GymOwnerRequest struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name" binding:"required"`
	Email              string                    `json:"email" binding:"required,email"`
	Phone              string                    `json:"phone"`
	GymName            string                    `json:"gymName" binding:"required"`
	Location           string                    `json:"location"`
	Status             domain.OwnerStatus        `json:"status" binding:"omitempty,oneof=active inactive"`
	SubscriptionStatus domain.SubscriptionStatus `json:"subscriptionStatus" binding:"omitempty,oneof=trial active expired"`
	Revenue            float64                   `json:"revenue"`
	JoinDate           time.Time                 `json:"joinDate"`
}

func (r GymOwnerRequest) toDomain() domain.GymOwner {
	return domain.GymOwner{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		GymName:            r.GymName,
		Location:           r.Location,
		Status:             r.Status,
		SubscriptionStatus: r.SubscriptionStatus,
		Revenue:            r.Revenue,
		JoinDate:           r.JoinDate,
	}
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req GymOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	owner, err := h.adminService.AddOwner(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

func (h *AdminHandler) Update(c *gin.Context) {
	var req GymOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	req.ID = c.Param("id")

	owner, err := h.adminService.UpdateOwner(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.adminService.DeleteOwner(c.Request.Context(), c.Param("id")); err != nil {
		rosterError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) Get(c *gin.Context) {
	owner, err := h.adminService.GetOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (h *AdminHandler) List(c *gin.Context) {
	owners, err := h.adminService.ListOwners(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// Stats serves the admin dashboard aggregate.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
