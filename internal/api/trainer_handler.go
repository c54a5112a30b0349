package api

import (
	"fmt"
	"net/http"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainerHandler exposes the trainer collection of the roster.
type TrainerHandler struct {
	rosterService service.RosterService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(rosterService service.RosterService) *TrainerHandler {
	return &TrainerHandler{rosterService: rosterService}
}

type TrainerRequest struct {
	ID             string               `json:"id"`
	Name           string               `json:"name" binding:"required"`
	Email          string               `json:"email" binding:"required,email"`
	Phone          string               `json:"phone" binding:"required"`
	Specialization string               `json:"specialization" binding:"required"`
	Experience     string               `json:"experience"`
	Status         domain.TrainerStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	TrainerID      string               `json:"trainerId"`
	JoinDate       time.Time            `json:"joinDate"`
}

func (r TrainerRequest) toDomain() domain.Trainer {
	return domain.Trainer{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Specialization: r.Specialization,
		Experience:     r.Experience,
		Status:         r.Status,
		TrainerID:      r.TrainerID,
		JoinDate:       r.JoinDate,
	}
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.rosterService.AddTrainer(c.Request.Context(), req.toDomain())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) Update(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	req.ID = c.Param("id")

	// Assignment lists change only through the assign/unassign
	// operations; carry the stored one over on full replacement.
	existing, err := h.rosterService.GetTrainer(c.Request.Context(), req.ID)
	if err != nil {
		rosterError(c, err)
		return
	}
	trainer := req.toDomain()
	trainer.AssignedMembers = existing.AssignedMembers

	updated, err := h.rosterService.UpdateTrainer(c.Request.Context(), trainer)
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	if err := h.rosterService.DeleteTrainer(c.Request.Context(), c.Param("id")); err != nil {
		rosterError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	trainer, err := h.rosterService.GetTrainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.rosterService.ListTrainers(c.Request.Context())
	if err != nil {
		rosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}
