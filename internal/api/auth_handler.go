package api

import (
	"errors"
	"fmt"
	"net/http"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/metrics"
	"zim/gym-app/internal/service"
	"zim/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the session store over HTTP.
type AuthHandler struct {
	authService service.AuthService
	fileStorage storage.FileStorage // nil when avatar storage is not configured
	collector   *metrics.Collector
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, fileStorage storage.FileStorage, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		fileStorage: fileStorage,
		collector:   collector,
	}
}

// --- Request/Response Structs ---

// Sign-in accepts any non-empty email/password pair, so only presence
// is enforced here; no address-shape validation.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IdentityResponse mirrors the durable session record shape.
type IdentityResponse struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	Avatar string      `json:"avatar,omitempty"`
}

type SessionResponse struct {
	Token string           `json:"token"`
	User  IdentityResponse `json:"user"`
}

func mapIdentityToResponse(identity *domain.Identity) IdentityResponse {
	if identity == nil {
		return IdentityResponse{}
	}
	return IdentityResponse{
		ID:     identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   identity.Role,
		Avatar: identity.Avatar,
	}
}

// --- Handler Methods ---

// Login signs a user in. Any non-empty credential pair is accepted; the
// role is derived from the email address alone.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	identity, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	token, err := h.authService.IssueToken(identity)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}

	h.collector.RecordLogin(string(identity.Role))
	c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  mapIdentityToResponse(identity),
	})
}

// Signup registers a new gym owner account and signs it in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	identity, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrCredentialsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during signup")
		}
		return
	}

	token, err := h.authService.IssueToken(identity)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process signup")
		return
	}

	h.collector.RecordSignup()
	c.JSON(http.StatusCreated, SessionResponse{
		Token: token,
		User:  mapIdentityToResponse(identity),
	})
}

// Logout clears the current session and removes the durable record.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not clear the session")
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the identity carried by the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get identity from token")
		return
	}
	c.JSON(http.StatusOK, mapIdentityToResponse(&identity))
}

// --- Avatar upload (requires configured S3 storage) ---

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// RequestAvatarUpload hands the client a presigned PUT URL for its own
// avatar object. The client uploads directly to storage.
func (h *AuthHandler) RequestAvatarUpload(c *gin.Context) {
	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	identity, err := getIdentityFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get identity from token")
		return
	}

	key := storage.AvatarKey(identity.ID)
	uploadURL, err := h.fileStorage.GeneratePresignedUploadURL(c.Request.Context(), key, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not generate upload URL")
		return
	}

	c.JSON(http.StatusOK, AvatarUploadResponse{UploadURL: uploadURL, ObjectKey: key})
}

// GetAvatarURL returns a short-lived download URL for the caller's avatar.
func (h *AuthHandler) GetAvatarURL(c *gin.Context) {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get identity from token")
		return
	}

	downloadURL, err := h.fileStorage.GeneratePresignedDownloadURL(c.Request.Context(), storage.AvatarKey(identity.ID), storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not generate download URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": downloadURL})
}
