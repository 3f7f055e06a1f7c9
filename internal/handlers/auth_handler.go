package handlers

import (
	"net/http"

	"academy_backend/internal/logger"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	uploads     services.UploadService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, uploads services.UploadService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		uploads:     uploads,
	}
}

// RegisterSuperAdmin handles POST /register-superadmin. The body is
// multipart form data with an optional profilePic image.
func (h *AuthHandler) RegisterSuperAdmin(c *gin.Context) {
	db := h.GetDB(c)

	var req dto.RegisterSuperAdminRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	profilePicURL := ""
	if form, err := c.MultipartForm(); err == nil && form != nil {
		saved, err := h.uploads.SaveImages(c.Request.Context(), form, "profilePic")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		if files := saved["profilePic"]; len(files) > 0 {
			profilePicURL = files[0].URL
		}
	}

	user, err := h.authService.RegisterSuperAdmin(db, &req, profilePicURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "superadmin registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "SuperAdmin registered successfully",
		"user":    user,
	})
}

// Login handles POST /login for every role.
func (h *AuthHandler) Login(c *gin.Context) {
	db := h.GetDB(c)

	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "user logged in", "user_id", resp.User.ID, "role", resp.User.Role)
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /me and returns the authenticated user's record.
func (h *AuthHandler) Me(c *gin.Context) {
	db := h.GetDB(c)

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Healthz is a liveness probe, no auth and no database round trip.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
