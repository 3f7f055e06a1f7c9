package handlers

import (
	"net/http"

	"academy_backend/internal/logger"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"
	"academy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	*BaseHandler
	trainerService services.TrainerService
	uploads        services.UploadService
}

func NewTrainerHandler(base *BaseHandler, trainerService services.TrainerService, uploads services.UploadService) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler:    base,
		trainerService: trainerService,
		uploads:        uploads,
	}
}

// Register handles POST /register-trainer (superAdmin only).
// Multipart body with an optional profilePic image.
func (h *TrainerHandler) Register(c *gin.Context) {
	db := h.GetDB(c)

	var req dto.RegisterTrainerRequest
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

	user, err := h.trainerService.Register(db, &req, profilePicURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "trainer registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Trainer registered successfully",
		"user":    user,
	})
}

// ListNames handles GET /trainers and returns id/name pairs only.
// Any authenticated role may call it.
func (h *TrainerHandler) ListNames(c *gin.Context) {
	db := h.GetDB(c)

	names, err := h.trainerService.ListNames(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, names)
}

// ListAll handles GET /all-trainers with profiles preloaded.
func (h *TrainerHandler) ListAll(c *gin.Context) {
	db := h.GetDB(c)

	trainers, err := h.trainerService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// Update handles PUT /trainer/:id. Only the provided fields change.
func (h *TrainerHandler) Update(c *gin.Context) {
	db := h.GetDB(c)

	trainerID := c.Param("id")
	if trainerID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Trainer id is required"))
		return
	}

	var req dto.UpdateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.trainerService.Update(db, trainerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "trainer updated", "trainer_id", trainerID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Trainer updated successfully",
		"user":    user,
	})
}

// Delete handles DELETE /trainer/:id. Uploaded files stay on disk.
func (h *TrainerHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	trainerID := c.Param("id")
	if trainerID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Trainer id is required"))
		return
	}

	if err := h.trainerService.Delete(db, trainerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "trainer deleted", "trainer_id", trainerID)
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted successfully"})
}
