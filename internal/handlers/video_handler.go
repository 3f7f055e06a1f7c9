package handlers

import (
	"net/http"

	"academy_backend/internal/logger"
	"academy_backend/internal/middleware"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"
	"academy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	*BaseHandler
	videoService services.VideoService
	uploads      services.UploadService
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService, uploads services.UploadService) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  base,
		videoService: videoService,
		uploads:      uploads,
	}
}

// Upload handles POST /upload-video (trainer only). The multipart body
// carries a single "video" file plus the target student's email and a
// title. The student's course is not checked against the caller's.
func (h *VideoHandler) Upload(c *gin.Context) {
	db := h.GetDB(c)

	var req dto.UploadVideoRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Video file is required"))
		return
	}

	saved, err := h.uploads.SaveVideo(c.Request.Context(), fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	video, err := h.videoService.Append(db, req.Email, req.Title, saved.URL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "video uploaded",
		"student_email", req.Email,
		"url", saved.URL,
	)
	c.JSON(http.StatusOK, gin.H{
		"message": "Video uploaded successfully",
		"video":   video,
	})
}

// Delete handles DELETE /delete-video. Students may only clear their
// own videos; naming another student's email takes trainer or
// superAdmin rights. A URL that matches nothing still succeeds.
func (h *VideoHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	callerRole := middleware.GetRole(c)

	var req dto.DeleteVideoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.videoService.DeleteByURL(db, callerID, callerRole, req.Email, req.URL); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "video deleted", "url", req.URL)
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
