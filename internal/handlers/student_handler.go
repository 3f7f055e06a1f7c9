package handlers

import (
	"net/http"

	"academy_backend/internal/logger"
	"academy_backend/internal/services"
	"academy_backend/internal/services/dto"
	"academy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	*BaseHandler
	studentService services.StudentService
	uploads        services.UploadService
}

func NewStudentHandler(base *BaseHandler, studentService services.StudentService, uploads services.UploadService) *StudentHandler {
	return &StudentHandler{
		BaseHandler:    base,
		studentService: studentService,
		uploads:        uploads,
	}
}

// Register handles POST /register-student (superAdmin only).
// Multipart body with an optional profilePic image and up to five
// document images. The stored profilePic is the bare filename, the
// documents are bare filenames as well.
func (h *StudentHandler) Register(c *gin.Context) {
	db := h.GetDB(c)

	var req dto.RegisterStudentRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	profilePic := ""
	var documents []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		saved, err := h.uploads.SaveImages(c.Request.Context(), form, "profilePic", "documents")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		if files := saved["profilePic"]; len(files) > 0 {
			profilePic = files[0].Filename
		}
		for _, f := range saved["documents"] {
			documents = append(documents, f.Filename)
		}
	}

	user, err := h.studentService.Register(db, &req, profilePic, documents)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "student registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Student registered successfully",
		"user":    user,
	})
}

// ListAll handles GET /all-students with profiles and videos preloaded.
func (h *StudentHandler) ListAll(c *gin.Context) {
	db := h.GetDB(c)

	students, err := h.studentService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// Update handles PUT /student/:id.
func (h *StudentHandler) Update(c *gin.Context) {
	db := h.GetDB(c)

	studentID := c.Param("id")
	if studentID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Student id is required"))
		return
	}

	var req dto.UpdateStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.studentService.Update(db, studentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "student updated", "student_id", studentID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Student updated successfully",
		"user":    user,
	})
}

// Delete handles DELETE /student/:id. Videos and profile rows go with
// the user, files stay on disk.
func (h *StudentHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	studentID := c.Param("id")
	if studentID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Student id is required"))
		return
	}

	if err := h.studentService.Delete(db, studentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "student deleted", "student_id", studentID)
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

// ByTrainerCourse handles GET /students-by-course for trainers. The
// caller's own course decides which students come back.
func (h *StudentHandler) ByTrainerCourse(c *gin.Context) {
	db := h.GetDB(c)

	trainerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	students, err := h.studentService.ByTrainerCourse(db, trainerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}
