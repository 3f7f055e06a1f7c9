package handlers

import (
	"academy_backend/internal/services"
	"academy_backend/internal/validator"
)

// AppHandlers groups every HTTP handler so the router is wired from a
// single value.
type AppHandlers struct {
	Auth    *AuthHandler
	Trainer *TrainerHandler
	Student *StudentHandler
	Video   *VideoHandler
}

func NewAppHandlers(svcs *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, svcs.AuthService, svcs.UploadService),
		Trainer: NewTrainerHandler(base, svcs.TrainerService, svcs.UploadService),
		Student: NewStudentHandler(base, svcs.StudentService, svcs.UploadService),
		Video:   NewVideoHandler(base, svcs.VideoService, svcs.UploadService),
	}
}
