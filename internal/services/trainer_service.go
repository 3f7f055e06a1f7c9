package services

import (
	"fmt"
	"time"

	"academy_backend/internal/auth"
	"academy_backend/internal/logger"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
	"academy_backend/internal/utils"
	"academy_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TrainerService interface {
	Register(db *gorm.DB, req *dto.RegisterTrainerRequest, profilePicURL string) (*models.User, error)
	ListNames(db *gorm.DB) ([]repositories.UserName, error)
	ListAll(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, trainerID string, req *dto.UpdateTrainerRequest) (*models.User, error)
	Delete(db *gorm.DB, trainerID string) error
}

type TrainerServiceImpl struct {
	userRepo repositories.UserRepository
	mailer   *utils.EmailSender
}

func NewTrainerService(userRepo repositories.UserRepository, mailer *utils.EmailSender) TrainerService {
	return &TrainerServiceImpl{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *TrainerServiceImpl) Register(db *gorm.DB, req *dto.RegisterTrainerRequest, profilePicURL string) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleTrainer,
		ProfilePic:   profilePicURL,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		profile := &models.TrainerProfile{
			UserID:        user.ID,
			Course:        req.Course,
			Salary:        req.Salary,
			ContactNumber: req.ContactNumber,
			DateOfJoin:    parseDate(req.DateOfJoin),
		}
		return s.userRepo.CreateTrainerProfile(tx, profile)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("Email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcome(user.Email, user.Name)

	return user, nil
}

func (s *TrainerServiceImpl) ListNames(db *gorm.DB) ([]repositories.UserName, error) {
	names, err := s.userRepo.FindNamesByRole(db, models.UserRoleTrainer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return names, nil
}

func (s *TrainerServiceImpl) ListAll(db *gorm.DB) ([]models.User, error) {
	trainers, err := s.userRepo.FindByRole(db, models.UserRoleTrainer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return trainers, nil
}

func (s *TrainerServiceImpl) Update(db *gorm.DB, trainerID string, req *dto.UpdateTrainerRequest) (*models.User, error) {
	userFields := map[string]interface{}{}
	if req.Name != nil {
		userFields["name"] = *req.Name
	}
	if req.Email != nil {
		userFields["email"] = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		userFields["password_hash"] = hashed
	}

	profileFields := map[string]interface{}{}
	if req.Course != nil {
		profileFields["course"] = *req.Course
	}
	if req.Salary != nil {
		profileFields["salary"] = *req.Salary
	}
	if req.ContactNumber != nil {
		profileFields["contact_number"] = *req.ContactNumber
	}
	if req.DateOfJoin != nil {
		profileFields["date_of_join"] = parseDate(*req.DateOfJoin)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdateUserFields(tx, trainerID, userFields); err != nil {
			return err
		}
		return s.userRepo.UpdateTrainerProfileFields(tx, trainerID, profileFields)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Trainer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.userRepo.FindByID(db, trainerID)
}

func (s *TrainerServiceImpl) Delete(db *gorm.DB, trainerID string) error {
	// Hard delete. Uploaded files stay on disk; there is no file GC.
	if err := s.userRepo.Delete(db, trainerID, models.UserRoleTrainer); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("Trainer not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TrainerServiceImpl) sendWelcome(email, name string) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	go func() {
		body := fmt.Sprintf("<p>Hello %s,</p><p>Your academy account is ready. Sign in with %s and the password you were given.</p>", name, email)
		if err := s.mailer.Send(email, "Your academy account", body); err != nil {
			logger.Warn("failed to send welcome email", "email", email, "error", err)
		}
	}()
}

// parseDate accepts the date formats the frontend sends. A value that
// parses as neither is treated as absent.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
