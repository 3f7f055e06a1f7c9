package services

import (
	"fmt"

	"academy_backend/internal/auth"
	"academy_backend/internal/logger"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
	"academy_backend/internal/utils"
	"academy_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type StudentService interface {
	Register(db *gorm.DB, req *dto.RegisterStudentRequest, profilePic string, documents []string) (*models.User, error)
	ListAll(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, studentID string, req *dto.UpdateStudentRequest) (*models.User, error)
	Delete(db *gorm.DB, studentID string) error

	// ByTrainerCourse lists the students whose course equals the
	// calling trainer's course. 404 when the trainer has no course.
	ByTrainerCourse(db *gorm.DB, trainerID string) ([]models.User, error)
}

type StudentServiceImpl struct {
	userRepo repositories.UserRepository
	mailer   *utils.EmailSender
}

func NewStudentService(userRepo repositories.UserRepository, mailer *utils.EmailSender) StudentService {
	return &StudentServiceImpl{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *StudentServiceImpl) Register(db *gorm.DB, req *dto.RegisterStudentRequest, profilePic string, documents []string) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleStudent,
		// Student profile pictures are stored as bare filenames, not
		// prefixed URLs. The stored data predates this service and
		// clients resolve the prefix themselves.
		ProfilePic: profilePic,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		profile := &models.StudentProfile{
			UserID:           user.ID,
			Course:           req.Course,
			Age:              req.Age,
			ParentName:       req.ParentName,
			ParentOccupation: req.ParentOccupation,
			Fee:              req.Fee,
			Coach:            req.Coach,
			Address:          req.Address,
			Mobile:           req.Mobile,
			AlternateMobile:  req.AlternateMobile,
			DateOfJoin:       parseDate(req.DateOfJoin),
		}
		profile.SetDocuments(documents)
		return s.userRepo.CreateStudentProfile(tx, profile)
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

func (s *StudentServiceImpl) ListAll(db *gorm.DB) ([]models.User, error) {
	students, err := s.userRepo.FindByRole(db, models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return students, nil
}

func (s *StudentServiceImpl) Update(db *gorm.DB, studentID string, req *dto.UpdateStudentRequest) (*models.User, error) {
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
	if req.Age != nil {
		profileFields["age"] = *req.Age
	}
	if req.Course != nil {
		profileFields["course"] = *req.Course
	}
	if req.ParentName != nil {
		profileFields["parent_name"] = *req.ParentName
	}
	if req.ParentOccupation != nil {
		profileFields["parent_occupation"] = *req.ParentOccupation
	}
	if req.Fee != nil {
		profileFields["fee"] = *req.Fee
	}
	if req.Coach != nil {
		profileFields["coach"] = *req.Coach
	}
	if req.Address != nil {
		profileFields["address"] = *req.Address
	}
	if req.Mobile != nil {
		profileFields["mobile"] = *req.Mobile
	}
	if req.AlternateMobile != nil {
		profileFields["alternate_mobile"] = *req.AlternateMobile
	}
	if req.DateOfJoin != nil {
		profileFields["date_of_join"] = parseDate(*req.DateOfJoin)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdateUserFields(tx, studentID, userFields); err != nil {
			return err
		}
		return s.userRepo.UpdateStudentProfileFields(tx, studentID, profileFields)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.userRepo.FindByID(db, studentID)
}

func (s *StudentServiceImpl) Delete(db *gorm.DB, studentID string) error {
	if err := s.userRepo.Delete(db, studentID, models.UserRoleStudent); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("Student not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *StudentServiceImpl) ByTrainerCourse(db *gorm.DB, trainerID string) ([]models.User, error) {
	trainer, err := s.userRepo.FindByID(db, trainerID)
	if err != nil || trainer.TrainerProfile == nil || trainer.TrainerProfile.Course == "" {
		return nil, apperrors.NewNotFoundError("Trainer or course not found")
	}

	students, err := s.userRepo.FindStudentsByCourse(db, trainer.TrainerProfile.Course)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return students, nil
}

func (s *StudentServiceImpl) sendWelcome(email, name string) {
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
