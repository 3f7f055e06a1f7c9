package services

import (
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VideoService interface {
	// Append records an already-stored video file against the student
	// with the given email. The trainer's own course is deliberately
	// not checked against the student's; tightening that would break
	// existing cross-course uploads.
	Append(db *gorm.DB, studentEmail, title, url string) (*models.Video, error)

	// DeleteByURL removes the student's video entries matching url.
	// Deleting a URL the student does not have is a successful no-op.
	// A caller naming another student's email must hold the trainer or
	// superAdmin role; with no email the caller's own record is used.
	DeleteByURL(db *gorm.DB, callerID string, callerRole models.UserRole, email, url string) error
}

type VideoServiceImpl struct {
	userRepo  repositories.UserRepository
	videoRepo repositories.VideoRepository
}

func NewVideoService(userRepo repositories.UserRepository, videoRepo repositories.VideoRepository) VideoService {
	return &VideoServiceImpl{
		userRepo:  userRepo,
		videoRepo: videoRepo,
	}
}

func (s *VideoServiceImpl) Append(db *gorm.DB, studentEmail, title, url string) (*models.Video, error) {
	student, err := s.userRepo.FindByEmailAndRole(db, studentEmail, models.UserRoleStudent)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	video := &models.Video{
		StudentID: student.ID,
		Title:     title,
		URL:       url,
	}
	if err := s.videoRepo.Append(db, video); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return video, nil
}

func (s *VideoServiceImpl) DeleteByURL(db *gorm.DB, callerID string, callerRole models.UserRole, email, url string) error {
	var student *models.User

	if email == "" {
		caller, err := s.userRepo.FindByID(db, callerID)
		if err != nil || caller.Role != models.UserRoleStudent {
			return apperrors.NewNotFoundError("Student not found")
		}
		student = caller
	} else {
		target, err := s.userRepo.FindByEmailAndRole(db, email, models.UserRoleStudent)
		if err != nil {
			return apperrors.NewNotFoundError("Student not found")
		}
		// Students may only touch their own list.
		if callerRole == models.UserRoleStudent && target.ID != callerID {
			return apperrors.NewForbiddenError("Access denied")
		}
		student = target
	}

	if _, err := s.videoRepo.DeleteByURL(db, student.ID, url); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
