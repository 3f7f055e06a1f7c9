package services

import (
	"academy_backend/internal/auth"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
	"academy_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// RegisterSuperAdmin is the open bootstrap registration. It has no
	// one-time guard: any caller can create another superadmin. That
	// matches the deployed behavior; the startup seeder in app covers
	// the common case so operators can firewall this route off.
	RegisterSuperAdmin(db *gorm.DB, req *dto.RegisterSuperAdminRequest, profilePicURL string) (*models.User, error)

	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// Me returns the caller's own record, profile and videos included.
	Me(db *gorm.DB, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthServiceImpl) RegisterSuperAdmin(db *gorm.DB, req *dto.RegisterSuperAdminRequest, profilePicURL string) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleSuperAdmin,
		ProfilePic:   profilePicURL,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("Email already used")
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Unknown email is reported as such, not folded into a
			// generic credentials error. Existing clients branch on it.
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Incorrect password")
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
