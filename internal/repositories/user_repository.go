package repositories

import (
	"errors"
	"time"

	"academy_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindByEmailAndRole(db *gorm.DB, email string, role models.UserRole) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	UpdateUserFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	Delete(db *gorm.DB, userID string, role models.UserRole) error
	FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error)
	FindNamesByRole(db *gorm.DB, role models.UserRole) ([]UserName, error)
	FindStudentsByCourse(db *gorm.DB, course string) ([]models.User, error)

	CreateTrainerProfile(db *gorm.DB, profile *models.TrainerProfile) error
	CreateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error
	UpdateTrainerProfileFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	UpdateStudentProfileFields(db *gorm.DB, userID string, fields map[string]interface{}) error
}

// UserName is the reduced projection for coach selection lists.
type UserName struct {
	ID   string `gorm:"column:id" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("TrainerProfile").Preload("StudentProfile").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("TrainerProfile").Preload("StudentProfile").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmailAndRole(db *gorm.DB, email string, role models.UserRole) (*models.User, error) {
	var user models.User
	err := db.Preload("TrainerProfile").Preload("StudentProfile").
		First(&user, "email = ? AND role = ?", email, role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	// Email is unique across all roles, not per role.
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateUserFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string, role models.UserRole) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Owned rows go first.
		if err := tx.Where("student_id = ?", userID).Delete(&models.Video{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.TrainerProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.StudentProfile{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND role = ?", userID, role).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := db.Preload("TrainerProfile").Preload("StudentProfile").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindNamesByRole(db *gorm.DB, role models.UserRole) ([]UserName, error) {
	var names []UserName
	err := db.Model(&models.User{}).Select("id", "name").
		Where("role = ?", role).Order("name ASC").Scan(&names).Error
	return names, err
}

func (r *UserRepositoryImpl) FindStudentsByCourse(db *gorm.DB, course string) ([]models.User, error) {
	var users []models.User
	err := db.Preload("StudentProfile").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		Joins("JOIN student_profiles ON student_profiles.user_id = users.id").
		Where("users.role = ? AND student_profiles.course = ?", models.UserRoleStudent, course).
		Order("users.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CreateTrainerProfile(db *gorm.DB, profile *models.TrainerProfile) error {
	return db.Create(profile).Error
}

func (r *UserRepositoryImpl) CreateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error {
	return db.Create(profile).Error
}

func (r *UserRepositoryImpl) UpdateTrainerProfileFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()
	return db.Model(&models.TrainerProfile{}).Where("user_id = ?", userID).Updates(fields).Error
}

func (r *UserRepositoryImpl) UpdateStudentProfileFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()
	return db.Model(&models.StudentProfile{}).Where("user_id = ?", userID).Updates(fields).Error
}
