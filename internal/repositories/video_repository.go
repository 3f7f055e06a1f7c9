package repositories

import (
	"academy_backend/internal/models"

	"gorm.io/gorm"
)

type VideoRepository interface {
	// Append inserts a single video row. Insertion is the whole
	// operation, so concurrent trainer uploads to the same student
	// cannot lose each other's entries.
	Append(db *gorm.DB, video *models.Video) error

	FindByStudent(db *gorm.DB, studentID string) ([]models.Video, error)

	// DeleteByURL removes every entry of the student matching the URL
	// and returns the number removed. Zero is not an error: deleting
	// an absent URL is a no-op.
	DeleteByURL(db *gorm.DB, studentID, url string) (int64, error)
}

type VideoRepositoryImpl struct{}

func NewVideoRepository() VideoRepository {
	return &VideoRepositoryImpl{}
}

func (r *VideoRepositoryImpl) Append(db *gorm.DB, video *models.Video) error {
	return db.Create(video).Error
}

func (r *VideoRepositoryImpl) FindByStudent(db *gorm.DB, studentID string) ([]models.Video, error) {
	var videos []models.Video
	err := db.Where("student_id = ?", studentID).Order("uploaded_at ASC").Find(&videos).Error
	return videos, err
}

func (r *VideoRepositoryImpl) DeleteByURL(db *gorm.DB, studentID, url string) (int64, error) {
	result := db.Where("student_id = ? AND url = ?", studentID, url).Delete(&models.Video{})
	return result.RowsAffected, result.Error
}
