package models

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "superAdmin"
	UserRoleTrainer    UserRole = "trainer"
	UserRoleStudent    UserRole = "student"
)

// User carries the identity shared by all three roles. Role-specific
// data lives in TrainerProfile / StudentProfile; the role column picks
// the one that applies and never changes after creation.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	ProfilePic   string   `json:"profilePic"`

	// Relations
	TrainerProfile *TrainerProfile `gorm:"foreignKey:UserID" json:"trainerProfile,omitempty"`
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID" json:"studentProfile,omitempty"`
	Videos         []Video         `gorm:"foreignKey:StudentID" json:"videos,omitempty"`
}
