package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"academy_backend/internal/auth"
	"academy_backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the password when a raw
// one was supplied.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hash, err := auth.HashPassword(user.PasswordHash)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = hash
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", user.Email, err)
	}
}

// CreateSuperAdmin inserts a superadmin account.
func CreateSuperAdmin(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test SuperAdmin",
		Email:        email,
		PasswordHash: password,
		Role:         models.UserRoleSuperAdmin,
	}
	CreateUser(t, db, user)
	return user
}

// CreateTrainer inserts a trainer with a profile for the given course.
func CreateTrainer(t *testing.T, db *gorm.DB, email, password, course string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test Trainer",
		Email:        email,
		PasswordHash: password,
		Role:         models.UserRoleTrainer,
	}
	CreateUser(t, db, user)

	profile := &models.TrainerProfile{
		UserID: user.ID,
		Course: course,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create trainer profile: %v", err)
	}
	return user
}

// CreateStudent inserts a student with a profile for the given course.
func CreateStudent(t *testing.T, db *gorm.DB, email, password, course string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test Student",
		Email:        email,
		PasswordHash: password,
		Role:         models.UserRoleStudent,
	}
	CreateUser(t, db, user)

	profile := &models.StudentProfile{
		UserID: user.ID,
		Course: course,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create student profile: %v", err)
	}
	return user
}

// Login authenticates through the API and returns the bearer token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed for %s: status %d, body %s", email, res.StatusCode, body)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if parsed.Token == "" {
		t.Fatalf("login response carries no token: %s", body)
	}
	return parsed.Token
}
