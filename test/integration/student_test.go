package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"academy_backend/internal/models"
	"academy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudent_WithDocuments(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	fields := map[string]string{
		"name":       "Aruzhan",
		"email":      "aruzhan@academy.test",
		"password":   "student-pass",
		"course":     "Karate",
		"age":        "12",
		"parentName": "Saule",
		"mobile":     "+7-700-123-45-67",
	}
	files := []helpers.MultipartFile{
		{Field: "profilePic", Filename: "aru.png", ContentType: "image/png", Content: []byte("png")},
		{Field: "documents", Filename: "birth.png", ContentType: "image/png", Content: []byte("doc1")},
		{Field: "documents", Filename: "medical.jpg", ContentType: "image/jpeg", Content: []byte("doc2")},
	}
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register-student", admin, fields, files)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Student registered successfully")

	var parsed struct {
		User struct {
			ID             string `json:"id"`
			ProfilePic     string `json:"profilePic"`
			StudentProfile struct {
				Documents []string `json:"documents"`
			} `json:"studentProfile"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))

	// Student profile pics are stored as bare filenames, without the
	// /uploads prefix the other roles get.
	assert.NotEmpty(t, parsed.User.ProfilePic)
	assert.False(t, strings.HasPrefix(parsed.User.ProfilePic, "/uploads/"))
	assert.Len(t, parsed.User.StudentProfile.Documents, 2)
}

func TestRegisterStudent_DisallowedImageDropped(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	fields := map[string]string{
		"name":     "Miras",
		"email":    "miras@academy.test",
		"password": "student-pass",
		"course":   "Judo",
	}
	files := []helpers.MultipartFile{
		{Field: "documents", Filename: "scan.pdf", ContentType: "application/pdf", Content: []byte("pdf")},
	}

	// The request still succeeds. The disallowed part is just absent
	// from the stored documents.
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register-student", admin, fields, files)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var parsed struct {
		User struct {
			StudentProfile struct {
				Documents []string `json:"documents"`
			} `json:"studentProfile"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Empty(t, parsed.User.StudentProfile.Documents)
}

func TestRegisterStudent_TooManyFiles(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	fields := map[string]string{
		"name":     "Overload",
		"email":    "overload@academy.test",
		"password": "student-pass",
		"course":   "Chess",
	}
	files := []helpers.MultipartFile{
		{Field: "profilePic", Filename: "p.png", ContentType: "image/png", Content: []byte("x")},
	}
	for _, name := range []string{"d1", "d2", "d3", "d4", "d5"} {
		files = append(files, helpers.MultipartFile{
			Field: "documents", Filename: name + ".png", ContentType: "image/png", Content: []byte("x"),
		})
	}

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register-student", admin, fields, files)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Too many files")
}

func TestAllStudents_SuperAdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	helpers.CreateStudent(t, ts.DB, "s1@academy.test", "pass-s1-1", "Karate")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/all-students", admin, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "s1@academy.test")
	assert.NotContains(t, body, "password_hash")

	studentToken := helpers.Login(t, ts, "s1@academy.test", "pass-s1-1")
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/all-students", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestUpdateAndDeleteStudent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	student := helpers.CreateStudent(t, ts.DB, "upd-s@academy.test", "pass-upd-1", "Karate")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/auth/student/"+student.ID, admin, map[string]interface{}{
		"course": "Judo",
		"coach":  "Coach Kim",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Judo")

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/auth/student/"+student.ID, admin, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Student deleted successfully")

	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", student.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStudentsByCourse(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateTrainer(t, ts.DB, "karate-coach@academy.test", "coach-pass", "Karate")
	helpers.CreateStudent(t, ts.DB, "k1@academy.test", "pass-k1-1", "Karate")
	helpers.CreateStudent(t, ts.DB, "k2@academy.test", "pass-k2-1", "Karate")
	helpers.CreateStudent(t, ts.DB, "j1@academy.test", "pass-j1-1", "Judo")

	token := helpers.Login(t, ts, "karate-coach@academy.test", "coach-pass")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/students-by-course", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "k1@academy.test")
	assert.Contains(t, body, "k2@academy.test")
	assert.NotContains(t, body, "j1@academy.test")
	assert.NotContains(t, body, "password_hash")
}

func TestStudentsByCourse_TrainerWithoutProfile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// A trainer row without any profile, so no course to match.
	helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "No Course",
		Email:        "nocourse@academy.test",
		PasswordHash: "nocourse-pass",
		Role:         models.UserRoleTrainer,
	})
	token := helpers.Login(t, ts, "nocourse@academy.test", "nocourse-pass")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/students-by-course", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Trainer or course not found")
}

func TestStudentsByCourse_ForbiddenForStudents(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateStudent(t, ts.DB, "snoop@academy.test", "snoop-pass", "Karate")
	token := helpers.Login(t, ts, "snoop@academy.test", "snoop-pass")

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/students-by-course", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
