package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"academy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func superAdminToken(t *testing.T, ts *helpers.TestServer) string {
	t.Helper()
	helpers.CreateSuperAdmin(t, ts.DB, "root@academy.test", "root-pass-123")
	return helpers.Login(t, ts, "root@academy.test", "root-pass-123")
}

func TestRegisterTrainer(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	fields := map[string]string{
		"name":          "Coach Kim",
		"email":         "kim@academy.test",
		"password":      "coach-pass-1",
		"course":        "Taekwondo",
		"salary":        "50000",
		"contactNumber": "+7-777-000-11-22",
		"dateOfJoin":    "2024-03-01",
	}
	files := []helpers.MultipartFile{
		{Field: "profilePic", Filename: "kim.jpg", ContentType: "image/jpeg", Content: []byte("jpg")},
	}
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register-trainer", admin, fields, files)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Trainer registered successfully")
	assert.Contains(t, body, "Taekwondo")
	assert.Contains(t, body, "/uploads/")

	// Duplicate email.
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register-trainer", admin, fields, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email already exists")
}

func TestRegisterTrainer_ForbiddenForTrainer(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateTrainer(t, ts.DB, "coach@academy.test", "coach-pass", "Boxing")
	token := helpers.Login(t, ts, "coach@academy.test", "coach-pass")

	res, _ := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register-trainer", token, map[string]string{
		"name":     "Sneaky",
		"email":    "sneaky@academy.test",
		"password": "pass-123",
	}, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestListTrainers_NamesOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateTrainer(t, ts.DB, "a@academy.test", "pass-a-1", "Karate")
	helpers.CreateTrainer(t, ts.DB, "b@academy.test", "pass-b-1", "Judo")
	helpers.CreateStudent(t, ts.DB, "kid@academy.test", "kid-pass", "Karate")

	// Any authenticated role can read the name list.
	token := helpers.Login(t, ts, "kid@academy.test", "kid-pass")
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/trainers", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var names []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &names))
	assert.Len(t, names, 2)
	assert.NotContains(t, body, "a@academy.test")
}

func TestAllTrainers_SuperAdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	helpers.CreateTrainer(t, ts.DB, "full@academy.test", "full-pass", "Aikido")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/all-trainers", admin, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "full@academy.test")
	assert.Contains(t, body, "Aikido")
	assert.NotContains(t, body, "password_hash")

	trainerToken := helpers.Login(t, ts, "full@academy.test", "full-pass")
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/all-trainers", trainerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestUpdateTrainer_PartialFields(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	trainer := helpers.CreateTrainer(t, ts.DB, "upd@academy.test", "upd-pass-1", "Karate")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/auth/trainer/"+trainer.ID, admin, map[string]interface{}{
		"course": "Kickboxing",
		"salary": "75000",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Kickboxing")
	// Untouched fields survive.
	assert.Contains(t, body, "upd@academy.test")

	// The old password still works, the update did not touch it.
	helpers.Login(t, ts, "upd@academy.test", "upd-pass-1")
}

func TestUpdateTrainer_RehashesPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	trainer := helpers.CreateTrainer(t, ts.DB, "rehash@academy.test", "old-pass-1", "Karate")

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/auth/trainer/"+trainer.ID, admin, map[string]interface{}{
		"password": "new-pass-1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	helpers.Login(t, ts, "rehash@academy.test", "new-pass-1")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "rehash@academy.test",
		"password": "old-pass-1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestDeleteTrainer(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	admin := superAdminToken(t, ts)

	trainer := helpers.CreateTrainer(t, ts.DB, "gone@academy.test", "gone-pass", "Karate")

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/auth/trainer/"+trainer.ID, admin, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Trainer deleted successfully")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "gone@academy.test",
		"password": "gone-pass",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
