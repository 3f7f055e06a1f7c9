package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"academy_backend/database"
	"academy_backend/internal/app"
	"academy_backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps a fully wired HTTP server backed by the test
// database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer loads config from the environment (DATABASE_URL must
// point at a disposable database), migrates the schema and starts an
// httptest server with the real router.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables wipes all application tables between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()
	err := ts.DB.Exec("TRUNCATE TABLE videos, trainer_profiles, student_profiles, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// MultipartFile is one file part for SendMultipart.
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// SendMultipart performs a multipart/form-data request. Each file part
// carries an explicit Content-Type header; the upload gate filters on
// it.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files []MultipartFile) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %q: %v", key, err)
		}
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.Filename))
		header.Set("Content-Type", f.ContentType)

		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create form file %q: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("failed to write form file %q: %v", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finish multipart body: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
