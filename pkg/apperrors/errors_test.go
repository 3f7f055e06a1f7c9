package apperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternalError, "db", "Server error", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInternalError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestConstructors_StatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("User not found").HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("Incorrect password").HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("Access denied").HTTPCode)
	// Duplicate email returns 400, not 409. Existing clients match on it.
	assert.Equal(t, http.StatusBadRequest, NewConflictError("Email already used").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, InternalError(errors.New("boom")).HTTPCode)
}

func TestHandleError_RendersMessageField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, NewNotFoundError("Student not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Student not found","code":"NOT_FOUND"}`, w.Body.String())
}

func TestHandleError_UnknownErrorBecomesInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, errors.New("something leaked"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
	assert.NotContains(t, w.Body.String(), "something leaked")
}
