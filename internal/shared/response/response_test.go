package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/shared/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	router := gin.New()
	router.GET("/test", handler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSuccessEnvelopeShape(t *testing.T) {
	rec, body := perform(t, func(c *gin.Context) {
		Success(c, 200, "all good", gin.H{"value": 1})
	})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "Success", body["status"])
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, "all good", body["message"])
	assert.Equal(t, map[string]interface{}{"value": float64(1)}, body["data"])
}

func TestSuccessWithNilData(t *testing.T) {
	_, body := perform(t, func(c *gin.Context) {
		Success(c, 201, "created", nil)
	})

	// data must be present and explicitly null
	value, ok := body["data"]
	assert.True(t, ok)
	assert.Nil(t, value)
}

func TestFailEnvelopeShape(t *testing.T) {
	rec, body := perform(t, func(c *gin.Context) {
		Fail(c, 404, "user not found")
	})

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "Error", body["status"])
	assert.Equal(t, float64(404), body["code"])
	assert.Equal(t, "user not found", body["message"])
	value, ok := body["data"]
	assert.True(t, ok)
	assert.Nil(t, value)
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", apperror.Validation("bad sex code"), 400, "bad sex code"},
		{"not found", apperror.NotFound("block not found"), 404, "block not found"},
		{"upstream", apperror.Upstream("provider down", errors.New("dial tcp")), 502, "provider down"},
		{"storage", apperror.Storage("failed to create user", errors.New("duplicate key")), 500, "failed to create user"},
		{"unclassified", errors.New("raw cause"), 500, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := perform(t, func(c *gin.Context) {
				Error(c, tt.err)
			})

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, float64(tt.wantCode), body["code"])
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.Equal(t, "Error", body["status"])
		})
	}
}

func TestStorageErrorNeverLeaksCause(t *testing.T) {
	rec, _ := perform(t, func(c *gin.Context) {
		Error(c, apperror.Storage("failed to load user", errors.New("password authentication failed")))
	})

	assert.NotContains(t, rec.Body.String(), "password authentication failed")
}
