package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiu45/JobPortal/config"
	"github.com/jiu45/JobPortal/pkg/logger"
	"github.com/jiu45/JobPortal/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWT{Secret: "test-secret", ExpiredIn: 3600}}
}

func protected(t *testing.T, cfg *config.Config) (http.Handler, *uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	})
	return Middleware(cfg, logger.Logger{})(next), &seen
}

func Test_Middleware(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	token, err := utils.GenerateJWTToken(userID, cfg)
	require.NoError(t, err)

	t.Run("happy path- bearer header", func(t *testing.T) {
		handler, seen := protected(t, cfg)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, *seen)
	})

	t.Run("happy path- token query parameter", func(t *testing.T) {
		handler, seen := protected(t, cfg)

		req := httptest.NewRequest(http.MethodGet, "/?token="+token, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, *seen)
	})

	t.Run("sad path- no token", func(t *testing.T) {
		handler, _ := protected(t, cfg)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"missing bearer token"}`, rec.Body.String())
	})

	t.Run("sad path- token signed with another secret", func(t *testing.T) {
		other := &config.Config{JWT: config.JWT{Secret: "other-secret", ExpiredIn: 3600}}
		forged, err := utils.GenerateJWTToken(userID, other)
		require.NoError(t, err)

		handler, _ := protected(t, cfg)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
