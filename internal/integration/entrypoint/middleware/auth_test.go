package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
)

// stubTokenService accepts exactly one token string.
type stubTokenService struct {
	validToken string
	claims     *adapter.TokenClaims
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token == s.validToken {
		return s.claims, nil
	}
	return nil, errors.New("invalid token")
}

func authTestEngine(tokenService adapter.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(NewAuthMiddleware(tokenService).Authenticate())
	engine.GET("/protected", func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	service := &stubTokenService{
		validToken: "good-token",
		claims: &adapter.TokenClaims{
			UserID:    userID,
			Email:     "user@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid bearer token passes",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header is rejected",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer header is rejected",
			authHeader: "Basic Zm9vOmJhcg==",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token is rejected",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token is rejected",
			authHeader: "Bearer forged-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := authTestEngine(service)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, recorder.Code, recorder.Body)
			}
		})
	}
}
