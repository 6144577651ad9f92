package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchen-dev/rentops/internal/auth"
	"github.com/mchen-dev/rentops/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uuid.NewString(),
		"name": "王芳",
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	parser := auth.NewParser(testSecret)

	router := gin.New()
	router.GET("/protected", Auth(parser), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"role": string(principal.Role)})
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + signToken(t, testSecret, string(model.RoleStaff), time.Hour), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, testSecret, string(model.RoleStaff), -time.Hour), http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", string(model.RoleStaff), time.Hour), http.StatusUnauthorized},
		{"unknown role", "Bearer " + signToken(t, testSecret, "SUPERUSER", time.Hour), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareExtractsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	parser := auth.NewParser(testSecret)

	var got model.Principal
	router := gin.New()
	router.GET("/whoami", Auth(parser), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		require.True(t, ok)
		got = principal
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, string(model.RoleAdmin), time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.Equal(t, "王芳", got.Name)
	assert.True(t, got.CanWrite())
}
