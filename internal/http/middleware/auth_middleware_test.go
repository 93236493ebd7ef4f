package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/you/accountsvc/domain"
	"github.com/you/accountsvc/internal/mocks"
)

func setupProtected(tokenSvc domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetString("user_id"),
			"user_name":  c.GetString("user_name"),
			"user_roles": c.GetStringSlice("user_roles"),
		})
	})
	return r
}

func validatingTokenService() *mocks.MockTokenService {
	svc := mocks.NewMockTokenService()
	svc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "good-token" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.TokenClaims{
			UserID: "user-1",
			Name:   "Ann",
			Roles:  []domain.Role{domain.RoleUser},
		}, nil
	}
	return svc
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	r := setupProtected(validatingTokenService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), string(domain.RoleUser))
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	r := setupProtected(validatingTokenService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "good-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		setRequest    func(req *http.Request)
		validateError error
		expectedBody  string
	}{
		{
			name:         "no credentials",
			setRequest:   func(req *http.Request) {},
			expectedBody: "Authentication required",
		},
		{
			name: "malformed authorization header",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic abc")
			},
			expectedBody: "Authentication required",
		},
		{
			name: "invalid token",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer bad-token")
			},
			validateError: domain.ErrTokenInvalid,
			expectedBody:  "Invalid token",
		},
		{
			name: "expired token",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer bad-token")
			},
			validateError: domain.ErrTokenExpired,
			expectedBody:  "Token expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockTokenService()
			if tt.validateError != nil {
				svc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, tt.validateError
				}
			}
			r := setupProtected(svc)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setRequest(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthMiddleware_HeaderWinsOverCookie(t *testing.T) {
	r := setupProtected(validatingTokenService())

	// A malformed header must not fall through to a valid cookie.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "garbage")
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "good-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
