package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/you/accountsvc/internal/mocks"
	"github.com/you/accountsvc/internal/services"
)

func setupPolicyRouter(enforcer *mocks.MockCasbinEnforcer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &PolicyHandlers{PolicySvc: services.NewPolicyServiceWithEnforcer(enforcer)}

	r := gin.New()
	r.GET("/admin/policies", h.List)
	r.POST("/admin/policies", h.Add)
	r.DELETE("/admin/policies", h.Remove)
	return r
}

func TestPolicyHandlers_List(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return [][]string{{"role_user", "/auth/me", "GET"}}, nil
	}
	r := setupPolicyRouter(enforcer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/policies", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "role_user")
}

func TestPolicyHandlers_List_StoreFailure(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return nil, errors.New("adapter unavailable")
	}
	r := setupPolicyRouter(enforcer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/policies", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to list policies")
}

func TestPolicyHandlers_Add(t *testing.T) {
	r := setupPolicyRouter(mocks.NewMockCasbinEnforcer())

	body := bytes.NewBufferString(`{"sub":"role_user","obj":"/auth/me","act":"GET"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/policies", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Missing fields never reach the service.
	req = httptest.NewRequest(http.MethodPost, "/admin/policies", bytes.NewBufferString(`{"sub":"role_user"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPolicyHandlers_Remove(t *testing.T) {
	r := setupPolicyRouter(mocks.NewMockCasbinEnforcer())

	body := bytes.NewBufferString(`{"sub":"role_user","obj":"/auth/me","act":"GET"}`)
	req := httptest.NewRequest(http.MethodDelete, "/admin/policies", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
