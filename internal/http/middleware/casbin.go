package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/accountsvc/domain"
)

// CasbinMW performs the explicit allow/deny check for protected routes:
// the caller's role set against (path, method) policies.
type CasbinMW struct {
	policySvc domain.PolicyService
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(policySvc domain.PolicyService) *CasbinMW {
	return &CasbinMW{policySvc: policySvc}
}

// Enforce returns the authorization middleware. Access is granted if any of
// the caller's roles satisfies a policy for the requested path and method.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		rawRoles, exists := c.Get("user_roles")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Roles not found in token"})
			c.Abort()
			return
		}
		roles, ok := rawRoles.([]string)
		if !ok || len(roles) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Roles not found in token"})
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		method := c.Request.Method

		allowed := false
		for _, role := range roles {
			// Casbin subjects carry the "role_" prefix.
			ok, err := mw.policySvc.CheckPermission("role_"+role, path, method)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
				c.Abort()
				return
			}
			if ok {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}
