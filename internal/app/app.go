package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/accountsvc/domain"
	"github.com/you/accountsvc/internal/config"
	httpx "github.com/you/accountsvc/internal/http"
	"github.com/you/accountsvc/internal/http/handlers"
	"github.com/you/accountsvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AccountSvc, cfg.ClientURL)
	polH := &handlers.PolicyHandlers{PolicySvc: c.PolicySvc}

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.PolicySvc)

	r := httpx.BuildRouter(authH, polH, jwtMW, casbinMW)

	if err := seedPolicies(c.PolicySvc); err != nil {
		return err
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role rules on an empty policy store.
func seedPolicies(policySvc domain.PolicyService) error {
	policies, err := policySvc.GetPolicies()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	defaults := [][3]string{
		{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
		{"role_user", "/auth/me", "GET"},
	}
	for _, p := range defaults {
		if err := policySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
			log.Printf("casbin: seeding policy %s %s %s failed: %v", p[0], p[1], p[2], err)
		}
	}
	log.Println("casbin: seeded default policies")
	return nil
}
