package app

import (
	"gorm.io/gorm"

	"github.com/you/accountsvc/domain"
	"github.com/you/accountsvc/internal/cache"
	"github.com/you/accountsvc/internal/config"
	"github.com/you/accountsvc/internal/infrastructure/auth"
	"github.com/you/accountsvc/internal/infrastructure/database"
	"github.com/you/accountsvc/internal/infrastructure/notifications"
	"github.com/you/accountsvc/internal/infrastructure/repositories"
	"github.com/you/accountsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB     *gorm.DB
	Casbin *auth.CasbinService

	// Repositories and process-local state
	AccountRepo domain.AccountRepository
	OTPCache    domain.OTPCache

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AccountSvc      domain.AccountService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas
	return nil
}

func (c *Container) initServices() error {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)

	// The OTP cache is owned by this instance: state is lost on restart and
	// not shared between replicas.
	c.OTPCache = cache.New(cache.Options{
		MaxEntries: c.Config.OTPMaxEntries,
		MaxWeight:  c.Config.OTPMaxWeight,
		TTL:        c.Config.OTPTTL,
	})

	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.ResetTTL,
		c.Config.JWTLeeway,
	)

	notificationSvc, err := notifications.NewMailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)
	if err != nil {
		return err
	}
	c.NotificationSvc = notificationSvc

	c.AccountSvc = services.NewAccountService(
		c.AccountRepo,
		c.OTPCache,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotificationSvc,
		services.AccountServiceConfig{
			ServerAPIURL: c.Config.ServerAPIURL,
			AccessTTL:    c.Config.AccessTTL,
		},
	)

	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
