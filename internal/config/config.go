package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port         int    `yaml:"port"`
	GinMode      string `yaml:"gin_mode"`
	ServerAPIURL string `yaml:"server_api_url"`
	ClientURL    string `yaml:"client_url"`
	// BcryptCost tunes the password hashing work factor; zero selects the
	// library default.
	BcryptCost int `yaml:"bcrypt_cost"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
	ResetTTL  string `yaml:"reset_ttl"`
	Leeway    string `yaml:"leeway"`
}

type OTPConfig struct {
	TTL        string `yaml:"ttl"`
	MaxEntries int    `yaml:"max_entries"`
	MaxWeight  int    `yaml:"max_weight"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	ServerAPIURL    string
	ClientURL       string
	DSN             string
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	ResetTTL        time.Duration
	JWTLeeway       time.Duration
	OTPTTL          time.Duration
	OTPMaxEntries   int
	OTPMaxWeight    int
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	CasbinModelPath string
	BcryptCost      int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accessTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(configFile.JWT.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT reset TTL: %w", err)
	}

	leeway := time.Duration(0)
	if configFile.JWT.Leeway != "" {
		leeway, err = time.ParseDuration(configFile.JWT.Leeway)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT leeway: %w", err)
		}
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		ServerAPIURL:    env("SERVER_API_URL", configFile.App.ServerAPIURL),
		ClientURL:       env("CLIENT_URL", configFile.App.ClientURL),
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		AccessTTL:       accessTTL,
		ResetTTL:        resetTTL,
		JWTLeeway:       leeway,
		OTPTTL:          otpTTL,
		OTPMaxEntries:   configFile.OTP.MaxEntries,
		OTPMaxWeight:    configFile.OTP.MaxWeight,
		SMTPHost:        env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:        configFile.SMTP.Port,
		SMTPUsername:    env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:    env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:        env("SMTP_FROM", configFile.SMTP.From),
		CasbinModelPath: configFile.Casbin.ModelPath,
		BcryptCost:      configFile.App.BcryptCost,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
