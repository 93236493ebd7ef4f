package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you/accountsvc/domain"
)

const resetTokenPurpose = "password_reset"

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
	resetTTL  time.Duration
	leeway    time.Duration
}

// NewJWTService creates a new JWT service. leeway is the tolerated clock
// skew when checking expiry; zero means none.
func NewJWTService(secretKey string, issuer string, accessTTL, resetTTL, leeway time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
		leeway:    leeway,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(account *domain.Account) (string, error) {
	now := time.Now()
	roles := make([]string, len(account.Roles))
	for i, r := range account.Roles {
		roles[i] = string(r)
	}

	claims := jwt.MapClaims{
		"user_id": account.ID,
		"name":    account.Name,
		"roles":   roles,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.accessTTL).Unix(),
		"jti":     j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	claims, err := j.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// A reset token must never pass as an access token.
	if _, ok := claims["purpose"]; ok {
		return nil, domain.ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	name, ok := claims["name"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	rawRoles, ok := claims["roles"].([]interface{})
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	roles := make([]domain.Role, 0, len(rawRoles))
	for _, r := range rawRoles {
		s, ok := r.(string)
		if !ok {
			return nil, domain.ErrTokenMalformed
		}
		roles = append(roles, domain.Role(s))
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:    userID,
		Name:      name,
		Roles:     roles,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

// GenerateResetToken implements domain.TokenService. The token carries the
// email it authorizes and is rejected by the access-token validator.
func (j *JWTServiceImpl) GenerateResetToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": resetTokenPurpose,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.resetTTL).Unix(),
		"jti":     j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateResetToken implements domain.TokenService and returns the email
// the token authorizes a password change for.
func (j *JWTServiceImpl) ValidateResetToken(tokenString string) (string, error) {
	claims, err := j.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	if purpose, ok := claims["purpose"].(string); !ok || purpose != resetTokenPurpose {
		return "", domain.ErrTokenInvalid
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", domain.ErrTokenMalformed
	}
	return email, nil
}

// parseToken verifies signature and expiry (with the configured leeway) and
// returns the raw claims
func (j *JWTServiceImpl) parseToken(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(j.leeway))
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}
