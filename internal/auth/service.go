package auth

import (
	"fmt"
	"time"

	apperrors "strategic-planning-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "strategic-planning-backend"

// DefaultTokenTTL is the lifetime of tokens issued by planctl
const DefaultTokenTTL = 12 * time.Hour

// TokenService issues and validates the bearer tokens accepted by the admin API
type TokenService struct {
	secret []byte
}

// StaffClaims represents JWT token claims
type StaffClaims struct {
	Username string `json:"username" example:"admin"`
	Staff    bool   `json:"staff" example:"true"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool         `json:"valid" example:"true"`
	Claims *StaffClaims `json:"claims"`
}

// NewTokenService creates a new token service signing with the given secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// GenerateJWT creates a signed token for the user
func (s *TokenService) GenerateJWT(username string, staff bool, ttl time.Duration) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := time.Now()
	claims := &StaffClaims{
		Username: username,
		Staff:    staff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*StaffClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
