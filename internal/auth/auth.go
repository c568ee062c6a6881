// Package auth issues and validates the single-role admin JWT that
// guards the dictionary-management endpoints.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the only token shape this service issues: no user
// accounts, just an admin role and the standard registered claims.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service hashes the configured admin secret and issues/validates JWTs
// for it.
type Service struct {
	jwtSecret     []byte
	secretHash    string
	tokenDuration time.Duration
}

// New hashes adminSecret with bcrypt so it is never compared or stored
// in the clear, and prepares JWT issuance with jwtSecret.
func New(jwtSecret, adminSecret string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		jwtSecret:     []byte(jwtSecret),
		secretHash:    string(hash),
		tokenDuration: 24 * time.Hour,
	}, nil
}

// Login checks candidateSecret against the configured admin secret and
// issues a token on success.
func (s *Service) Login(candidateSecret string) (string, error) {
	if bcrypt.CompareHashAndPassword([]byte(s.secretHash), []byte(candidateSecret)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken()
}

func (s *Service) generateToken() (string, error) {
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "krossword",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
