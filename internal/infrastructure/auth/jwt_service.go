package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/farplay/blackjack/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the session token claims. Playground sessions carry the
// custody address established by frame verification so later actions skip the
// hub round-trip.
type Claims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// JWTService defines the interface for the session token service
type JWTService interface {
	GenerateToken(address string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	ExtractAddressFromToken(tokenString string) (string, error)
}

// jwtService handles JWT operations
type jwtService struct {
	config *config.JWTConfig
}

func NewJWTService(config *config.JWTConfig) JWTService {
	return &jwtService{config}
}

// GenerateToken creates a signed session token for a player address
func (j *jwtService) GenerateToken(address string) (string, error) {
	claims := &Claims{
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "blackjack-frames",
			Subject:   address,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.Secret))
}

// ValidateToken parses and validates a session token
func (j *jwtService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(j.config.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("could not parse claims")
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}

// ExtractAddressFromToken pulls the player address from a session token
func (j *jwtService) ExtractAddressFromToken(tokenStr string) (string, error) {
	claims, err := j.ValidateToken(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Address, nil
}
