package service

import (
	"fmt"
	"time"

	"vending-machine/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
// Tokens are bound to one machine through the machine_id claim.
type JWTTokenService struct {
	secret    []byte
	expiry    time.Duration
	issuer    string
	machineID string
}

// NewJWTTokenService creates a new JWT token service for machineID.
func NewJWTTokenService(secret string, expiry time.Duration, issuer, machineID string) *JWTTokenService {
	return &JWTTokenService{
		secret:    []byte(secret),
		expiry:    expiry,
		issuer:    issuer,
		machineID: machineID,
	}
}

// Generate creates a signed JWT for the given operator.
func (s *JWTTokenService) Generate(operator string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":        operator,
		"machine_id": s.machineID,
		"iat":        now.Unix(),
		"exp":        expiresAt.Unix(),
		"iss":        s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT token, returning the claims.
// Tokens issued for another machine are rejected.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	operator, ok := claims["sub"].(string)
	if !ok || operator == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	machineID, _ := claims["machine_id"].(string)
	if machineID != s.machineID {
		return nil, fmt.Errorf("token issued for machine %q", machineID)
	}

	return &ports.TokenClaims{
		Operator:  operator,
		MachineID: machineID,
	}, nil
}
