package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/fittrack/internal/api"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const defaultTokenTTL = time.Hour

type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates HS256 token service. Non-positive ttl falls back to one hour.
func New(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := s.now()
	claims := &api.JWTClaims{
		UserID:   user.ID.String(),
		Username: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and time claims. Every verification
// failure is reported as ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidToken, err.Error())
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
