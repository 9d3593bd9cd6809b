package jwtservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/api"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := New("test_secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "test_user"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestParseToken(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "test_user"}
	valid := New("test_secret", time.Minute)

	testCases := []struct {
		Desc  string
		Token func(t *testing.T) string
	}{
		{
			Desc: "garbage",
			Token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			Desc: "another secret",
			Token: func(t *testing.T) string {
				token, err := New("another_secret", time.Minute).GenerateToken(user)
				require.NoError(t, err)
				return token
			},
		},
		{
			Desc: "expired",
			Token: func(t *testing.T) string {
				old := New("test_secret", time.Minute)
				old.now = func() time.Time { return time.Now().Add(-time.Hour) }
				token, err := old.GenerateToken(user)
				require.NoError(t, err)
				return token
			},
		},
		{
			Desc: "unexpected signing method",
			Token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS512, &api.JWTClaims{UserID: user.ID.String()})
				signed, err := token.SignedString([]byte("test_secret"))
				require.NoError(t, err)
				return signed
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := valid.ParseToken(tc.Token(t))
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
