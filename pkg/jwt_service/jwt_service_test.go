package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/lectio/internal/api"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	jwtservice "github.com/limbo/lectio/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret")
	uid := uuid.New()
	token, err := s.GenerateToken(uid)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uid.String(), claims.UserID)
}

func TestParseForeignToken(t *testing.T) {
	token, err := jwtservice.New("other").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = jwtservice.New("secret").ParseToken(token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)

	_, err = jwtservice.New("secret").ParseToken("not.a.token")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
}

func TestParseTokenRequiresExpiry(t *testing.T) {
	claims := &api.JWTClaims{UserID: uuid.NewString()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwtservice.New("secret").ParseToken(token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	claims := &api.JWTClaims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwtservice.New("secret").ParseToken(token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
}
