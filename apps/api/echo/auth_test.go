package echoapi

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/user"
)

func TestClaimsRoundTrip(t *testing.T) {
	conf := core.NewConfig()
	ConfigureAuth(conf)

	usr := user.User{ID: "usr-1", Name: "Jane Doe", Email: "jane@internhub.dev", IsAdmin: true}
	token, err := GenerateToken(GetUserClaims(usr))
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, new(Claims), func(tk *jwt.Token) (interface{}, error) {
		return appJWTConfig.SigningKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	assert.Equal(t, usr.ID, claims.Subject)
	assert.Equal(t, usr.Email, claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, conf.AppName, claims.Issuer)
	assert.Equal(t, claims.IssuedAt, claims.OrigIssuedAt)

	wantExp := time.Now().Add(conf.Server.JWTExpirationDelta).Unix()
	assert.InDelta(t, wantExp, claims.ExpiresAt, 5)
}

func TestClaimsRefreshKeepsOrigIssuedAt(t *testing.T) {
	conf := core.NewConfig()
	ConfigureAuth(conf)

	usr := user.User{ID: "usr-1", Email: "jane@internhub.dev"}
	oriat := time.Now().Add(-time.Hour).Unix()

	claims := GetUserClaims(usr, oriat)
	assert.Equal(t, oriat, claims.OrigIssuedAt)
	assert.Greater(t, claims.IssuedAt, oriat)
}
