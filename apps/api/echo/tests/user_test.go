package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/backend/tests"
)

func TestUserAPI(t *testing.T) {
	srv := setup(t)

	pwd := "V3ryS3cretW0rd!"
	amina := testutil.CreateUser(t, usrRepo, "Amina Manager", "amina@internhub.dev", pwd, true)
	frozen := testutil.CreateUser(t, usrRepo, "Frozen Account", "frozen@internhub.dev", pwd, false)

	tt := []httpTest{
		{
			name:     "Login:400 required fields",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{
				"email": "this field is required",
				"password": "this field is required"
			}`),
		},
		{
			name:     "Login:400 unknown email",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{"email": "nobody@internhub.dev", "password": "` + pwd + `"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "authentication failed"}`),
		},
		{
			name:     "Login:400 wrong password",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{"email": "amina@internhub.dev", "password": "nope"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "authentication failed"}`),
		},
		{
			name:     "Login:403 deactivated account",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{"email": "frozen@internhub.dev", "password": "` + pwd + `"}`),
			wantCode: http.StatusForbidden,
			wantData: []byte(`{"error": "account deactivated"}`),
		},
		{
			name:     "TokenRefresh:401",
			method:   http.MethodPost,
			path:     "/v1/users/token-refresh",
			wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, errMissingToken),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := newAuthRequest(tc.method, tc.path, tc.token, tc.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tc, rec)
		})
	}

	t.Run("Login", func(t *testing.T) {
		body := []byte(`{"email": "Amina@InternHub.dev", "password": "` + pwd + `"}`) // email match is case-insensitive
		req, rec := newAuthRequest(http.MethodPost, "/v1/users/login", "", body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		usr, err := usrRepo.GetUserByID(context.Background(), amina.ID)
		require.NoError(t, err)
		assert.False(t, usr.LastLogin.IsZero())

		// the token works against an authed endpoint
		req, rec = newAuthRequest(http.MethodPost, "/v1/users/token-refresh", resp.Token)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var refreshed struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refreshed))
		assert.NotEmpty(t, refreshed.Token)
	})

	t.Run("TokenRefresh:403 deactivated account", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", getToken(t, frozen))
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

		ok, err := jsonBytesEqual(t, rec.Body.Bytes(), []byte(`{"error": "account deactivated"}`))
		require.NoError(t, err)
		assert.True(t, ok, rec.Body.String())
	})
}
