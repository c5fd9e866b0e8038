package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/backend/core/feedback"
	"github.com/internhub/backend/tests"
)

func TestFeedbackAPI(t *testing.T) {
	srv := setup(t)

	now := time.Now().UTC()
	mira := testutil.CreateUser(t, usrRepo, "Mira Manager", "mira@internhub.dev", "S3cretW0rd!", true)
	noah := testutil.CreateUser(t, usrRepo, "Noah Manager", "noah@internhub.dev", "S3cretW0rd!", true)
	miraToken := getToken(t, mira)
	noahToken := getToken(t, noah)

	fb1 := testutil.CreateFeedback(t, fbRepo, mira.ID, "Amal", "Strong first sprint", feedback.VisibilityManagerIntern, now.Add(-time.Hour))
	fb2 := testutil.CreateFeedback(t, fbRepo, mira.ID, "Ben", "Needs closer review", feedback.VisibilityManagerOnly, now)
	fb3 := testutil.CreateFeedback(t, fbRepo, noah.ID, "Carla", "Great demo", feedback.VisibilityManagerIntern, now)

	missingID := "9f7de0ad-0000-0000-0000-5c26c16b95e1"

	tt := []httpTest{
		{
			name:     "GetAll:401",
			method:   http.MethodGet,
			path:     "/v1/feedbacks",
			wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, errMissingToken),
		},
		{
			name:     "GetAll:only caller's records, creation order",
			method:   http.MethodGet,
			path:     "/v1/feedbacks",
			token:    miraToken,
			wantCode: http.StatusOK,
			wantData: marshallList(t, fb1, fb2),
		},
		{
			name:     "GetAll:other owner",
			method:   http.MethodGet,
			path:     "/v1/feedbacks",
			token:    noahToken,
			wantCode: http.StatusOK,
			wantData: marshallList(t, fb3),
		},
		{
			name:     "Create:400 required fields",
			method:   http.MethodPost,
			path:     "/v1/feedbacks",
			body:     []byte(`{"comments": "no title, no intern"}`),
			token:    miraToken,
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{
				"assigned_intern": "this field is required",
				"title": "this field is required"
			}`),
		},
		{
			name:     "Create:400 bad visibility",
			method:   http.MethodPost,
			path:     "/v1/feedbacks",
			body:     []byte(`{"assigned_intern": "Amal", "title": "T", "visibility": "everyone"}`),
			token:    miraToken,
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"visibility": "invalid value"}`),
		},
		{
			name:     "Update:404",
			method:   http.MethodPut,
			path:     "/v1/feedbacks/" + missingID,
			body:     []byte(`{"title": "whatever"}`),
			token:    miraToken,
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "feedback not found"}`),
		},
		{
			name:     "Update:403 not owner",
			method:   http.MethodPut,
			path:     "/v1/feedbacks/" + fb1.ID,
			body:     []byte(`{"title": "hijack"}`),
			token:    noahToken,
			wantCode: http.StatusForbidden,
			wantData: marshallObj(t, errForbidden),
		},
		{
			name:     "Delete:404",
			method:   http.MethodDelete,
			path:     "/v1/feedbacks/" + missingID,
			token:    miraToken,
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "feedback not found"}`),
		},
		{
			name:     "Delete:403 not owner",
			method:   http.MethodDelete,
			path:     "/v1/feedbacks/" + fb3.ID,
			token:    miraToken,
			wantCode: http.StatusForbidden,
			wantData: marshallObj(t, errForbidden),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := newAuthRequest(tc.method, tc.path, tc.token, tc.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tc, rec)
		})
	}

	t.Run("Create:defaults", func(t *testing.T) {
		body := []byte(`{"assigned_intern": "Amal", "title": "Kickoff notes", "linked_assignments": []}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/feedbacks", miraToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var fb feedback.Feedback
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
		assert.NotEmpty(t, fb.ID)
		assert.Equal(t, mira.ID, fb.UserID) // owner comes from the token, never the payload
		assert.Equal(t, feedback.VisibilityManagerIntern, fb.Visibility)
		assert.WithinDuration(t, time.Now().UTC(), fb.SubmittedAt, time.Minute)
	})

	t.Run("Create:caller-supplied submitted_at", func(t *testing.T) {
		body := []byte(`{
			"assigned_intern": "Ben",
			"title": "Retro notes",
			"visibility": "manager_only",
			"linked_assignments": ["` + missingID + `"],
			"submitted_at": "2026-02-14T09:30:00Z"
		}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/feedbacks", miraToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var fb feedback.Feedback
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
		assert.Equal(t, feedback.VisibilityManagerOnly, fb.Visibility)
		assert.Equal(t, []string{missingID}, fb.LinkedAssignments) // dangling ids are stored as-is
		assert.Equal(t, time.Date(2026, time.February, 14, 9, 30, 0, 0, time.UTC), fb.SubmittedAt)
	})

	t.Run("Update:present empty values replace", func(t *testing.T) {
		body := []byte(`{"comments": "", "linked_assignments": [], "visibility": "manager_only"}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/feedbacks/"+fb1.ID, miraToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var fb feedback.Feedback
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
		assert.Empty(t, fb.Comments)
		assert.Empty(t, fb.LinkedAssignments)
		assert.Equal(t, feedback.VisibilityManagerOnly, fb.Visibility)
		assert.Equal(t, fb1.Title, fb.Title) // absent keys are untouched
		assert.Equal(t, fb1.SubmittedAt.Unix(), fb.SubmittedAt.Unix())
	})

	t.Run("Update:intern may be reassigned", func(t *testing.T) {
		body := []byte(`{"assigned_intern": "Dana", "title": "Strong first sprint (rev)"}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/feedbacks/"+fb1.ID, miraToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var fb feedback.Feedback
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
		assert.Equal(t, "Dana", fb.AssignedIntern)
		assert.Equal(t, "Strong first sprint (rev)", fb.Title)
	})

	t.Run("Delete then 404 on repeat", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/feedbacks/"+fb2.ID, miraToken)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		ok, err := jsonBytesEqual(t, rec.Body.Bytes(), []byte(`{"message": "Feedback deleted successfully"}`))
		require.NoError(t, err)
		assert.True(t, ok, rec.Body.String())

		req, rec = newAuthRequest(http.MethodDelete, "/v1/feedbacks/"+fb2.ID, miraToken)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})
}
