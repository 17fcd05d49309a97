package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	Iservices "voice-notes/internal/domain/interfaces/services"
	"voice-notes/internal/infra/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, profileEmailPath, r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetProfileEmail(t *testing.T) {
	srv := newProfileServer(t, http.StatusOK, `"someone@example.com"`)
	pp := NewProfileProvider(logger.Discard(), srv.Client())

	email, err := pp.GetProfileEmail(context.Background(), srv.URL+"/", "token-123")
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", email)
}

func TestGetProfileEmailAccessDenied(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{"forbidden", http.StatusForbidden, `{"code":"ACCESS_DENIED","message":"Access denied with reason: FORBIDDEN"}`},
		{"unauthorized", http.StatusUnauthorized, ``},
		{"code only", http.StatusBadRequest, `{"code":"ACCESS_DENIED"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := newProfileServer(t, tc.status, tc.body)
			pp := NewProfileProvider(logger.Discard(), srv.Client())

			_, err := pp.GetProfileEmail(context.Background(), srv.URL, "token-123")
			assert.True(t, errors.Is(err, Iservices.ErrAccessDenied), "got %v", err)
		})
	}
}

func TestGetProfileEmailOtherFailure(t *testing.T) {
	srv := newProfileServer(t, http.StatusInternalServerError, `{"code":"INTERNAL_ERROR"}`)
	pp := NewProfileProvider(logger.Discard(), srv.Client())

	_, err := pp.GetProfileEmail(context.Background(), srv.URL, "token-123")
	require.Error(t, err)
	assert.False(t, errors.Is(err, Iservices.ErrAccessDenied))
}

func TestGetProfileEmailWithoutEndpoint(t *testing.T) {
	pp := NewProfileProvider(logger.Discard(), http.DefaultClient)

	_, err := pp.GetProfileEmail(context.Background(), "", "token-123")
	require.Error(t, err)
	assert.False(t, errors.Is(err, Iservices.ErrAccessDenied))
}
