package profilehandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/models"
)

func setupProfileTest(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	platformclient.NewProvider(srv.URL, 5*time.Second)
	NewHandler()
}

func TestGetProfile(t *testing.T) {
	worker := models.UserSession{UserID: 2, Username: "worker", Role: models.UserRoleWorker}
	recruiter := models.UserSession{UserID: 10, Username: "recruiter", Role: models.UserRoleRecruiter}

	t.Run(`worker loads their own profile`, func(t *testing.T) {
		setupProfileTest(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/users/profile/0", r.URL.Path)
			w.Write([]byte(`{"full_name":"John Doe","city":"NYC","rating":4.5}`))
		})

		profile, err := Instance.Get(context.Background(), worker, "token", 0)
		require.Nil(t, err)
		require.Equal(t, "John Doe", profile.FullName)
		require.Equal(t, "NYC", profile.City)
	})

	t.Run(`recruiter cannot request an own profile`, func(t *testing.T) {
		called := false
		setupProfileTest(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := Instance.Get(context.Background(), recruiter, "token", 0)
		require.NotNil(t, err)
		require.ErrorIs(t, err, platformclient.ErrForbidden)
		require.Contains(t, err.Error(), "only workers can view their own profile")
		require.Equal(t, false, called)
	})

	t.Run(`forbidden lookup keeps the sentinel and a role-specific message`, func(t *testing.T) {
		setupProfileTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := Instance.Get(context.Background(), worker, "token", 33)
		require.NotNil(t, err)
		require.ErrorIs(t, err, platformclient.ErrForbidden)
		require.Contains(t, err.Error(), "unauthorized access to this profile")
	})

	t.Run(`unknown user maps to the not-found sentinel`, func(t *testing.T) {
		setupProfileTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := Instance.Get(context.Background(), recruiter, "token", 99)
		require.NotNil(t, err)
		require.ErrorIs(t, err, platformclient.ErrNotFound)
		require.Contains(t, err.Error(), "user not found")
	})
}
