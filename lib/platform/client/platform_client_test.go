package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	eventapimodels "event-staffing-bff/models/api/event"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	NewProvider(srv.URL, 5*time.Second)
	return Instance
}

func TestSendRequest(t *testing.T) {
	t.Run(`access token travels as a cookie`, func(t *testing.T) {
		var gotToken string
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("access_token"); err == nil {
				gotToken = c.Value
			}
			w.Write([]byte("[]"))
		})
		_, err := p.MyEvents(context.Background(), "token-123")
		require.Nil(t, err)
		require.Equal(t, "token-123", gotToken)
	})

	t.Run(`401 maps to ErrUnauthorized`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := p.MyEvents(context.Background(), "expired")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run(`403 maps to ErrForbidden`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		err := p.DeleteEvent(context.Background(), "worker-token", 7)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run(`404 maps to ErrNotFound`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := p.EventByID(context.Background(), "token", 999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run(`upstream error body surfaces as the error text`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"job title is already taken"}`))
		})
		err := p.ApplyForJob(context.Background(), "token", eventapimodels.ApplyRequest{EventID: 1, JobTitle: "Waiter"})
		require.NotNil(t, err)
		require.Equal(t, "job title is already taken", err.Error())
	})

	t.Run(`message field is the fallback`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"already applied"}`))
		})
		err := p.ApplyForJob(context.Background(), "token", eventapimodels.ApplyRequest{EventID: 1, JobTitle: "Waiter"})
		require.NotNil(t, err)
		require.Equal(t, "already applied", err.Error())
	})

	t.Run(`unreadable error body falls back to the status`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		})
		err := p.DeleteEvent(context.Background(), "token", 7)
		require.NotNil(t, err)
		require.Equal(t, "platform returned status 500", err.Error())
	})

	t.Run(`feed decodes the platform payload`, func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, eventsFeedPath, r.URL.Path)
			w.Write([]byte(`[{"id":5,"name":"Food fair","city":"NYC","start_date":"10/09/2026","start_time":"12:00","jobs":[{"job_title":"Waiter","openings":3,"slots":1}]}]`))
		})
		list, err := p.EventsFeed(context.Background(), "token")
		require.Nil(t, err)
		require.Equal(t, 1, len(list))
		require.Equal(t, int64(5), list[0].ID)
		require.Equal(t, "NYC", list[0].City)
		require.Equal(t, 1, len(list[0].Jobs))
		require.Equal(t, 3, list[0].Jobs[0].Openings)
	})
}
