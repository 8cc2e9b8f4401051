package feedhandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"event-staffing-bff/lib/cache"
	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/models"
	eventapimodels "event-staffing-bff/models/api/event"
)

func feedEvent(id int64, city string, titles ...string) eventapimodels.MyEvent {
	jobs := make([]eventapimodels.Job, 0, len(titles))
	for _, title := range titles {
		jobs = append(jobs, eventapimodels.Job{JobTitle: title, Openings: 2})
	}
	return eventapimodels.MyEvent{ID: id, City: city, Jobs: jobs}
}

func TestFilter(t *testing.T) {
	events := []eventapimodels.MyEvent{
		feedEvent(1, "NYC", "Waiter", "Cook"),
		feedEvent(2, "LA", "Waiter"),
		feedEvent(3, "NYC", "Security"),
	}

	t.Run(`empty selections leave the list untouched`, func(t *testing.T) {
		require.Equal(t, events, Filter(events, nil, nil))
	})

	t.Run(`city filter is an OR`, func(t *testing.T) {
		filtered := Filter(events, []string{"NYC"}, nil)
		require.Equal(t, 2, len(filtered))
		require.Equal(t, int64(1), filtered[0].ID)
		require.Equal(t, int64(3), filtered[1].ID)

		filtered = Filter(events, []string{"NYC", "LA"}, nil)
		require.Equal(t, 3, len(filtered))
	})

	t.Run(`job title matches any job of the event`, func(t *testing.T) {
		filtered := Filter(events, nil, []string{"Cook"})
		require.Equal(t, 1, len(filtered))
		require.Equal(t, int64(1), filtered[0].ID)
	})

	t.Run(`fields combine with an AND`, func(t *testing.T) {
		filtered := Filter(events, []string{"NYC"}, []string{"Waiter"})
		require.Equal(t, 1, len(filtered))
		require.Equal(t, int64(1), filtered[0].ID)

		filtered = Filter(events, []string{"LA"}, []string{"Security"})
		require.Equal(t, 0, len(filtered))
	})

	t.Run(`filtering is idempotent`, func(t *testing.T) {
		once := Filter(events, []string{"NYC"}, nil)
		twice := Filter(once, []string{"NYC"}, nil)
		require.Equal(t, once, twice)
	})
}

func TestAvailableJobs(t *testing.T) {
	t.Run(`full jobs are hidden`, func(t *testing.T) {
		event := eventapimodels.MyEvent{Jobs: []eventapimodels.Job{
			{JobTitle: "Waiter", Openings: 2},
			{JobTitle: "Cook", Openings: 0},
		}}
		available := AvailableJobs(event)
		require.Equal(t, 1, len(available))
		require.Equal(t, "Waiter", available[0].JobTitle)
	})
}

func setupFeedTest(t *testing.T, handler http.HandlerFunc) models.UserSession {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.Instance = cache.NewInstance(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	platformclient.NewProvider(srv.URL, 5*time.Second)
	NewHandler(time.Minute)
	return models.UserSession{UserID: 42, Username: "john", Role: models.UserRoleWorker}
}

func TestFeed(t *testing.T) {
	t.Run(`second read is served from the cache`, func(t *testing.T) {
		calls := 0
		session := setupFeedTest(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`[{"id":1,"city":"NYC","jobs":[{"job_title":"Waiter","openings":2}]}]`))
		})

		ctx := context.Background()
		first, err := Instance.Feed(ctx, session, "token", nil, nil)
		require.Nil(t, err)
		second, err := Instance.Feed(ctx, session, "token", nil, nil)
		require.Nil(t, err)
		require.Equal(t, first, second)
		require.Equal(t, 1, calls)
	})

	t.Run(`filters apply on the cached list`, func(t *testing.T) {
		session := setupFeedTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"city":"NYC","jobs":[]},{"id":2,"city":"LA","jobs":[]}]`))
		})

		filtered, err := Instance.Feed(context.Background(), session, "token", []string{"LA"}, nil)
		require.Nil(t, err)
		require.Equal(t, 1, len(filtered))
		require.Equal(t, int64(2), filtered[0].ID)
	})
}

func TestApply(t *testing.T) {
	t.Run(`apply hits the platform and drops the caches`, func(t *testing.T) {
		applied := false
		session := setupFeedTest(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/events/apply" {
				applied = true
			}
			w.Write([]byte("{}"))
		})

		ctx := context.Background()
		require.Nil(t, cache.Instance.Set(ctx, cache.FeedKey(), []eventapimodels.MyEvent{}, time.Minute))
		require.Nil(t, cache.Instance.Set(ctx, cache.MyEventsKey(session.Username), []eventapimodels.MyEvent{}, time.Minute))

		err := Instance.Apply(ctx, session, "token", eventapimodels.ApplyRequest{EventID: 1, JobTitle: "Waiter"})
		require.Nil(t, err)
		require.Equal(t, true, applied)

		out := []eventapimodels.MyEvent{}
		found, err := cache.Instance.Get(ctx, cache.FeedKey(), &out)
		require.Nil(t, err)
		require.Equal(t, false, found)
		found, err = cache.Instance.Get(ctx, cache.MyEventsKey(session.Username), &out)
		require.Nil(t, err)
		require.Equal(t, false, found)
	})

	t.Run(`invalid request never reaches the platform`, func(t *testing.T) {
		called := false
		session := setupFeedTest(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		err := Instance.Apply(context.Background(), session, "token", eventapimodels.ApplyRequest{EventID: 1})
		require.NotNil(t, err)
		require.Equal(t, false, called)
	})
}
