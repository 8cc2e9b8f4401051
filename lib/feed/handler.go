package feedhandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"event-staffing-bff/lib/cache"
	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/models"
	eventapimodels "event-staffing-bff/models/api/event"
)

type Provider interface {
	Feed(ctx context.Context, session models.UserSession, token string, cities, jobTitles []string) ([]eventapimodels.MyEvent, error)
	Apply(ctx context.Context, session models.UserSession, token string, req eventapimodels.ApplyRequest) error
}

var Instance Provider

func NewHandler(feedTTL time.Duration) {
	Instance = &impl{
		feedTTL: feedTTL,
	}
}

type impl struct {
	feedTTL time.Duration
}

func (i impl) Feed(ctx context.Context, session models.UserSession, token string, cities, jobTitles []string) ([]eventapimodels.MyEvent, error) {
	key := cache.FeedKey()
	list := []eventapimodels.MyEvent{}
	found, err := cache.Instance.Get(ctx, key, &list)
	if err != nil {
		log.WithError(err).Warn("feed cache read failed")
	}
	if !found {
		list, err = platformclient.Instance.EventsFeed(ctx, token)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch events feed")
		}
		if err = cache.Instance.Set(ctx, key, list, i.feedTTL); err != nil {
			log.WithError(err).Warn("feed cache write failed")
		}
	}
	return Filter(list, cities, jobTitles), nil
}

// Filter narrows the feed by selected cities and job titles. Within one
// field the selection is an OR, across fields an AND. Empty selections
// leave the list untouched and the input order is preserved.
func Filter(events []eventapimodels.MyEvent, cities, jobTitles []string) []eventapimodels.MyEvent {
	if len(cities) == 0 && len(jobTitles) == 0 {
		return events
	}
	citySet := toSet(cities)
	titleSet := toSet(jobTitles)
	filtered := make([]eventapimodels.MyEvent, 0, len(events))
	for _, event := range events {
		if len(citySet) > 0 && !citySet[event.City] {
			continue
		}
		if len(titleSet) > 0 && !hasAnyJobTitle(event, titleSet) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		if value != "" {
			set[value] = true
		}
	}
	return set
}

func hasAnyJobTitle(event eventapimodels.MyEvent, titles map[string]bool) bool {
	for _, job := range event.Jobs {
		if titles[job.JobTitle] {
			return true
		}
	}
	return false
}

// AvailableJobs keeps the jobs a worker can still apply to.
func AvailableJobs(event eventapimodels.MyEvent) []eventapimodels.Job {
	available := []eventapimodels.Job{}
	for _, job := range event.Jobs {
		if job.Openings > 0 {
			available = append(available, job)
		}
	}
	return available
}

func (i impl) Apply(ctx context.Context, session models.UserSession, token string, req eventapimodels.ApplyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := platformclient.Instance.ApplyForJob(ctx, token, req); err != nil {
		log.WithError(err).
			WithField("event_id", req.EventID).
			WithField("job_title", req.JobTitle).
			Error("failed to apply for job")
		return errors.Wrap(err, "failed to apply for job")
	}
	keys := []string{cache.MyEventsKey(session.Username), cache.FeedKey()}
	if err := cache.Instance.Invalidate(ctx, keys...); err != nil {
		log.WithError(err).WithField("cache_keys", keys).Warn("cache invalidation failed")
	}
	return nil
}
