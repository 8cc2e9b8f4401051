package eventhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"event-staffing-bff/lib/cache"
	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/lib/utils/lock"
	"event-staffing-bff/models"
	eventapimodels "event-staffing-bff/models/api/event"
)

type Provider interface {
	MyEvents(ctx context.Context, session models.UserSession, token string) ([]eventapimodels.MyEvent, error)
	Create(ctx context.Context, session models.UserSession, token string, form eventapimodels.EventForm) (*eventapimodels.DetailedEvent, error)
	Update(ctx context.Context, session models.UserSession, token string, eventID int64, form eventapimodels.EventForm) error
	Delete(ctx context.Context, session models.UserSession, token string, eventID int64) error
	Get(ctx context.Context, session models.UserSession, token string, eventID int64, forceRefresh bool) (*eventapimodels.EventView, error)
	ChangeWorkerStatus(ctx context.Context, session models.UserSession, token, workerName string, req eventapimodels.AssignRequest) (*eventapimodels.StatusChangeConfirmation, *eventapimodels.EventView, error)
	RateWorker(ctx context.Context, session models.UserSession, token string, req eventapimodels.FeedbackRequest) (*eventapimodels.EventView, error)
}

var Instance Provider

// ErrChangeInFlight rejects a repeated status change for the same worker
// while the first one is still running.
var ErrChangeInFlight = errors.New("a status change for this worker is already in progress")

func NewHandler(eventsTTL time.Duration) {
	Instance = &impl{
		eventsTTL: eventsTTL,
	}
}

type impl struct {
	eventsTTL time.Duration
}

func (i impl) MyEvents(ctx context.Context, session models.UserSession, token string) ([]eventapimodels.MyEvent, error) {
	key := cache.MyEventsKey(session.Username)
	list := []eventapimodels.MyEvent{}
	found, err := cache.Instance.Get(ctx, key, &list)
	if err != nil {
		log.WithError(err).WithField("cache_key", key).Warn("events cache read failed")
	}
	if found {
		return list, nil
	}
	list, err = platformclient.Instance.MyEvents(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch events")
	}
	if err = cache.Instance.Set(ctx, key, list, i.eventsTTL); err != nil {
		log.WithError(err).WithField("cache_key", key).Warn("events cache write failed")
	}
	return list, nil
}

func (i impl) Create(ctx context.Context, session models.UserSession, token string, form eventapimodels.EventForm) (*eventapimodels.DetailedEvent, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	payload, err := form.ToPayload()
	if err != nil {
		return nil, err
	}
	created, err := platformclient.Instance.CreateEvent(ctx, token, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}
	i.invalidate(ctx, cache.MyEventsKey(session.Username), cache.FeedKey())
	return created, nil
}

func (i impl) Update(ctx context.Context, session models.UserSession, token string, eventID int64, form eventapimodels.EventForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	payload, err := form.ToPayload()
	if err != nil {
		return err
	}
	if err = platformclient.Instance.UpdateEvent(ctx, token, eventID, payload); err != nil {
		return errors.Wrap(err, "failed to update event")
	}
	i.invalidate(ctx, cache.MyEventsKey(session.Username), cache.FeedKey(), cache.EventKey(eventID))
	return nil
}

func (i impl) Delete(ctx context.Context, session models.UserSession, token string, eventID int64) error {
	if err := platformclient.Instance.DeleteEvent(ctx, token, eventID); err != nil {
		return errors.Wrap(err, "failed to delete event")
	}
	i.invalidate(ctx, cache.MyEventsKey(session.Username), cache.FeedKey(), cache.EventKey(eventID))
	return nil
}

func (i impl) Get(ctx context.Context, session models.UserSession, token string, eventID int64, forceRefresh bool) (*eventapimodels.EventView, error) {
	key := cache.EventKey(eventID)
	event := eventapimodels.DetailedEvent{}
	if !forceRefresh {
		found, err := cache.Instance.Get(ctx, key, &event)
		if err != nil {
			log.WithError(err).WithField("cache_key", key).Warn("event cache read failed")
		}
		if found {
			return buildEventView(event), nil
		}
	}
	fresh, err := platformclient.Instance.EventByID(ctx, token, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch event data")
	}
	if err = cache.Instance.Set(ctx, key, fresh, i.eventsTTL); err != nil {
		log.WithError(err).WithField("cache_key", key).Warn("event cache write failed")
	}
	return buildEventView(*fresh), nil
}

// ChangeWorkerStatus moves a pending or backup worker to the requested
// status. There is no optimistic update: the returned view is refetched
// from the platform after the mutation, while the confirmation echoes the
// caller-passed name and job title.
func (i impl) ChangeWorkerStatus(ctx context.Context, session models.UserSession, token, workerName string, req eventapimodels.AssignRequest) (*eventapimodels.StatusChangeConfirmation, *eventapimodels.EventView, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	// one submission per worker at a time, a repeat could double-count an
	// approval against the job capacity
	lockKey := fmt.Sprintf("assign:%v:%v", req.EventID, req.WorkerID)
	if !lock.TryAcquire(lockKey) {
		return nil, nil, ErrChangeInFlight
	}
	defer lock.Release(lockKey)

	logger := log.
		WithField("event_id", req.EventID).
		WithField("worker_id", req.WorkerID).
		WithField("new_status", string(req.Status))
	if err := platformclient.Instance.AssignWorker(ctx, token, req); err != nil {
		logger.WithError(err).Error("failed to change worker status")
		return nil, nil, errors.Wrap(err, "failed to change worker status")
	}
	i.invalidate(ctx, cache.EventKey(req.EventID), cache.MyEventsKey(session.Username))

	view, err := i.Get(ctx, session, token, req.EventID, true)
	if err != nil {
		logger.WithError(err).Error("failed to refresh event after status change")
		return nil, nil, err
	}
	confirmation := &eventapimodels.StatusChangeConfirmation{
		WorkerName: workerName,
		JobTitle:   req.JobTitle,
		Status:     req.Status,
		Message:    confirmationMessage(req.Status),
	}
	logger.Info("worker status changed")
	return confirmation, view, nil
}

func confirmationMessage(status models.WorkerStatus) string {
	if status == models.WorkerStatusBackup {
		return "Worker added to the backup list"
	}
	return "Worker approved for the event"
}

func (i impl) RateWorker(ctx context.Context, session models.UserSession, token string, req eventapimodels.FeedbackRequest) (*eventapimodels.EventView, error) {
	// rejected locally before any request leaves the process
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := platformclient.Instance.FeedbackWorker(ctx, token, req); err != nil {
		return nil, errors.Wrap(err, "failed to submit worker feedback")
	}
	i.invalidate(ctx, cache.EventKey(req.EventID))
	return i.Get(ctx, session, token, req.EventID, true)
}

func (i impl) invalidate(ctx context.Context, keys ...string) {
	if err := cache.Instance.Invalidate(ctx, keys...); err != nil {
		log.WithError(err).WithField("cache_keys", keys).Warn("cache invalidation failed")
	}
}
