package notificationhandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"event-staffing-bff/lib/cache"
	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/models"
	notificationapimodels "event-staffing-bff/models/api/notification"
)

type Provider interface {
	List(ctx context.Context, session models.UserSession, token string, forceRefresh bool) ([]notificationapimodels.Notification, error)
	MarkRead(ctx context.Context, session models.UserSession, token string, ids []int64) error
	MarkAllRead(ctx context.Context, session models.UserSession, token string) error
}

var Instance Provider

// NewHandler wires the notification cache with a TTL equal to the poll
// interval: a refocus within the window is served from cache instead of
// hitting the platform again.
func NewHandler(pollInterval time.Duration) {
	Instance = &impl{
		ttl: pollInterval,
	}
}

type impl struct {
	ttl time.Duration
}

func (i impl) List(ctx context.Context, session models.UserSession, token string, forceRefresh bool) ([]notificationapimodels.Notification, error) {
	key := cache.NotificationsKey(session.Username)
	list := []notificationapimodels.Notification{}
	if !forceRefresh {
		found, err := cache.Instance.Get(ctx, key, &list)
		if err != nil {
			log.WithError(err).Warn("notifications cache read failed")
		}
		if found {
			return list, nil
		}
	}
	list, err := platformclient.Instance.Notifications(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch notifications")
	}
	if err = cache.Instance.Set(ctx, key, list, i.ttl); err != nil {
		log.WithError(err).Warn("notifications cache write failed")
	}
	return list, nil
}

func UnreadCount(list []notificationapimodels.Notification) int {
	count := 0
	for _, n := range list {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (i impl) MarkRead(ctx context.Context, session models.UserSession, token string, ids []int64) error {
	if len(ids) == 0 {
		return errors.New("no notifications to mark as read")
	}
	if err := platformclient.Instance.MarkNotificationsRead(ctx, token, ids); err != nil {
		return errors.Wrap(err, "failed to mark notifications as read")
	}
	i.invalidate(ctx, session)
	return nil
}

// MarkAllRead marks every unread notification that is not waiting for an
// approval decision. The approval pipeline owns the rest.
func (i impl) MarkAllRead(ctx context.Context, session models.UserSession, token string) error {
	list, err := i.List(ctx, session, token, false)
	if err != nil {
		return err
	}
	ids := []int64{}
	for _, n := range list {
		if !n.IsRead && !n.RequiresApproval() {
			ids = append(ids, n.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if err := platformclient.Instance.MarkNotificationsRead(ctx, token, ids); err != nil {
		return errors.Wrap(err, "failed to mark notifications as read")
	}
	i.invalidate(ctx, session)
	return nil
}

func (i impl) invalidate(ctx context.Context, session models.UserSession) {
	key := cache.NotificationsKey(session.Username)
	if err := cache.Instance.Invalidate(ctx, key); err != nil {
		log.WithError(err).WithField("cache_key", key).Warn("cache invalidation failed")
	}
}
