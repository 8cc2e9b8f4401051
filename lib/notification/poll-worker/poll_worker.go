package pollworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"

	authhandler "event-staffing-bff/lib/auth"
	"event-staffing-bff/lib/cache"
	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/lib/utils/helpers"
)

// Background refresh of the notification cache for recently seen
// sessions, so an open client sees approval prompts without waiting for
// its own next request to expire the cache.

func StartWorker(ctx context.Context, pollInterval, sessionWindow time.Duration) {
	i := &impl{
		pollInterval:  pollInterval,
		sessionWindow: sessionWindow,
	}
	go i.run(ctx)
}

type impl struct {
	pollInterval  time.Duration
	sessionWindow time.Duration
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("worker_name", "NotificationPollJob")
}

func (i impl) run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			i.getLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	logger := i.getLogger()
	for {
		select {
		case <-ctx.Done():
			logger.Info("job stopped")
			return
		case <-time.After(i.pollInterval):
			i.handle(ctx)
		}
	}
}

func (i impl) handle(ctx context.Context) {
	logger := i.getLogger()
	for _, active := range authhandler.Sessions.Active(i.sessionWindow) {
		if helpers.IsContextDone(ctx) {
			return
		}
		entry := logger.WithField("username", active.Session.Username)
		list, err := platformclient.Instance.Notifications(ctx, active.Token)
		if err != nil {
			// expired or revoked tokens drop out of the refresh loop, the
			// next authenticated request re-registers the session
			entry.WithError(err).Warn("failed to refresh notifications")
			authhandler.Sessions.Forget(active.Session.Username)
			continue
		}
		key := cache.NotificationsKey(active.Session.Username)
		if err = cache.Instance.Set(ctx, key, list, i.pollInterval); err != nil {
			entry.WithError(err).Warn("failed to store refreshed notifications")
		}
	}
}
