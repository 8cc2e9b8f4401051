package approvalhandler

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	notificationhandler "event-staffing-bff/lib/notification"
	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/models"
	notificationapimodels "event-staffing-bff/models/api/notification"
)

// Per-user prompt queue for notifications that require an approval
// decision. The queue is a two-state machine: idle, or showing exactly one
// notification. Additional unapproved notifications are deferred, never
// stacked, and the next one is selected only from a fresh fetch.

type Provider interface {
	Next(ctx context.Context, session models.UserSession, token string) (*notificationapimodels.ApprovalPrompt, error)
	Resolve(ctx context.Context, session models.UserSession, token string, notificationID int64, decision notificationapimodels.Decision) (*notificationapimodels.ResolveResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		showing: map[string]*notificationapimodels.Notification{},
	}
}

type impl struct {
	mu      sync.Mutex
	showing map[string]*notificationapimodels.Notification
}

// Next returns the currently open prompt, or scans a refreshed list for
// the first notification still waiting for a decision. Workers are exempt
// from the approval workflow entirely.
func (i *impl) Next(ctx context.Context, session models.UserSession, token string) (*notificationapimodels.ApprovalPrompt, error) {
	if session.Role.IsWorker() {
		return &notificationapimodels.ApprovalPrompt{Open: false}, nil
	}
	i.mu.Lock()
	if current := i.showing[session.Username]; current != nil {
		prompt := &notificationapimodels.ApprovalPrompt{Open: true, Notification: current}
		i.mu.Unlock()
		return prompt, nil
	}
	i.mu.Unlock()

	list, err := notificationhandler.Instance.List(ctx, session, token, false)
	if err != nil {
		return nil, err
	}
	candidate := firstUnapproved(list)
	if candidate == nil {
		return &notificationapimodels.ApprovalPrompt{Open: false}, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	// a concurrent request may have opened a prompt while the list was
	// being fetched, that one wins
	if current := i.showing[session.Username]; current != nil {
		return &notificationapimodels.ApprovalPrompt{Open: true, Notification: current}, nil
	}
	i.showing[session.Username] = candidate
	return &notificationapimodels.ApprovalPrompt{Open: true, Notification: candidate}, nil
}

// Resolve applies the decision for the currently shown notification. For
// approve and deny the upstream call is awaited, then the list is
// refetched (also awaited) before the next unapproved notification is
// selected, so the requeue never acts on stale data. Dismiss is local
// only: the flag stays unchanged upstream and the same notification
// reappears on the next refresh.
func (i *impl) Resolve(ctx context.Context, session models.UserSession, token string, notificationID int64, decision notificationapimodels.Decision) (*notificationapimodels.ResolveResult, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}
	i.mu.Lock()
	current := i.showing[session.Username]
	if current == nil || current.ID != notificationID {
		i.mu.Unlock()
		return nil, errors.New("no approval prompt is open for this notification")
	}
	i.mu.Unlock()

	logger := log.
		WithField("notification_id", notificationID).
		WithField("decision", string(decision))

	if decision == notificationapimodels.DecisionDismiss {
		i.close(session)
		return &notificationapimodels.ResolveResult{}, nil
	}

	var err error
	var message string
	switch decision {
	case notificationapimodels.DecisionApprove:
		err = platformclient.Instance.ApproveNotification(ctx, token, notificationID, current.EventID)
		message = "Request approved"
	case notificationapimodels.DecisionDeny:
		err = platformclient.Instance.DenyNotification(ctx, token, notificationID)
		message = "Request denied"
	}
	if err != nil {
		// the prompt stays open, the user retriggers the decision
		logger.WithError(err).Error("failed to resolve notification")
		return nil, errors.Wrap(err, "failed to resolve notification")
	}
	i.close(session)

	list, err := notificationhandler.Instance.List(ctx, session, token, true)
	if err != nil {
		logger.WithError(err).Warn("failed to refresh notifications after decision")
		return &notificationapimodels.ResolveResult{Message: message}, nil
	}
	next := firstUnapproved(list)
	if next != nil {
		i.mu.Lock()
		if i.showing[session.Username] == nil {
			i.showing[session.Username] = next
		} else {
			next = i.showing[session.Username]
		}
		i.mu.Unlock()
	}
	return &notificationapimodels.ResolveResult{Message: message, Next: next}, nil
}

func (i *impl) close(session models.UserSession) {
	i.mu.Lock()
	delete(i.showing, session.Username)
	i.mu.Unlock()
}

// firstUnapproved picks the first notification flagged for approval in
// list order. Read state does not matter here.
func firstUnapproved(list []notificationapimodels.Notification) *notificationapimodels.Notification {
	for idx := range list {
		if list[idx].RequiresApproval() {
			n := list[idx]
			return &n
		}
	}
	return nil
}
