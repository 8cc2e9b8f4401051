package notificationapimodels

import "github.com/pkg/errors"

// Notification mirrors the platform payload. IsApproved is a tristate:
// nil means no approval is required, false means an approval prompt is due.
type Notification struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
	EventID    *int64 `json:"event_id"`
	IsRead     bool   `json:"is_read"`
	IsApproved *bool  `json:"is_approved,omitempty"`
}

// RequiresApproval reports whether the notification must be shown in the
// approval prompt queue regardless of its read state.
func (n Notification) RequiresApproval() bool {
	return n.IsApproved != nil && !*n.IsApproved
}

type MarkReadRequest struct {
	NotificationIDs []int64 `json:"notification_ids"`
}

func (r MarkReadRequest) Validate() error {
	if len(r.NotificationIDs) == 0 {
		return errors.New("notification ids are required")
	}
	return nil
}

type ApproveRequest struct {
	EventID *int64 `json:"event_id"`
}

type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// ApprovalPrompt is the single open prompt for a user, if any.
type ApprovalPrompt struct {
	Open         bool          `json:"open"`
	Notification *Notification `json:"notification,omitempty"`
}

type ResolveResult struct {
	Message string        `json:"message,omitempty"`
	Next    *Notification `json:"next,omitempty"`
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
	DecisionDismiss Decision = "dismiss"
)

func (d Decision) Validate() error {
	switch d {
	case DecisionApprove, DecisionDeny, DecisionDismiss:
		return nil
	}
	return errors.Errorf("unknown decision (%v)", string(d))
}
