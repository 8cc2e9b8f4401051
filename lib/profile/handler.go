package profilehandler

import (
	"context"

	"github.com/pkg/errors"

	platformclient "event-staffing-bff/lib/platform/client"
	"event-staffing-bff/models"
	profileapimodels "event-staffing-bff/models/api/profile"
)

type Provider interface {
	Get(ctx context.Context, session models.UserSession, token string, userID int64) (*profileapimodels.ProfileData, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{}
}

type impl struct{}

// Get fetches a user profile. userID 0 means the caller's own profile,
// which the platform serves for workers only.
func (i impl) Get(ctx context.Context, session models.UserSession, token string, userID int64) (*profileapimodels.ProfileData, error) {
	if userID == 0 && !session.Role.IsWorker() {
		return nil, errors.Wrap(platformclient.ErrForbidden, "only workers can view their own profile")
	}
	profile, err := platformclient.Instance.Profile(ctx, token, userID)
	if err != nil {
		if errors.Is(err, platformclient.ErrForbidden) {
			if userID == 0 {
				return nil, errors.Wrap(platformclient.ErrForbidden, "only workers can view their own profile")
			}
			return nil, errors.Wrap(platformclient.ErrForbidden, "unauthorized access to this profile")
		}
		if errors.Is(err, platformclient.ErrNotFound) {
			return nil, errors.Wrap(platformclient.ErrNotFound, "user not found")
		}
		return nil, errors.Wrap(err, "failed to fetch profile")
	}
	return profile, nil
}
