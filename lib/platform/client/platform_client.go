package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	authapimodels "event-staffing-bff/models/api/auth"
	eventapimodels "event-staffing-bff/models/api/event"
	notificationapimodels "event-staffing-bff/models/api/notification"
	profileapimodels "event-staffing-bff/models/api/profile"
)

// Sentinel errors for the auth-relevant upstream statuses, callers branch
// on these to redirect or build a role-specific message.
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
)

type Provider interface {
	SignIn(ctx context.Context, req authapimodels.SignInRequest) (*authapimodels.JWTResponse, error)
	SignUp(ctx context.Context, req authapimodels.SignUpRequest) (*authapimodels.SignUpResponse, error)
	Profile(ctx context.Context, token string, userID int64) (*profileapimodels.ProfileData, error)

	CreateEvent(ctx context.Context, token string, payload eventapimodels.EventPayload) (*eventapimodels.DetailedEvent, error)
	UpdateEvent(ctx context.Context, token string, eventID int64, payload eventapimodels.EventPayload) error
	DeleteEvent(ctx context.Context, token string, eventID int64) error
	MyEvents(ctx context.Context, token string) ([]eventapimodels.MyEvent, error)
	EventsFeed(ctx context.Context, token string) ([]eventapimodels.MyEvent, error)
	EventByID(ctx context.Context, token string, eventID int64) (*eventapimodels.DetailedEvent, error)
	AssignWorker(ctx context.Context, token string, req eventapimodels.AssignRequest) error
	ApplyForJob(ctx context.Context, token string, req eventapimodels.ApplyRequest) error
	FeedbackWorker(ctx context.Context, token string, req eventapimodels.FeedbackRequest) error

	Notifications(ctx context.Context, token string) ([]notificationapimodels.Notification, error)
	MarkNotificationsRead(ctx context.Context, token string, ids []int64) error
	ApproveNotification(ctx context.Context, token string, notificationID int64, eventID *int64) error
	DenyNotification(ctx context.Context, token string, notificationID int64) error
}

var Instance Provider

type impl struct {
	host   string
	client *http.Client
}

func NewProvider(host string, timeout time.Duration) {
	Instance = &impl{
		host: host,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

const (
	signInPath        string = "/users/signin"
	signUpPath        string = "/users/signup"
	profilePath       string = "/users/profile/%v"
	createEventPath   string = "/events/create_event"
	eventPath         string = "/events/%v"
	myEventsPath      string = "/events/get_events"
	eventsFeedPath    string = "/events/feed"
	assignPath        string = "/events/assign"
	applyPath         string = "/events/apply"
	feedbackPath      string = "/events/feedback"
	notificationsPath string = "/notifications"
	markReadPath      string = "/notifications/mark_read"
	approvePath       string = "/notifications/%v/approve"
	denyPath          string = "/notifications/%v/deny"
)

func (i impl) SignIn(ctx context.Context, req authapimodels.SignInRequest) (*authapimodels.JWTResponse, error) {
	resp := authapimodels.JWTResponse{}
	err := i.postJSON(ctx, signInPath, req, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) SignUp(ctx context.Context, req authapimodels.SignUpRequest) (*authapimodels.SignUpResponse, error) {
	resp := authapimodels.SignUpResponse{}
	err := i.postJSON(ctx, signUpPath, req, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) Profile(ctx context.Context, token string, userID int64) (*profileapimodels.ProfileData, error) {
	uri := i.host + fmt.Sprintf(profilePath, userID)
	logger := log.WithField("external_request", uri)

	r, _ := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	r.Header.Add("Content-Type", "application/json")
	resp := profileapimodels.ProfileData{}
	err := i.sendRequest(logger, r, &resp, token)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) CreateEvent(ctx context.Context, token string, payload eventapimodels.EventPayload) (*eventapimodels.DetailedEvent, error) {
	resp := eventapimodels.DetailedEvent{}
	err := i.postJSON(ctx, createEventPath, payload, &resp, token)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) UpdateEvent(ctx context.Context, token string, eventID int64, payload eventapimodels.EventPayload) error {
	uri := i.host + fmt.Sprintf(eventPath, eventID)
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to serialize request")
	}
	logger := log.
		WithField("external_request", uri).
		WithField("request_body", string(body))

	r, _ := http.NewRequestWithContext(ctx, http.MethodPut, uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger, r, nil, token)
}

func (i impl) DeleteEvent(ctx context.Context, token string, eventID int64) error {
	uri := i.host + fmt.Sprintf(eventPath, eventID)
	logger := log.WithField("external_request", uri)

	r, _ := http.NewRequestWithContext(ctx, http.MethodDelete, uri, nil)
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger, r, nil, token)
}

func (i impl) MyEvents(ctx context.Context, token string) ([]eventapimodels.MyEvent, error) {
	list := []eventapimodels.MyEvent{}
	err := i.getJSON(ctx, myEventsPath, &list, token)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) EventsFeed(ctx context.Context, token string) ([]eventapimodels.MyEvent, error) {
	list := []eventapimodels.MyEvent{}
	err := i.getJSON(ctx, eventsFeedPath, &list, token)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) EventByID(ctx context.Context, token string, eventID int64) (*eventapimodels.DetailedEvent, error) {
	resp := eventapimodels.DetailedEvent{}
	err := i.getJSON(ctx, fmt.Sprintf(eventPath, eventID), &resp, token)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) AssignWorker(ctx context.Context, token string, req eventapimodels.AssignRequest) error {
	return i.postJSON(ctx, assignPath, req, nil, token)
}

func (i impl) ApplyForJob(ctx context.Context, token string, req eventapimodels.ApplyRequest) error {
	return i.postJSON(ctx, applyPath, req, nil, token)
}

func (i impl) FeedbackWorker(ctx context.Context, token string, req eventapimodels.FeedbackRequest) error {
	return i.postJSON(ctx, feedbackPath, req, nil, token)
}

func (i impl) Notifications(ctx context.Context, token string) ([]notificationapimodels.Notification, error) {
	list := []notificationapimodels.Notification{}
	err := i.getJSON(ctx, notificationsPath, &list, token)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkNotificationsRead(ctx context.Context, token string, ids []int64) error {
	req := notificationapimodels.MarkReadRequest{NotificationIDs: ids}
	return i.postJSON(ctx, markReadPath, req, nil, token)
}

func (i impl) ApproveNotification(ctx context.Context, token string, notificationID int64, eventID *int64) error {
	uri := i.host + fmt.Sprintf(approvePath, notificationID)
	req := notificationapimodels.ApproveRequest{EventID: eventID}
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed to serialize request")
	}
	logger := log.
		WithField("external_request", uri).
		WithField("notification_id", notificationID)

	r, _ := http.NewRequestWithContext(ctx, http.MethodPut, uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger, r, nil, token)
}

func (i impl) DenyNotification(ctx context.Context, token string, notificationID int64) error {
	uri := i.host + fmt.Sprintf(denyPath, notificationID)
	logger := log.
		WithField("external_request", uri).
		WithField("notification_id", notificationID)

	r, _ := http.NewRequestWithContext(ctx, http.MethodPut, uri, bytes.NewBuffer([]byte("{}")))
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger, r, nil, token)
}

func (i impl) getJSON(ctx context.Context, path string, out interface{}, token string) error {
	uri := i.host + path
	logger := log.WithField("external_request", uri)

	r, _ := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger, r, out, token)
}

func (i impl) postJSON(ctx context.Context, path string, in, out interface{}, token string) error {
	uri := i.host + path
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to serialize request")
	}
	logger := log.
		WithField("external_request", uri).
		WithField("request_body", string(body))

	r, _ := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger, r, out, token)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// sendRequest attaches the access token cookie, executes the request and
// normalizes every non-2xx status into a single error the workflow layer
// can show as-is.
func (i impl) sendRequest(logger *log.Entry, r *http.Request, out interface{}, token string) error {
	if token != "" {
		r.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("platform request failed")
		return errors.Wrap(err, "platform request failed")
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		logger.WithError(err).Error("failed to read platform response")
		return errors.Wrap(err, "failed to read platform response")
	}
	logger = logger.WithField("response_status", response.StatusCode)

	switch {
	case response.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case response.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case response.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case response.StatusCode < 200 || response.StatusCode > 299:
		logger.WithField("response_body", string(body)).Error("platform returned an error")
		eBody := errorBody{}
		if uErr := json.Unmarshal(body, &eBody); uErr == nil {
			if eBody.Error != "" {
				return errors.New(eBody.Error)
			}
			if eBody.Message != "" {
				return errors.New(eBody.Message)
			}
		}
		return errors.Errorf("platform returned status %v", response.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(body, out); err != nil {
		logger.WithError(err).WithField("response_body", string(body)).Error("failed to decode platform response")
		return errors.Wrap(err, "failed to decode platform response")
	}
	return nil
}
