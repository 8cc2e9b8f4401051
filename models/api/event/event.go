package eventapimodels

import (
	"time"

	"github.com/pkg/errors"

	"event-staffing-bff/lib/utils/dateutils"
	"event-staffing-bff/models"
)

// Job is one opening line inside an event card.
type Job struct {
	ID       int64  `json:"id,omitempty"`
	JobTitle string `json:"job_title"`
	Openings int    `json:"openings"` // requested capacity
	Slots    int    `json:"slots"`    // filled count
}

// MyEvent is the list/feed projection of an event with split date and
// clock fields as the platform serves them.
type MyEvent struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	City         string               `json:"city"`
	StartDate    string               `json:"start_date"` // DD/MM/YYYY
	StartTime    string               `json:"start_time"` // HH:mm
	EndDate      string               `json:"end_date"`
	EndTime      string               `json:"end_time"`
	Status       models.EventStatus   `json:"status,omitempty"`
	WorkerStatus *models.WorkerStatus `json:"worker_status,omitempty"` // only for worker views
	Jobs         []Job                `json:"jobs"`
}

// EventForm is what the SPA submits for create/edit.
type EventForm struct {
	EventName        string         `json:"event_name"`
	EventDescription string         `json:"event_description"`
	StartDate        string         `json:"start_date"`
	StartTime        string         `json:"start_time"`
	EndDate          string         `json:"end_date"`
	EndTime          string         `json:"end_time"`
	Location         string         `json:"location"`
	Jobs             map[string]int `json:"jobs,omitempty"`
}

func (f EventForm) Validate() error {
	if len(f.EventName) < 4 {
		return errors.New("event name must be at least 4 characters")
	}
	if len(f.EventDescription) < 10 {
		return errors.New("event description must be at least 10 characters")
	}
	if len(f.Location) < 3 {
		return errors.New("must enter a city")
	}
	start, err := dateutils.CombineDateClock(f.StartDate, f.StartTime)
	if err != nil {
		return errors.New("start must use DD/MM/YYYY date and HH:mm time")
	}
	end, err := dateutils.CombineDateClock(f.EndDate, f.EndTime)
	if err != nil {
		return errors.New("end must use DD/MM/YYYY date and HH:mm time")
	}
	if !end.After(start) {
		return errors.New("end date and time must be after start date and time")
	}
	if !start.After(time.Now()) {
		return errors.New("start date and time must be in the future")
	}
	for title, openings := range f.Jobs {
		if title == "" {
			return errors.New("job title must not be empty")
		}
		if openings < 1 {
			return errors.New("number of openings must be at least 1")
		}
	}
	return nil
}

// ToPayload converts the validated form into the API payload the platform expects.
func (f EventForm) ToPayload() (EventPayload, error) {
	start, err := dateutils.CombineDateClock(f.StartDate, f.StartTime)
	if err != nil {
		return EventPayload{}, err
	}
	end, err := dateutils.CombineDateClock(f.EndDate, f.EndTime)
	if err != nil {
		return EventPayload{}, err
	}
	return EventPayload{
		EventName:        f.EventName,
		EventDescription: f.EventDescription,
		StartDatetime:    dateutils.FormatDateTime(start),
		EndDatetime:      dateutils.FormatDateTime(end),
		Location:         f.Location,
		Jobs:             f.Jobs,
	}, nil
}

// EventPayload is the wire shape for event create/edit.
type EventPayload struct {
	EventName        string         `json:"event_name"`
	EventDescription string         `json:"event_description"`
	StartDatetime    string         `json:"start_datetime"` // RFC3339
	EndDatetime      string         `json:"end_datetime"`
	Location         string         `json:"location"`
	Jobs             map[string]int `json:"jobs,omitempty"`
}

// FormFromPayload is the inverse conversion, used when pre-filling the edit form.
func FormFromPayload(p EventPayload) (EventForm, error) {
	start, err := dateutils.ParseDateTime(p.StartDatetime)
	if err != nil {
		return EventForm{}, err
	}
	end, err := dateutils.ParseDateTime(p.EndDatetime)
	if err != nil {
		return EventForm{}, err
	}
	startDate, startTime := dateutils.SplitDateTime(start)
	endDate, endTime := dateutils.SplitDateTime(end)
	return EventForm{
		EventName:        p.EventName,
		EventDescription: p.EventDescription,
		StartDate:        startDate,
		StartTime:        startTime,
		EndDate:          endDate,
		EndTime:          endTime,
		Location:         p.Location,
		Jobs:             p.Jobs,
	}, nil
}

// EventWorker is one assignment row on the event page.
type EventWorker struct {
	WorkerID int64               `json:"worker_id"`
	Name     string              `json:"name"`
	JobTitle string              `json:"job_title"`
	Status   models.WorkerStatus `json:"status"`
	Rating   *float64            `json:"rating,omitempty"`
	Phone    string              `json:"phone"`
	City     string              `json:"city,omitempty"`
	Age      int                 `json:"age,omitempty"`
}

type EventJob struct {
	JobTitle string `json:"job_title"`
	Openings int    `json:"openings"`
	Slots    int    `json:"slots"`
}

// DetailedEvent is the single-event view including workers and jobs.
type DetailedEvent struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	City          string             `json:"city"`
	Address       string             `json:"address"`
	StartDatetime string             `json:"start_datetime"`
	EndDatetime   string             `json:"end_datetime"`
	Status        models.EventStatus `json:"status"`
	Workers       []EventWorker      `json:"workers"`
	Jobs          []EventJob         `json:"jobs"`
}
