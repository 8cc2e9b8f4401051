package eventapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"event-staffing-bff/lib/utils/dateutils"
	"event-staffing-bff/models"
)

func validForm() EventForm {
	start := time.Now().AddDate(0, 1, 0)
	end := start.Add(6 * time.Hour)
	startDate, startTime := dateutils.SplitDateTime(start)
	endDate, endTime := dateutils.SplitDateTime(end)
	return EventForm{
		EventName:        "Food fair",
		EventDescription: "Annual street food fair",
		StartDate:        startDate,
		StartTime:        startTime,
		EndDate:          endDate,
		EndTime:          endTime,
		Location:         "NYC",
		Jobs:             map[string]int{"Waiter": 3, "Cook": 1},
	}
}

func TestEventFormValidate(t *testing.T) {
	t.Run(`valid form passes`, func(t *testing.T) {
		require.Nil(t, validForm().Validate())
	})

	t.Run(`short name, description or location`, func(t *testing.T) {
		form := validForm()
		form.EventName = "abc"
		require.NotNil(t, form.Validate())

		form = validForm()
		form.EventDescription = "too short"
		require.NotNil(t, form.Validate())

		form = validForm()
		form.Location = "NY"
		require.NotNil(t, form.Validate())
	})

	t.Run(`end must be after start`, func(t *testing.T) {
		form := validForm()
		form.EndDate = form.StartDate
		form.EndTime = form.StartTime
		require.NotNil(t, form.Validate())
	})

	t.Run(`start must be in the future`, func(t *testing.T) {
		form := validForm()
		past := time.Now().AddDate(0, 0, -1)
		form.StartDate, form.StartTime = dateutils.SplitDateTime(past)
		require.NotNil(t, form.Validate())
	})

	t.Run(`jobs need at least one opening`, func(t *testing.T) {
		form := validForm()
		form.Jobs = map[string]int{"Waiter": 0}
		require.NotNil(t, form.Validate())

		form.Jobs = map[string]int{"": 2}
		require.NotNil(t, form.Validate())
	})

	t.Run(`bad date or clock format`, func(t *testing.T) {
		form := validForm()
		form.StartTime = "25:00"
		require.NotNil(t, form.Validate())

		form = validForm()
		form.EndDate = "2026-12-31"
		require.NotNil(t, form.Validate())
	})
}

func TestEventFormPayloadRoundTrip(t *testing.T) {
	t.Run(`form to payload and back`, func(t *testing.T) {
		form := validForm()
		payload, err := form.ToPayload()
		require.Nil(t, err)
		require.Equal(t, form.EventName, payload.EventName)
		require.Equal(t, form.Jobs, payload.Jobs)

		back, err := FormFromPayload(payload)
		require.Nil(t, err)
		require.Equal(t, form, back)
	})

	t.Run(`payload carries RFC3339 datetimes`, func(t *testing.T) {
		payload, err := validForm().ToPayload()
		require.Nil(t, err)
		_, err = time.Parse(time.RFC3339, payload.StartDatetime)
		require.Nil(t, err)
		_, err = time.Parse(time.RFC3339, payload.EndDatetime)
		require.Nil(t, err)
	})
}

func TestAssignRequestValidate(t *testing.T) {
	t.Run(`only approved and backup transitions are allowed`, func(t *testing.T) {
		req := AssignRequest{EventID: 1, WorkerID: 2, JobTitle: "Waiter"}

		req.Status = models.WorkerStatusApproved
		require.Nil(t, req.Validate())

		req.Status = models.WorkerStatusBackup
		require.Nil(t, req.Validate())

		req.Status = models.WorkerStatusRejected
		require.NotNil(t, req.Validate())

		req.Status = models.WorkerStatusPending
		require.NotNil(t, req.Validate())
	})

	t.Run(`missing identifiers are rejected`, func(t *testing.T) {
		require.NotNil(t, AssignRequest{WorkerID: 2, JobTitle: "Waiter", Status: models.WorkerStatusApproved}.Validate())
		require.NotNil(t, AssignRequest{EventID: 1, JobTitle: "Waiter", Status: models.WorkerStatusApproved}.Validate())
		require.NotNil(t, AssignRequest{EventID: 1, WorkerID: 2, Status: models.WorkerStatusApproved}.Validate())
	})
}

func TestFeedbackRequestValidate(t *testing.T) {
	t.Run(`needs a rating or a review`, func(t *testing.T) {
		require.NotNil(t, FeedbackRequest{EventID: 1, WorkerID: 2}.Validate())
		require.NotNil(t, FeedbackRequest{EventID: 1, WorkerID: 2, Review: "   "}.Validate())

		rating := 4.0
		require.Nil(t, FeedbackRequest{EventID: 1, WorkerID: 2, Rating: &rating}.Validate())
		require.Nil(t, FeedbackRequest{EventID: 1, WorkerID: 2, Review: "great work"}.Validate())
	})

	t.Run(`rating range`, func(t *testing.T) {
		tooHigh := 5.5
		require.NotNil(t, FeedbackRequest{EventID: 1, WorkerID: 2, Rating: &tooHigh}.Validate())
		negative := -1.0
		require.NotNil(t, FeedbackRequest{EventID: 1, WorkerID: 2, Rating: &negative}.Validate())
	})
}
