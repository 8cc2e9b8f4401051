package eventapimodels

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"event-staffing-bff/models"
)

// AssignRequest transitions one worker assignment on an event.
type AssignRequest struct {
	EventID  int64               `json:"event_id"`
	WorkerID int64               `json:"worker_id"`
	JobTitle string              `json:"job_title"`
	Status   models.WorkerStatus `json:"status"`
}

func (r AssignRequest) Validate() error {
	if r.EventID == 0 {
		return errors.New("event id is required")
	}
	if r.WorkerID == 0 {
		return errors.New("worker id is required")
	}
	if r.JobTitle == "" {
		return errors.New("job title is required")
	}
	// recruiters move workers to approved or backup only, other transitions
	// belong to the platform
	if r.Status != models.WorkerStatusApproved && r.Status != models.WorkerStatusBackup {
		return errors.Errorf("unsupported status transition (%v)", string(r.Status))
	}
	return nil
}

type ApplyRequest struct {
	EventID  int64  `json:"event_id"`
	JobTitle string `json:"job_title"`
}

func (r ApplyRequest) Validate() error {
	if r.EventID == 0 {
		return errors.New("event id is required")
	}
	if r.JobTitle == "" {
		return errors.New("job title is required")
	}
	return nil
}

// FeedbackRequest rates a worker after an event. At least one of rating
// and review must be present, otherwise no request is sent at all.
type FeedbackRequest struct {
	EventID  int64    `json:"event_id"`
	WorkerID int64    `json:"worker_id"`
	Rating   *float64 `json:"rating,omitempty"`
	Review   string   `json:"review,omitempty"`
}

func (r FeedbackRequest) Validate() error {
	if r.EventID == 0 {
		return errors.New("event id is required")
	}
	if r.WorkerID == 0 {
		return errors.New("worker id is required")
	}
	hasRating := r.Rating != nil && !math.IsNaN(*r.Rating)
	hasReview := strings.TrimSpace(r.Review) != ""
	if !hasRating && !hasReview {
		return errors.New("provide a rating or a review")
	}
	if hasRating && (*r.Rating < 0 || *r.Rating > 5) {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

// StatusChangeConfirmation echoes the caller-passed worker identity so the
// confirmation modal never depends on the refetched payload.
type StatusChangeConfirmation struct {
	WorkerName string              `json:"worker_name"`
	JobTitle   string              `json:"job_title"`
	Status     models.WorkerStatus `json:"status"`
	Message    string              `json:"message"`
}

// ChangeStatusRequest carries the assignment transition plus the worker
// name echoed back in the confirmation.
type ChangeStatusRequest struct {
	AssignRequest
	WorkerName string `json:"worker_name"`
}

type WorkerCounts struct {
	Approved int `json:"approved"`
	Backup   int `json:"backup"`
	Pending  int `json:"pending"`
}

type JobStats struct {
	TotalOpenings     int `json:"total_openings"`
	TotalSlots        int `json:"total_slots"`
	RemainingOpenings int `json:"remaining_openings"`
	FilledPositions   int `json:"filled_positions"`
}

// JobWithCounts is an event job enriched with per-title worker counts.
type JobWithCounts struct {
	EventJob
	WorkerCounts      WorkerCounts `json:"worker_counts"`
	RemainingOpenings int          `json:"remaining_openings"`
}

// EventView is the event page payload: the freshest detailed event plus
// everything derived from it.
type EventView struct {
	Event          DetailedEvent   `json:"event"`
	SortedWorkers  []EventWorker   `json:"sorted_workers"`
	WorkerCounts   WorkerCounts    `json:"worker_counts"`
	JobStats       JobStats        `json:"job_stats"`
	JobsWithCounts []JobWithCounts `json:"jobs_with_counts"`
	MultiDay       bool            `json:"multi_day"`
}
