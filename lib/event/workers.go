package eventhandler

import (
	"sort"

	"event-staffing-bff/lib/utils/dateutils"
	"event-staffing-bff/models"
	eventapimodels "event-staffing-bff/models/api/event"
)

var workerStatusRank = map[models.WorkerStatus]int{
	models.WorkerStatusApproved: 0,
	models.WorkerStatusBackup:   1,
	models.WorkerStatusPending:  2,
	models.WorkerStatusRejected: 3,
}

// SortWorkers orders the table for the event page: approved first, then
// backup, then pending. Equal ranks keep their fetch order. The input is
// never mutated, the ordering is presentation-only and recomputed from the
// freshest fetch.
func SortWorkers(workers []eventapimodels.EventWorker) []eventapimodels.EventWorker {
	sorted := make([]eventapimodels.EventWorker, len(workers))
	copy(sorted, workers)
	sort.SliceStable(sorted, func(a, b int) bool {
		return workerStatusRank[sorted[a].Status] < workerStatusRank[sorted[b].Status]
	})
	return sorted
}

func CountWorkers(workers []eventapimodels.EventWorker) eventapimodels.WorkerCounts {
	counts := eventapimodels.WorkerCounts{}
	for _, worker := range workers {
		switch worker.Status {
		case models.WorkerStatusApproved:
			counts.Approved++
		case models.WorkerStatusBackup:
			counts.Backup++
		case models.WorkerStatusPending:
			counts.Pending++
		}
	}
	return counts
}

func BuildJobStats(event eventapimodels.DetailedEvent) eventapimodels.JobStats {
	stats := eventapimodels.JobStats{}
	for _, job := range event.Jobs {
		stats.TotalOpenings += job.Openings
		stats.TotalSlots += job.Slots
	}
	for _, worker := range event.Workers {
		if worker.Status == models.WorkerStatusApproved {
			stats.FilledPositions++
		}
	}
	stats.RemainingOpenings = stats.TotalOpenings - stats.FilledPositions
	if stats.RemainingOpenings < 0 {
		stats.RemainingOpenings = 0
	}
	return stats
}

// JobsWithCounts pairs every job with its per-status worker counts and the
// remaining openings. The capacity itself is not enforced here, that
// invariant belongs to the platform.
func JobsWithCounts(event eventapimodels.DetailedEvent) []eventapimodels.JobWithCounts {
	countsByTitle := map[string]eventapimodels.WorkerCounts{}
	for _, worker := range event.Workers {
		counts := countsByTitle[worker.JobTitle]
		switch worker.Status {
		case models.WorkerStatusApproved:
			counts.Approved++
		case models.WorkerStatusBackup:
			counts.Backup++
		case models.WorkerStatusPending:
			counts.Pending++
		}
		countsByTitle[worker.JobTitle] = counts
	}
	list := make([]eventapimodels.JobWithCounts, 0, len(event.Jobs))
	for _, job := range event.Jobs {
		counts := countsByTitle[job.JobTitle]
		remaining := job.Openings - counts.Approved
		if remaining < 0 {
			remaining = 0
		}
		list = append(list, eventapimodels.JobWithCounts{
			EventJob:          job,
			WorkerCounts:      counts,
			RemainingOpenings: remaining,
		})
	}
	return list
}

func isMultiDay(event eventapimodels.DetailedEvent) bool {
	start, err := dateutils.ParseDateTime(event.StartDatetime)
	if err != nil {
		return false
	}
	end, err := dateutils.ParseDateTime(event.EndDatetime)
	if err != nil {
		return false
	}
	return !dateutils.SameDay(start, end)
}

func buildEventView(event eventapimodels.DetailedEvent) *eventapimodels.EventView {
	return &eventapimodels.EventView{
		Event:          event,
		SortedWorkers:  SortWorkers(event.Workers),
		WorkerCounts:   CountWorkers(event.Workers),
		JobStats:       BuildJobStats(event),
		JobsWithCounts: JobsWithCounts(event),
		MultiDay:       isMultiDay(event),
	}
}
