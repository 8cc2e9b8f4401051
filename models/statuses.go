package models

import "github.com/pkg/errors"

type EventStatus string

const (
	EventStatusPlanned   EventStatus = "PLANNED"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

var eventStatusHumanName = map[EventStatus]string{
	EventStatusPlanned:   "Planned",
	EventStatusOngoing:   "Ongoing",
	EventStatusCompleted: "Completed",
	EventStatusCancelled: "Cancelled",
}

func (s EventStatus) ToHuman() string {
	if human, exist := eventStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type WorkerStatus string

const (
	WorkerStatusPending  WorkerStatus = "PENDING"
	WorkerStatusApproved WorkerStatus = "APPROVED"
	WorkerStatusBackup   WorkerStatus = "BACKUP"
	WorkerStatusRejected WorkerStatus = "REJECTED"
)

func (s WorkerStatus) Validate() error {
	switch s {
	case WorkerStatusPending, WorkerStatusApproved, WorkerStatusBackup, WorkerStatusRejected:
		return nil
	}
	return errors.Errorf("unknown worker status (%v)", string(s))
}

var workerStatusHumanName = map[WorkerStatus]string{
	WorkerStatusPending:  "Pending",
	WorkerStatusApproved: "Approved",
	WorkerStatusBackup:   "Backup",
	WorkerStatusRejected: "Rejected",
}

func (s WorkerStatus) ToHuman() string {
	if human, exist := workerStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
