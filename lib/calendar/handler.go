package calendarhandler

import (
	"context"
	"time"

	eventhandler "event-staffing-bff/lib/event"
	"event-staffing-bff/lib/utils/dateutils"
	"event-staffing-bff/models"
	calendarapimodels "event-staffing-bff/models/api/calendar"
	eventapimodels "event-staffing-bff/models/api/event"
)

type Provider interface {
	Month(ctx context.Context, session models.UserSession, token string, year int, month time.Month) (*calendarapimodels.MonthResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{}
}

type impl struct{}

func (i impl) Month(ctx context.Context, session models.UserSession, token string, year int, month time.Month) (*calendarapimodels.MonthResponse, error) {
	events, err := eventhandler.Instance.MyEvents(ctx, session, token)
	if err != nil {
		return nil, err
	}
	reference := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	cells := BuildMonthGrid(reference, time.Now(), events, session.Role)
	return &calendarapimodels.MonthResponse{
		Year:      year,
		Month:     int(month),
		MonthName: month.String(),
		Cells:     cells,
	}, nil
}

const gridCells = 42 // always a full 6-week grid

// BuildMonthGrid projects the event list onto the month grid. The grid
// starts on the Sunday on or before the 1st and always spans 42 cells.
// An event lands in the cell matching its start date exactly, time of day
// ignored; events with unparseable start dates are left off the grid.
func BuildMonthGrid(reference, today time.Time, events []eventapimodels.MyEvent, role models.UserRole) []calendarapimodels.Cell {
	firstOfMonth := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.Local)
	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	type placed struct {
		event eventapimodels.MyEvent
		day   time.Time
	}
	parsed := make([]placed, 0, len(events))
	for _, event := range events {
		day, err := dateutils.ParseDate(event.StartDate)
		if err != nil {
			continue
		}
		parsed = append(parsed, placed{event: event, day: day})
	}

	cells := make([]calendarapimodels.Cell, 0, gridCells)
	for offset := 0; offset < gridCells; offset++ {
		day := start.AddDate(0, 0, offset)
		cellEvents := []calendarapimodels.CellEvent{}
		for _, p := range parsed {
			if dateutils.SameDay(p.day, day) {
				cellEvents = append(cellEvents, calendarapimodels.CellEvent{
					MyEvent: p.event,
					Color:   EventColor(p.event, role),
				})
			}
		}
		cells = append(cells, calendarapimodels.Cell{
			Date:    dateutils.FormatDate(day),
			Weekday: day.Weekday().String(),
			InMonth: day.Month() == reference.Month(),
			Today:   dateutils.SameDay(day, today),
			Events:  cellEvents,
		})
	}
	return cells
}

var (
	workerStatusColors = map[models.WorkerStatus]string{
		models.WorkerStatusPending:  "#ed6c02", // warning
		models.WorkerStatusApproved: "#2e7d32", // success
		models.WorkerStatusRejected: "#d32f2f", // error
	}
	eventColorPalette = []string{
		"#1565c0",
		"#7b1fa2",
		"#3f51b5", // indigo
		"#9c27b0", // purple
		"#00796b", // teal
		"#e65100", // orange
		"#1976d2", // blue
	}
)

// EventColor picks a display colour: a worker sees their own assignment
// status, everyone else gets a colour derived from a character-code hash
// of the event name so the same event is always tinted the same way.
func EventColor(event eventapimodels.MyEvent, role models.UserRole) string {
	if role.IsWorker() && event.WorkerStatus != nil {
		if color, exist := workerStatusColors[*event.WorkerStatus]; exist {
			return color
		}
	}
	hash := 0
	for _, c := range event.Name {
		hash += int(c)
	}
	return eventColorPalette[hash%len(eventColorPalette)]
}
