package calendarapimodels

import eventapimodels "event-staffing-bff/models/api/event"

// CellEvent is an event placed on the grid with its display colour.
type CellEvent struct {
	eventapimodels.MyEvent
	Color string `json:"color"`
}

type Cell struct {
	Date    string      `json:"date"` // DD/MM/YYYY
	Weekday string      `json:"weekday"`
	InMonth bool        `json:"in_month"`
	Today   bool        `json:"today"`
	Events  []CellEvent `json:"events"`
}

// MonthResponse is a fixed 6-week grid, always 42 cells.
type MonthResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Cells     []Cell `json:"cells"`
}
