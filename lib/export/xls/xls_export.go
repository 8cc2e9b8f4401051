package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	eventapimodels "event-staffing-bff/models/api/event"
)

type Provider interface {
	ExportEventRoster(view eventapimodels.EventView) (*bytes.Buffer, error)
}

var Instance Provider

type impl struct{}

func NewHandler() {
	Instance = &impl{}
}

var rosterHeaders = []string{
	"Name",
	"Job title",
	"Status",
	"Rating",
	"Phone",
	"City",
	"Age",
}

// ExportEventRoster renders the worker roster of a single event as an
// xlsx workbook. Workers keep their status order (approved first).
func (e *impl) ExportEventRoster(view eventapimodels.EventView) (*bytes.Buffer, error) {
	logger := logrus.WithField("event_id", view.Event.ID)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("unable to close export file")
		}
	}()

	sheet := f.GetSheetName(0)

	row, err := writeHeader(f, sheet, 0, rosterHeaders)
	if err != nil {
		return nil, fmt.Errorf("unable to write roster header: %w", err)
	}

	firstDataRow := row + 1
	for _, worker := range view.SortedWorkers {
		row++
		col := 1

		// Name
		if err = writeColumn(f, sheet, col, row, worker.Name); err != nil {
			return nil, err
		}
		col++

		// Job title
		if err = writeColumn(f, sheet, col, row, worker.JobTitle); err != nil {
			return nil, err
		}
		col++

		// Status
		if err = writeColumn(f, sheet, col, row, worker.Status.ToHuman()); err != nil {
			return nil, err
		}
		col++

		// Rating
		rating := ""
		if worker.Rating != nil {
			rating = fmt.Sprintf("%.1f", *worker.Rating)
		}
		if err = writeColumn(f, sheet, col, row, rating); err != nil {
			return nil, err
		}
		col++

		// Phone
		if err = writeColumn(f, sheet, col, row, worker.Phone); err != nil {
			return nil, err
		}
		col++

		// City
		if err = writeColumn(f, sheet, col, row, worker.City); err != nil {
			return nil, err
		}
		col++

		// Age
		age := ""
		if worker.Age > 0 {
			age = fmt.Sprintf("%d", worker.Age)
		}
		if err = writeColumn(f, sheet, col, row, age); err != nil {
			return nil, err
		}
	}

	if row >= firstDataRow {
		if err = applyDataCellStyle(f, sheet, 1, firstDataRow, len(rosterHeaders), row); err != nil {
			return nil, fmt.Errorf("unable to style roster rows: %w", err)
		}
	}

	sheetName := view.Event.Name
	if sheetName == "" {
		sheetName = "Roster"
	}
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		logger.WithError(err).Warn("unable to rename roster sheet")
	}

	return f.WriteToBuffer()
}
