// Package calendar flattens company histories and upcoming due dates into a
// single event list for calendar rendering.
package calendar

import (
	"fmt"
	"time"

	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/types"
)

const scheduledType = "Scheduled"

// Project emits one event per historical communication plus exactly one
// upcoming event per company at its next due date. The projection is flat
// and complete: consumers filter by calendar day themselves, and the whole
// list is rebuilt on every store change.
func Project(views []types.CompanyView) []types.CalendarEvent {
	events := []types.CalendarEvent{}

	for _, view := range views {
		for _, comm := range view.Communications {
			events = append(events, types.CalendarEvent{
				ID:          fmt.Sprintf("%s-%s", view.ID, comm.ID),
				CompanyID:   view.ID.String(),
				CompanyName: view.Name,
				Type:        comm.Type,
				Date:        schedule.Midnight(comm.Date),
				Notes:       comm.Notes,
				IsPast:      true,
			})
		}

		nextType := scheduledType
		if last := view.LastCommunication(); last != nil {
			nextType = last.Type
		}
		events = append(events, types.CalendarEvent{
			ID:          fmt.Sprintf("%s-next", view.ID),
			CompanyID:   view.ID.String(),
			CompanyName: view.Name,
			Type:        nextType,
			Date:        schedule.Midnight(view.NextCommunicationDate),
			Notes:       "Scheduled communication",
			IsPast:      false,
		})
	}

	return events
}

// OnDay filters events to those falling on the same calendar date as day.
// Convenience for grid consumers; Project itself never filters.
func OnDay(events []types.CalendarEvent, day time.Time) []types.CalendarEvent {
	matched := []types.CalendarEvent{}
	for _, event := range events {
		if schedule.SameDay(event.Date, day) {
			matched = append(matched, event)
		}
	}
	return matched
}
