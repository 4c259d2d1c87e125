// Package notify partitions companies into overdue and due-today
// notification feeds. Aggregation is pure and total: it is re-run from
// scratch over the full company set on every store change, never patched
// incrementally.
package notify

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/types"
)

const (
	// scheduledType labels synthetic due-today entries that have no logged
	// communication behind them.
	scheduledType = "Scheduled"
	// noCommunications is the sentinel for companies with empty history.
	noCommunications = "No communications"

	dateLayout = "Jan 2, 2006"
)

// Aggregate scans every company view and builds both notification buckets.
// A company contributes one due-today entry per communication logged on
// today's date, plus at most one synthetic due-today entry when its next due
// date is today and nothing was logged today. Companies past their due date
// contribute exactly one overdue entry.
func Aggregate(views []types.CompanyView, today time.Time) types.NotificationBuckets {
	buckets := types.NotificationBuckets{
		Overdue:  []types.NotificationEntry{},
		DueToday: []types.NotificationEntry{},
	}
	today = schedule.Midnight(today)

	for _, view := range views {
		loggedToday := false
		for _, comm := range view.Communications {
			if !schedule.SameDay(comm.Date, today) {
				continue
			}
			loggedToday = true
			commDate := schedule.Midnight(comm.Date)
			buckets.DueToday = append(buckets.DueToday, types.NotificationEntry{
				ID:                fmt.Sprintf("%s-%s", view.ID, comm.ID),
				CompanyID:         view.ID.String(),
				CompanyName:       view.Name,
				CommunicationType: comm.Type,
				Date:              &commDate,
				Notes:             comm.Notes,
				IsLogged:          true,
			})
		}

		nextDue := schedule.Midnight(view.NextCommunicationDate)

		// A scheduled reminder is redundant once the company already has a
		// logged entry for today.
		if schedule.SameDay(nextDue, today) && !loggedToday {
			buckets.DueToday = append(buckets.DueToday, types.NotificationEntry{
				ID:                fmt.Sprintf("%s-next", view.ID),
				CompanyID:         view.ID.String(),
				CompanyName:       view.Name,
				CommunicationType: scheduledType,
				Date:              &nextDue,
				Notes:             "Communication due today",
				IsScheduled:       true,
			})
		}

		if days := schedule.DaysPastDue(nextDue, today); days > 0 {
			last := view.LastCommunication()
			entry := types.NotificationEntry{
				ID:                view.ID.String(),
				CompanyID:         view.ID.String(),
				CompanyName:       view.Name,
				CommunicationType: "None",
				LastCommunication: noCommunications,
				DueDate:           nextDue.Format(dateLayout),
				DaysPastDue:       days,
			}
			if last != nil {
				entry.CommunicationType = last.Type
				entry.LastCommunication = last.Date.Format(dateLayout)
				entry.LastCommDate = last.Date.Format(dateLayout)
			}
			buckets.Overdue = append(buckets.Overdue, entry)
		}
	}

	// Most overdue first; ties keep encounter order.
	sort.SliceStable(buckets.Overdue, func(i, j int) bool {
		return buckets.Overdue[i].DaysPastDue > buckets.Overdue[j].DaysPastDue
	})

	return buckets
}
