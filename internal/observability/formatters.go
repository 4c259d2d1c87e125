// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/outreach-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5

	dateLayout = "Jan 2, 2006"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDashboard outputs a human-readable summary of the materialized
// dashboard rows.
func (p *Printer) PrintDashboard(views []types.CompanyView) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Companies: %d\n", len(views)))
	sb.WriteString("\n")

	count := min(len(views), maxItemsToShow)
	for i := 0; i < count; i++ {
		view := views[i]
		sb.WriteString(fmt.Sprintf("• %s\n", view.Name))
		sb.WriteString(fmt.Sprintf("  Next due: %s (%s)\n",
			view.NextCommunicationDate.Format(dateLayout), view.Status))
		if last := view.LastCommunication(); last != nil {
			sb.WriteString(fmt.Sprintf("  Last: %s on %s\n", last.Type, last.Date.Format(dateLayout)))
		} else {
			sb.WriteString("  Last: no communications\n")
		}
	}
	if len(views) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(views)-maxItemsToShow))
	}

	p.printBox("DASHBOARD", strings.TrimRight(sb.String(), "\n"))
}

// PrintNotifications outputs a human-readable summary of both notification
// buckets.
func (p *Printer) PrintNotifications(buckets types.NotificationBuckets) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overdue: %d\n", len(buckets.Overdue)))
	count := min(len(buckets.Overdue), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := buckets.Overdue[i]
		sb.WriteString(fmt.Sprintf("  • %s — %d days overdue (due %s)\n",
			entry.CompanyName, entry.DaysPastDue, entry.DueDate))
	}
	if len(buckets.Overdue) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(buckets.Overdue)-maxItemsToShow))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Due today: %d\n", len(buckets.DueToday)))
	count = min(len(buckets.DueToday), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := buckets.DueToday[i]
		tag := "scheduled"
		if entry.IsLogged {
			tag = "logged"
		}
		sb.WriteString(fmt.Sprintf("  • %s — %s (%s)\n", entry.CompanyName, entry.CommunicationType, tag))
	}
	if len(buckets.DueToday) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(buckets.DueToday)-maxItemsToShow))
	}

	p.printBox("NOTIFICATIONS", strings.TrimRight(sb.String(), "\n"))
}

// PrintCalendar outputs a human-readable summary of the calendar projection.
func (p *Printer) PrintCalendar(events []types.CalendarEvent) {
	var sb strings.Builder

	past := 0
	upcoming := 0
	for _, event := range events {
		if event.IsPast {
			past++
		} else {
			upcoming++
		}
	}
	sb.WriteString(fmt.Sprintf("Events: %d (%d past, %d upcoming)\n", len(events), past, upcoming))
	sb.WriteString("\n")

	count := min(len(events), maxItemsToShow)
	for i := 0; i < count; i++ {
		event := events[i]
		marker := "upcoming"
		if event.IsPast {
			marker = "past"
		}
		sb.WriteString(fmt.Sprintf("• %s  %s — %s (%s)\n",
			event.Date.Format(dateLayout), event.CompanyName, event.Type, marker))
	}
	if len(events) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(events)-maxItemsToShow))
	}

	p.printBox("CALENDAR", strings.TrimRight(sb.String(), "\n"))
}
