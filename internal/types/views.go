package types

import "time"

// Status classifies a company's next due date relative to today.
type Status string

const (
	// StatusOverdue means the next due date is strictly before today.
	StatusOverdue Status = "overdue"
	// StatusDueToday means the next due date falls on today's calendar date.
	StatusDueToday Status = "due_today"
	// StatusNormal means the next due date is in the future.
	StatusNormal Status = "normal"
)

// CompanyView is a company joined with its computed scheduling fields.
// It is ephemeral: recomputed wholesale from (communications, periodicity)
// on every store change and never persisted or patched in place.
type CompanyView struct {
	Company
	NextCommunicationDate time.Time `json:"next_communication_date"`
	Status                Status    `json:"status"`
	HighlightDisabled     bool      `json:"highlight_disabled,omitempty"`
}

// NotificationEntry is one row in the notification feed. Overdue entries
// carry the formatted last-communication fields and DaysPastDue; due-today
// entries carry the communication type, date, and notes. Date is a pointer
// so overdue entries, which have no single communication date, omit it from
// JSON instead of serializing the zero time.
type NotificationEntry struct {
	ID                string     `json:"id"`
	CompanyID         string     `json:"company_id"`
	CompanyName       string     `json:"company_name"`
	CommunicationType string     `json:"communication_type"`
	Date              *time.Time `json:"date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	IsLogged          bool       `json:"is_logged,omitempty"`
	IsScheduled       bool       `json:"is_scheduled,omitempty"`

	// Overdue-only fields.
	LastCommunication string `json:"last_communication,omitempty"`
	LastCommDate      string `json:"last_comm_date,omitempty"`
	DueDate           string `json:"due_date,omitempty"`
	DaysPastDue       int    `json:"days_past_due,omitempty"`
}

// NotificationBuckets holds the two notification feeds, regenerated wholesale
// on every recomputation.
type NotificationBuckets struct {
	Overdue  []NotificationEntry `json:"overdue"`
	DueToday []NotificationEntry `json:"today"`
}

// Count returns the total number of entries across both buckets.
func (b NotificationBuckets) Count() int {
	return len(b.Overdue) + len(b.DueToday)
}

// CalendarEvent is one dated entry on the calendar: either a historical
// communication (IsPast) or a company's single upcoming due date.
type CalendarEvent struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	IsPast      bool      `json:"is_past"`
}
