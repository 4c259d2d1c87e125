// Package schedule computes next-due dates and due-status classification for
// company outreach. All comparisons are by calendar date: times are truncated
// to midnight so two events on the same day never differ by clock time.
package schedule

import (
	"time"

	"github.com/jonathan/outreach-tracker/internal/types"
)

// Midnight truncates t to the start of its calendar day, preserving location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextDueDate computes when the next communication with a company is due.
// With no history it is periodicityDays after today; otherwise it is
// periodicityDays after the most recently inserted communication.
// communications[0] is trusted to be the most recent by insertion, not by
// date value, so a backdated entry can move the due date backwards.
func NextDueDate(communications []types.Communication, periodicityDays int, today time.Time) (time.Time, error) {
	if periodicityDays < 1 {
		return time.Time{}, &ErrInvalidPeriodicity{Days: periodicityDays}
	}
	if len(communications) == 0 {
		return Midnight(today).AddDate(0, 0, periodicityDays), nil
	}
	return Midnight(communications[0].Date).AddDate(0, 0, periodicityDays), nil
}

// Classify assigns a due status to nextDue relative to today. Exactly one of
// the three statuses holds for any pair of dates.
func Classify(nextDue, today time.Time) types.Status {
	if SameDay(nextDue, today) {
		return types.StatusDueToday
	}
	if Midnight(nextDue).Before(Midnight(today)) {
		return types.StatusOverdue
	}
	return types.StatusNormal
}

// DaysPastDue returns how many whole calendar days nextDue lies before today.
// Zero when nextDue is today or in the future. Days are counted by calendar
// position, so the two times may carry different locations.
func DaysPastDue(nextDue, today time.Time) int {
	days := int(utcMidnight(today).Sub(utcMidnight(nextDue)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// utcMidnight re-anchors t's calendar date in UTC, where a day is always
// exactly 24 hours.
func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
