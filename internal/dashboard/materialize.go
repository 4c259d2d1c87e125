// Package dashboard joins raw company records with computed scheduling
// fields. Materialize is the single place where companies become the view
// shape consumed by notification aggregation and calendar projection.
package dashboard

import (
	"fmt"
	"time"

	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/types"
)

// Materialize attaches NextCommunicationDate and Status to every company.
// It must run after every store mutation so downstream views are never stale.
// A company with an unset periodicity falls back to the default interval;
// an explicitly invalid one fails the whole materialization, since upstream
// validation should have rejected it.
func Materialize(companies []types.Company, today time.Time) ([]types.CompanyView, error) {
	views := make([]types.CompanyView, 0, len(companies))

	for _, company := range companies {
		periodicity := company.CommunicationPeriodicityDays
		if periodicity == 0 {
			periodicity = types.DefaultPeriodicityDays
		}

		nextDue, err := schedule.NextDueDate(company.Communications, periodicity, today)
		if err != nil {
			return nil, fmt.Errorf("materialize company %s: %w", company.ID, err)
		}

		views = append(views, types.CompanyView{
			Company:               company,
			NextCommunicationDate: nextDue,
			Status:                schedule.Classify(nextDue, today),
		})
	}

	return views, nil
}
