package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMaterialize_Empty(t *testing.T) {
	views, err := Materialize(nil, date(2025, time.March, 10))
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestMaterialize_AttachesDueDateAndStatus(t *testing.T) {
	today := date(2025, time.March, 10)
	companies := []types.Company{
		{
			ID:                           uuid.New(),
			Name:                         "Recent",
			CommunicationPeriodicityDays: 14,
			Communications: []types.Communication{
				{ID: uuid.New(), Type: "Email", Date: today.AddDate(0, 0, -10)},
			},
		},
		{
			ID:                           uuid.New(),
			Name:                         "Stale",
			CommunicationPeriodicityDays: 14,
			Communications: []types.Communication{
				{ID: uuid.New(), Type: "Email", Date: today.AddDate(0, 0, -20)},
			},
		},
	}

	views, err := Materialize(companies, today)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, today.AddDate(0, 0, 4), views[0].NextCommunicationDate)
	assert.Equal(t, types.StatusNormal, views[0].Status)

	assert.Equal(t, today.AddDate(0, 0, -6), views[1].NextCommunicationDate)
	assert.Equal(t, types.StatusOverdue, views[1].Status)
}

func TestMaterialize_DefaultPeriodicityForNewCompany(t *testing.T) {
	today := date(2025, time.March, 10)
	companies := []types.Company{{ID: uuid.New(), Name: "Fresh"}}

	views, err := Materialize(companies, today)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, today.AddDate(0, 0, types.DefaultPeriodicityDays), views[0].NextCommunicationDate)
	assert.Equal(t, types.StatusNormal, views[0].Status)
}

func TestMaterialize_InvalidPeriodicityFails(t *testing.T) {
	companies := []types.Company{
		{ID: uuid.New(), Name: "Broken", CommunicationPeriodicityDays: -1},
	}

	_, err := Materialize(companies, date(2025, time.March, 10))
	require.Error(t, err)

	var perr *schedule.ErrInvalidPeriodicity
	assert.ErrorAs(t, err, &perr)
}

func TestMaterialize_ViewMatchesEngineOutput(t *testing.T) {
	today := date(2025, time.March, 10)
	company := types.Company{
		ID:                           uuid.New(),
		Name:                         "Acme",
		CommunicationPeriodicityDays: 7,
		Communications: []types.Communication{
			{ID: uuid.New(), Type: "Email", Date: date(2025, time.March, 8)},
			{ID: uuid.New(), Type: "Phone Call", Date: date(2025, time.March, 9)},
		},
	}

	views, err := Materialize([]types.Company{company}, today)
	require.NoError(t, err)

	expected, err := schedule.NextDueDate(company.Communications, 7, today)
	require.NoError(t, err)
	assert.Equal(t, expected, views[0].NextCommunicationDate)
}
