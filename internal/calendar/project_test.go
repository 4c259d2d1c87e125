package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/outreach-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProject_EmptyViews(t *testing.T) {
	assert.Empty(t, Project(nil))
}

func TestProject_CompanyWithoutHistory(t *testing.T) {
	v := types.CompanyView{
		Company:               types.Company{ID: uuid.New(), Name: "Acme"},
		NextCommunicationDate: date(2025, time.March, 24),
	}

	events := Project([]types.CompanyView{v})

	require.Len(t, events, 1)
	assert.False(t, events[0].IsPast)
	assert.Equal(t, "Scheduled", events[0].Type)
	assert.Equal(t, "Scheduled communication", events[0].Notes)
	assert.Equal(t, date(2025, time.March, 24), events[0].Date)
	assert.Equal(t, fmt.Sprintf("%s-next", v.ID), events[0].ID)
}

func TestProject_HistoryPlusUpcoming(t *testing.T) {
	companyID := uuid.New()
	v := types.CompanyView{
		Company: types.Company{
			ID:   companyID,
			Name: "Acme",
			Communications: []types.Communication{
				{ID: uuid.New(), Type: "Email", Date: date(2025, time.March, 1), Notes: "intro"},
				{ID: uuid.New(), Type: "Phone Call", Date: date(2025, time.February, 10)},
			},
		},
		NextCommunicationDate: date(2025, time.March, 15),
	}

	events := Project([]types.CompanyView{v})

	require.Len(t, events, 3)

	past := 0
	var upcoming *types.CalendarEvent
	for i := range events {
		if events[i].IsPast {
			past++
		} else {
			upcoming = &events[i]
		}
	}
	assert.Equal(t, 2, past)
	require.NotNil(t, upcoming)

	// Upcoming event copies the most recent communication's type.
	assert.Equal(t, "Email", upcoming.Type)
	assert.Equal(t, date(2025, time.March, 15), upcoming.Date)
}

func TestProject_ExactlyOneUpcomingPerCompany(t *testing.T) {
	views := []types.CompanyView{
		{Company: types.Company{ID: uuid.New(), Name: "A"}, NextCommunicationDate: date(2025, time.April, 1)},
		{Company: types.Company{ID: uuid.New(), Name: "B"}, NextCommunicationDate: date(2025, time.April, 2)},
		{Company: types.Company{ID: uuid.New(), Name: "C"}, NextCommunicationDate: date(2025, time.April, 3)},
	}

	events := Project(views)

	upcoming := 0
	for _, event := range events {
		if !event.IsPast {
			upcoming++
		}
	}
	assert.Equal(t, 3, upcoming)
}

func TestOnDay(t *testing.T) {
	v := types.CompanyView{
		Company: types.Company{
			ID:   uuid.New(),
			Name: "Acme",
			Communications: []types.Communication{
				{ID: uuid.New(), Type: "Email", Date: date(2025, time.March, 1)},
				{ID: uuid.New(), Type: "Phone Call", Date: date(2025, time.March, 5)},
			},
		},
		NextCommunicationDate: date(2025, time.March, 15),
	}
	events := Project([]types.CompanyView{v})

	assert.Len(t, OnDay(events, date(2025, time.March, 1)), 1)
	assert.Len(t, OnDay(events, date(2025, time.March, 15)), 1)
	assert.Empty(t, OnDay(events, date(2025, time.March, 2)))
}
