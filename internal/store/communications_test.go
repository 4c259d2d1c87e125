package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/outreach-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCommunication_PrependsAndRecomputes(t *testing.T) {
	s := newTestStore(t)
	company, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	updated, err := s.LogCommunication(company.ID, types.LogCommunicationRequest{
		Type:  "Email",
		Date:  "2025-03-08",
		Notes: "intro call follow-up",
	})
	require.NoError(t, err)

	require.Len(t, updated.Communications, 1)
	assert.Equal(t, "Email", updated.Communications[0].Type)
	assert.NotEqual(t, uuid.Nil, updated.Communications[0].ID)

	views := s.Dashboard()
	require.Len(t, views, 1)
	assert.Equal(t, time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC), views[0].NextCommunicationDate)
	assert.Equal(t, types.StatusNormal, views[0].Status)

	// One past event plus the upcoming one.
	events := s.CalendarEvents()
	require.Len(t, events, 2)
}

func TestLogCommunication_UnknownCompany(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LogCommunication(uuid.New(), types.LogCommunicationRequest{
		Type: "Email",
		Date: "2025-03-08",
	})

	var unknown *ErrUnknownCompany
	require.ErrorAs(t, err, &unknown)
}

func TestLogCommunication_MalformedDate(t *testing.T) {
	s := newTestStore(t)
	company, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	_, err = s.LogCommunication(company.ID, types.LogCommunicationRequest{
		Type: "Email",
		Date: "03/08/2025",
	})

	var malformed *ErrMalformedDate
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "03/08/2025", malformed.Value)

	got, err := s.GetCompany(company.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Communications, "rejected entry must not be written")
}

func TestLogCommunication_InsertionOrderBeatsDateOrder(t *testing.T) {
	s := newTestStore(t)
	company, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	_, err = s.LogCommunication(company.ID, types.LogCommunicationRequest{Type: "Email", Date: "2025-03-08"})
	require.NoError(t, err)

	// Backdated entry still becomes Communications[0] and the due date
	// regresses with it.
	updated, err := s.LogCommunication(company.ID, types.LogCommunicationRequest{Type: "Phone Call", Date: "2025-02-01"})
	require.NoError(t, err)

	require.Len(t, updated.Communications, 2)
	assert.Equal(t, "Phone Call", updated.Communications[0].Type)

	views := s.Dashboard()
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), views[0].NextCommunicationDate)
	assert.Equal(t, types.StatusOverdue, views[0].Status)
}

func TestLogCommunication_TodayAndYesterday(t *testing.T) {
	s := newTestStore(t)
	company, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	_, err = s.LogCommunication(company.ID, types.LogCommunicationRequest{Type: "Email", Date: "2025-03-09"})
	require.NoError(t, err)
	updated, err := s.LogCommunication(company.ID, types.LogCommunicationRequest{Type: "LinkedIn Post", Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), updated.Communications[0].Date)

	views := s.Dashboard()
	assert.Equal(t, time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC), views[0].NextCommunicationDate)
	assert.Equal(t, types.StatusNormal, views[0].Status)

	// The same-day entry shows up in the due-today feed as logged.
	buckets := s.Notifications()
	require.Len(t, buckets.DueToday, 1)
	assert.True(t, buckets.DueToday[0].IsLogged)
	assert.Equal(t, "LinkedIn Post", buckets.DueToday[0].CommunicationType)
}

func TestLogCommunicationBatch_DistinctIDsOneRecompute(t *testing.T) {
	s := newTestStore(t)
	a, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)
	b, err := s.AddCompany(companyRequest("Globex"))
	require.NoError(t, err)

	updated, err := s.LogCommunicationBatch([]uuid.UUID{a.ID, b.ID}, types.LogCommunicationRequest{
		Type: "Email",
		Date: "2025-03-10",
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	// Same payload, distinct communication IDs.
	assert.NotEqual(t, updated[0].Communications[0].ID, updated[1].Communications[0].ID)
	assert.Equal(t, updated[0].Communications[0].Type, updated[1].Communications[0].Type)

	buckets := s.Notifications()
	assert.Len(t, buckets.DueToday, 2)
}

func TestLogCommunicationBatch_UnknownCompanyFailsWholeBatch(t *testing.T) {
	s := newTestStore(t)
	a, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	_, err = s.LogCommunicationBatch([]uuid.UUID{a.ID, uuid.New()}, types.LogCommunicationRequest{
		Type: "Email",
		Date: "2025-03-10",
	})

	var unknown *ErrUnknownCompany
	require.ErrorAs(t, err, &unknown)

	got, err := s.GetCompany(a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Communications, "no partial writes on batch failure")
}

func TestDerivedViews_ClockInEasternZone(t *testing.T) {
	// Logged dates parse as UTC midnights; a clock ticking east of UTC must
	// still count whole calendar days past due.
	auckland := time.FixedZone("NZST", 12*60*60)
	now := time.Date(2025, time.March, 10, 7, 0, 0, 0, auckland)
	s := New(WithClock(func() time.Time { return now }))

	company, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	_, err = s.LogCommunication(company.ID, types.LogCommunicationRequest{Type: "Email", Date: "2025-02-18"})
	require.NoError(t, err)

	buckets := s.Notifications()
	require.Len(t, buckets.Overdue, 1)
	assert.Equal(t, 6, buckets.Overdue[0].DaysPastDue)
	assert.Equal(t, types.StatusOverdue, s.Dashboard()[0].Status)
}

func TestDerivedViews_NeverStaleAfterMutation(t *testing.T) {
	s := newTestStore(t)
	company, err := s.AddCompany(companyRequest("Acme"))
	require.NoError(t, err)

	// Log a communication dated 20 days back with a 14-day periodicity:
	// the company must land in the overdue bucket on the same read.
	_, err = s.LogCommunication(company.ID, types.LogCommunicationRequest{Type: "Email", Date: "2025-02-18"})
	require.NoError(t, err)

	buckets := s.Notifications()
	require.Len(t, buckets.Overdue, 1)
	assert.Equal(t, 6, buckets.Overdue[0].DaysPastDue)

	views := s.Dashboard()
	assert.Equal(t, types.StatusOverdue, views[0].Status)

	events := s.CalendarEvents()
	assert.Len(t, events, 2)
}
