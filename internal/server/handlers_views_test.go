package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-tracker/internal/types"
)

func TestDashboard_ReflectsMutations(t *testing.T) {
	srv, _ := newTestServer(t)
	company := createCompany(t, srv, "Acme")

	rec := doJSON(t, srv, http.MethodPost, "/companies/"+company.ID.String()+"/communications",
		types.LogCommunicationRequest{Type: "Email", Date: "2025-02-18"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Companies []types.CompanyView `json:"companies"`
		Total     int                 `json:"total"`
	}
	decodeBody(t, rec, &body)
	require.Equal(t, 1, body.Total)
	// 2025-02-18 + 14 days = 2025-03-04, six days before the fixed clock.
	assert.Equal(t, types.StatusOverdue, body.Companies[0].Status)
}

func TestNotifications_Buckets(t *testing.T) {
	srv, _ := newTestServer(t)
	overdue := createCompany(t, srv, "Overdue Inc")
	today := createCompany(t, srv, "Today LLC")

	rec := doJSON(t, srv, http.MethodPost, "/companies/"+overdue.ID.String()+"/communications",
		types.LogCommunicationRequest{Type: "Email", Date: "2025-02-18"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/companies/"+today.ID.String()+"/communications",
		types.LogCommunicationRequest{Type: "Phone Call", Date: "2025-03-10"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Overdue []types.NotificationEntry `json:"overdue"`
		Today   []types.NotificationEntry `json:"today"`
		Total   int                       `json:"total"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Overdue, 1)
	assert.Equal(t, "Overdue Inc", body.Overdue[0].CompanyName)
	assert.Equal(t, 6, body.Overdue[0].DaysPastDue)
	require.Len(t, body.Today, 1)
	assert.True(t, body.Today[0].IsLogged)
	assert.Equal(t, 2, body.Total)
}

func TestCalendar_Projection(t *testing.T) {
	srv, _ := newTestServer(t)
	company := createCompany(t, srv, "Acme")

	rec := doJSON(t, srv, http.MethodPost, "/companies/"+company.ID.String()+"/communications",
		types.LogCommunicationRequest{Type: "Email", Date: "2025-03-01"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/calendar", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Events []types.CalendarEvent `json:"events"`
		Total  int                   `json:"total"`
	}
	decodeBody(t, rec, &body)
	require.Equal(t, 2, body.Total)

	past, upcoming := 0, 0
	for _, event := range body.Events {
		if event.IsPast {
			past++
		} else {
			upcoming++
			assert.Equal(t, "Email", event.Type)
		}
	}
	assert.Equal(t, 1, past)
	assert.Equal(t, 1, upcoming)
}
