package server

import "net/http"

// The three derived views are read-only projections of the store; every
// mutation endpoint has already recomputed them before responding, so these
// handlers only ever serve the cached, consistent copies.

// handleDashboard returns the materialized company rows
func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	views := s.store.Dashboard()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": views,
		"total":     len(views),
	})
}

// handleNotifications returns the overdue and due-today buckets
func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	buckets := s.store.Notifications()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"overdue": buckets.Overdue,
		"today":   buckets.DueToday,
		"total":   buckets.Count(),
	})
}

// handleCalendar returns the flat calendar event projection
func (s *Server) handleCalendar(w http.ResponseWriter, _ *http.Request) {
	events := s.store.CalendarEvents()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}
