package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-tracker/internal/types"
)

// BatchLogRequest is the body for logging one communication against several
// companies in a single user action.
type BatchLogRequest struct {
	CompanyIDs    []uuid.UUID                   `json:"company_ids"`
	Communication types.LogCommunicationRequest `json:"communication"`
}

// handleLogCommunication appends a communication to one company's history
func (s *Server) handleLogCommunication(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathCompanyID(w, r)
	if !ok {
		return
	}

	var req types.LogCommunicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	company, err := s.store.LogCommunication(companyID, req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, company)
}

// handleLogCommunicationBatch logs the same communication to every listed
// company; derived views are recomputed once after the whole batch
func (s *Server) handleLogCommunicationBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.CompanyIDs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "company_ids is required")
		return
	}

	companies, err := s.store.LogCommunicationBatch(req.CompanyIDs, req.Communication)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"companies": companies,
		"total":     len(companies),
	})
}
