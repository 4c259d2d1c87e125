package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-tracker/internal/types"
)

// handleListCompanies lists all companies with their communication histories
func (s *Server) handleListCompanies(w http.ResponseWriter, _ *http.Request) {
	companies := s.store.ListCompanies()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"total":     len(companies),
	})
}

// handleCreateCompany registers a new company
func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	company, err := s.store.AddCompany(req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, company)
}

// handleGetCompany retrieves a company by ID
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathCompanyID(w, r)
	if !ok {
		return
	}

	company, err := s.store.GetCompany(companyID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleUpdateCompany edits a company's profile fields
func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathCompanyID(w, r)
	if !ok {
		return
	}

	var req types.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	company, err := s.store.EditCompany(companyID, req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleDeleteCompany removes a company
func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathCompanyID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteCompany(companyID); err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": companyID.String()})
}

// handleSetHighlight toggles dashboard highlighting for a company
func (s *Server) handleSetHighlight(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathCompanyID(w, r)
	if !ok {
		return
	}

	var req struct {
		Disabled bool `json:"disabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.SetHighlight(companyID, req.Disabled); err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company_id": companyID,
		"disabled":   req.Disabled,
	})
}

// pathCompanyID parses the {id} path value, writing a 400 on failure.
func (s *Server) pathCompanyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	companyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return uuid.Nil, false
	}
	return companyID, true
}
