package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/outreach-tracker/internal/store"
	"github.com/jonathan/outreach-tracker/internal/types"
)

// handleListMethods lists the communication method catalog in display order
func (s *Server) handleListMethods(w http.ResponseWriter, _ *http.Request) {
	methods := s.store.ListMethods()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"methods": methods,
		"total":   len(methods),
	})
}

// handleCreateMethod appends a new method to the catalog
func (s *Server) handleCreateMethod(w http.ResponseWriter, r *http.Request) {
	var req types.MethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	method, err := s.store.AddMethod(req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, method)
}

// handleUpdateMethod edits a method in place
func (s *Server) handleUpdateMethod(w http.ResponseWriter, r *http.Request) {
	var req types.MethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	method, err := s.store.UpdateMethod(r.PathValue("id"), req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, method)
}

// handleDeleteMethod removes a method and renumbers the catalog
func (s *Server) handleDeleteMethod(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.DeleteMethod(id); err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleMoveMethod shifts a method one position up or down
func (s *Server) handleMoveMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Direction != store.MoveUp && req.Direction != store.MoveDown {
		s.errorResponse(w, http.StatusBadRequest, "direction must be 'up' or 'down'")
		return
	}

	if err := s.store.MoveMethod(r.PathValue("id"), req.Direction); err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"methods": s.store.ListMethods()})
}

// handleReorderMethods replaces the catalog display order wholesale
func (s *Server) handleReorderMethods(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.ReorderMethods(req.IDs); err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"methods": s.store.ListMethods()})
}
