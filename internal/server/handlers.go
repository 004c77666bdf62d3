package server

import (
	"encoding/json"
	"net/http"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/calculation"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type generateRequest struct {
	Profile *domain.Profile `json:"profile"`
	Years   int             `json:"years,omitempty"`
}

type compareRequest struct {
	Baseline  *domain.Trajectory `json:"baseline"`
	Alternate *domain.Trajectory `json:"alternate"`
	Changes   []domain.Change    `json:"changes,omitempty"`
	Name      string             `json:"name,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	trajectory, err := s.engine.GenerateTrajectory(req.Profile)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, trajectory)
}

func (s *Server) handleGenerateQuick(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	trajectory, err := s.engine.GenerateQuickTrajectory(req.Profile, req.Years)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, trajectory)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	comparison, err := calculation.CompareTrajectories(req.Baseline, req.Alternate, req.Changes, req.Name)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, comparison)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
