package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/happiness-sim/happiness-sim/sim"
)

// statusResponse is sim.Status plus the wall-clock date.
type statusResponse struct {
	sim.Status
	CurrentDate string `json:"current_date"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type indexData struct {
	MaxDays int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{MaxDays: sim.MaxDays}); err != nil {
		logrus.Errorf("render index: %v", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.state.Status()
	s.mu.Unlock()

	writeJSON(w, statusResponse{
		Status:      st,
		CurrentDate: s.clock.Now().Format(dateLayout),
	})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ok := s.state.AdvanceDay()
	s.mu.Unlock()

	writeJSON(w, successResponse{Success: ok})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.state.Reset()
	s.mu.Unlock()

	writeJSON(w, successResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("encode response: %v", err)
	}
}
