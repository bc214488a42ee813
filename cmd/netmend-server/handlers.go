package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/netmend/netmend/internal/app/dto"
	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/network"
	"github.com/netmend/netmend/pkg/netmend"
	"github.com/netmend/netmend/pkg/wkt"
)

// server holds the handlers' shared dependencies.
type server struct {
	runtime *netmend.Runtime
	logger  *zap.Logger
}

func newServer(rt *netmend.Runtime, logger *zap.Logger) *server {
	return &server{runtime: rt, logger: logger}
}

// repairRequest is the wire format of POST /v1/repair: geometries
// travel as WKT LINESTRING text.
type repairRequest struct {
	Lines  []string         `json:"lines"`
	Config dto.RepairConfig `json:"config"`
}

type repairResponse struct {
	Segments []string        `json:"segments"`
	Bridges  []string        `json:"bridges,omitempty"`
	Stats    dto.RepairStats `json:"stats"`
}

func (s *server) handleRepair(w http.ResponseWriter, r *http.Request) {
	var req repairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	lines := make([]geometry.Line, 0, len(req.Lines))
	for _, text := range req.Lines {
		line, err := wkt.ParseLineString(text)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		lines = append(lines, line)
	}

	resp, err := s.runtime.Repair(r.Context(), &dto.RepairRequest{
		Lines:  lines,
		Config: req.Config,
	})
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}

	out := repairResponse{
		Segments: encodeWKT(resp.Segments),
		Bridges:  encodeWKT(resp.Bridges),
		Stats:    resp.Stats,
	}
	s.logger.Info("repair completed",
		zap.String("job_id", resp.JobID),
		zap.Int("components_in", resp.Stats.ComponentsIn),
		zap.Int("bridges", resp.Stats.BridgesAdded))
	s.writeJSON(w, http.StatusOK, out)
}

func (s *server) handleSaveNetwork(w http.ResponseWriter, r *http.Request) {
	var n network.Network
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.runtime.SaveNetwork(r.Context(), &n); err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": n.ID})
}

func (s *server) handleGetNetwork(w http.ResponseWriter, r *http.Request) {
	n, err := s.runtime.LoadNetwork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, n)
}

func (s *server) handleRepairNetwork(w http.ResponseWriter, r *http.Request) {
	n, err := s.runtime.RepairNetwork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}
	s.logger.Info("stored network repaired",
		zap.String("network_id", n.ID),
		zap.Int("bridges", len(n.Bridges)))
	s.writeJSON(w, http.StatusOK, n)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusForError maps domain errors onto HTTP status codes.
func statusForError(err error) int {
	var parseErr *wkt.ParseError
	switch {
	case errors.Is(err, network.ErrNetworkNotFound):
		return http.StatusNotFound
	case errors.As(err, &parseErr),
		errors.Is(err, dto.ErrInvalidInput),
		errors.Is(err, dto.ErrInvalidConfig),
		errors.Is(err, network.ErrInvalidNetworkID),
		errors.Is(err, network.ErrInvalidNetworkName),
		errors.Is(err, geometry.ErrTooFewPoints),
		errors.Is(err, geometry.ErrNonFiniteCoord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func encodeWKT(lines []geometry.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = wkt.EncodeLineString(l)
	}
	return out
}
