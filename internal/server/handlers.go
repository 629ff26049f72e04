package server

import (
	"encoding/json"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/aryaneelshivam/deadpanda/pkg/cache"
	apperrors "github.com/aryaneelshivam/deadpanda/pkg/errors"
	"github.com/aryaneelshivam/deadpanda/pkg/rag"
	"github.com/aryaneelshivam/deadpanda/pkg/rag/analyze"
)

// maxBodyBytes bounds request bodies. Graph snapshots from the frontend are
// a few kilobytes; anything near the limit is not a legitimate graph.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON shape of every non-2xx response.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// simulationRequest is the composite body of POST /api/simulate-allocation.
type simulationRequest struct {
	GraphState        rag.GraphState        `json:"graph_state"`
	AllocationRequest rag.AllocationRequest `json:"allocation_request"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Resource Allocation & Deadlock Analyzer API",
		"version": s.version,
		"endpoints": map[string]string{
			"health":        "/api/health",
			"analyze":       "/api/analyze-deadlock",
			"safe_sequence": "/api/safe-sequence",
			"simulate":      "/api/simulate-allocation",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"service":    "deadlock-analyzer",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"uptime":     time.Since(s.start).Round(time.Second).String(),
		"go_version": runtime.Version(),
	})
}

func (s *Server) handleAnalyzeDeadlock(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if s.serveCached(w, r, "analyze", body) {
		return
	}

	var state rag.GraphState
	if !s.decode(w, body, &state) {
		return
	}
	if err := apperrors.ValidateGraphState(state); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.respond(w, r, "analyze", body, analyze.Deadlock(state))
}

func (s *Server) handleSafeSequence(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if s.serveCached(w, r, "sequence", body) {
		return
	}

	var state rag.GraphState
	if !s.decode(w, body, &state) {
		return
	}
	if err := apperrors.ValidateGraphState(state); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.respond(w, r, "sequence", body, analyze.SafeSequence(state))
}

func (s *Server) handleSimulateAllocation(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if s.serveCached(w, r, "simulate", body) {
		return
	}

	var req simulationRequest
	if !s.decode(w, body, &req) {
		return
	}
	if err := apperrors.ValidateGraphState(req.GraphState); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := apperrors.ValidateAllocationRequest(req.AllocationRequest); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.respond(w, r, "simulate", body, analyze.Simulate(req.GraphState, req.AllocationRequest))
}

// readBody reads and bounds the request body. On failure it writes the
// error response and returns ok=false.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "reading request body"))
		return nil, false
	}
	return body, true
}

// decode unmarshals body into v. On failure it writes the error response
// and returns false.
func (s *Server) decode(w http.ResponseWriter, body []byte, v any) bool {
	if err := json.Unmarshal(body, v); err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decoding request body"))
		return false
	}
	return true
}

// serveCached writes a previously cached response for this exact body, if
// one exists. Cache failures are logged and treated as misses.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, namespace string, body []byte) bool {
	data, hit, err := s.cache.Get(r.Context(), cache.Key(namespace, body))
	if err != nil {
		s.log.Warn("cache get failed", "namespace", namespace, "err", err)
		return false
	}
	if !hit {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "HIT")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	return true
}

// respond serializes result, stores it in the cache and writes it out.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, namespace string, body []byte, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			apperrors.Wrap(apperrors.ErrCodeInternal, err, "encoding response"))
		return
	}

	if err := s.cache.Set(r.Context(), cache.Key(namespace, body), data, s.cacheTTL); err != nil {
		s.log.Warn("cache set failed", "namespace", namespace, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Code:  string(apperrors.GetCode(err)),
		Error: apperrors.UserMessage(err),
	})
}
