package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tron-address-service/internal/lookup"
	"tron-address-service/internal/observability"
)

// addressRequest is the POST /address-info request body.
type addressRequest struct {
	Address string `json:"address"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError replies with the error envelope.
func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, errorResponse{Detail: detail})
}

// handleLookup services POST /address-info: one address lookup.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Printf("httpreq from %v %s: bad body: %v", r.RemoteAddr, r.RequestURI, err)
		writeError(w, http.StatusBadRequest, "invalid request body: expected JSON with an \"address\" field")
		observability.RecordLookup(observability.LookupStatusInvalidFormat, time.Since(start).Seconds())
		return
	}

	info, err := s.lookups.Lookup(r.Context(), req.Address)

	var status string
	switch {
	case errors.Is(err, lookup.ErrInvalidFormat):
		status = observability.LookupStatusInvalidFormat
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lookup.ErrInvalidAddress):
		status = observability.LookupStatusInvalidAddress
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		status = observability.LookupStatusUpstreamError
		s.logger.Printf("error processing address %q: %v", req.Address, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error processing request: %v", err))
	default:
		status = observability.LookupStatusOK
		writeJSON(w, http.StatusOK, info)

		s.mu.Lock()
		s.lookupCount++
		s.mu.Unlock()
	}

	s.logger.Printf("httpreq from %v POST %s status:%s err:%v", r.RemoteAddr, r.RequestURI, status, err)
	observability.RecordLookup(status, time.Since(start).Seconds())
}

// handleHistory services GET /address-info: a page of the lookup log.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	observability.RecordHistoryRequest()

	page, err := queryInt(r, "page", lookup.DefaultPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := queryInt(r, "page_size", lookup.DefaultPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.lookups.History(r.Context(), page, pageSize)
	switch {
	case errors.Is(err, lookup.ErrInvalidPage):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Printf("error retrieving address info list: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error retrieving records: %v", err))
		observability.RecordHistoryError()
		return
	}

	s.logger.Printf("httpreq from %v GET %s records:%d", r.RemoteAddr, r.RequestURI, len(records))
	writeJSON(w, http.StatusOK, records)

	s.mu.Lock()
	s.historyCount++
	s.mu.Unlock()
}

// queryInt parses an optional integer query parameter. Absent parameters
// take the default; present ones must parse, out-of-range values are left
// for the lookup service to reject.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer", name)
	}
	return v, nil
}

// handleHealth services GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// statusResponse is the JSON response for the /status endpoint.
type statusResponse struct {
	Status       string `json:"status"`
	Uptime       string `json:"uptime"`
	Lookups      int64  `json:"lookups"`
	HistoryReads int64  `json:"history_reads"`
}

// handleStatus returns server status as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := statusResponse{
		Status:       "running",
		Uptime:       time.Since(s.started).String(),
		Lookups:      s.lookupCount,
		HistoryReads: s.historyCount,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}
