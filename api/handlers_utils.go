package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/birdeye"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind"`
	Endpoint string `json:"endpoint,omitempty"`
	Status   int    `json:"upstream_status,omitempty"`
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.sendJSONWithStatus(w, http.StatusOK, data)
}

func (s *Server) sendJSONWithStatus(w http.ResponseWriter, status int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	if status == http.StatusOK {
		w.Header().Set("ETag", "\""+etag+"\"")
	}
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		s.logger.Warn("error writing response", zap.Error(err))
	}
}

// sendError maps client errors onto HTTP statuses
func (s *Server) sendError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var upstreamErr *birdeye.UpstreamError
	switch {
	case errors.Is(err, birdeye.ErrEmptyRequest):
		status, resp.Kind = http.StatusBadRequest, "empty_request"
	case errors.Is(err, birdeye.ErrInvalidAddress):
		status, resp.Kind = http.StatusBadRequest, "invalid_address"
	case errors.Is(err, birdeye.ErrNotFound):
		status, resp.Kind = http.StatusNotFound, "not_found"
	case errors.As(err, &upstreamErr):
		status, resp.Kind = http.StatusBadGateway, "upstream_error"
		resp.Endpoint = upstreamErr.Endpoint
		resp.Status = upstreamErr.StatusCode
	default:
		resp.Kind = "internal_error"
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		s.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Error(err))
	}

	s.sendJSONWithStatus(w, status, resp)
}

func getParam(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// splitParam splits a comma separated parameter keeping case, Solana addresses are case sensitive
func splitParam(param string) []string {
	if param == "" {
		return []string{}
	}

	parts := strings.Split(param, ",")
	result := []string{}
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
