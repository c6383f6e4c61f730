package server

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the JSON envelope for every /api response.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MetaInfo struct {
	RequestID string `json:"request_id,omitempty"`
	Count     *int   `json:"count,omitempty"`
}

const (
	codeBadRequest = "BAD_REQUEST"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL_ERROR"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any, count *int) {
	writeEnvelope(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
		Meta:    &MetaInfo{RequestID: RequestIDFrom(r.Context()), Count: count},
	})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeEnvelope(w, status, APIResponse{
		Error: &ErrorInfo{Code: code, Message: message},
		Meta:  &MetaInfo{RequestID: RequestIDFrom(r.Context())},
	})
}

func respondText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func writeEnvelope(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
