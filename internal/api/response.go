// Package api implements HTTP handlers for the currency rate service.
package api

import (
	"encoding/json"
	"net/http"
)

// Query statuses rendered by /get_currency.
const (
	StatusOK              = "ok"
	StatusPairNotProvided = "pair_not_provided"
	StatusPairNotFound    = "pair_not_found"
	StatusNotYetAvailable = "not_yet_available"
	StatusInternalError   = "internal_error"
)

// CurrencyResponse is the body of every /get_currency answer.
type CurrencyResponse struct {
	Status       string   `json:"status" example:"ok"`
	CurrentValue *float64 `json:"current_value,omitempty" example:"75.5"`
	Reason       string   `json:"reason,omitempty" example:"context canceled"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Cache not ready"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(CurrencyResponse{Status: StatusInternalError, Reason: "encode response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// WriteInternalError renders the internal_error body with HTTP 500.
func WriteInternalError(w http.ResponseWriter, reason string) {
	writeJSON(w, http.StatusInternalServerError, CurrencyResponse{Status: StatusInternalError, Reason: reason})
}
