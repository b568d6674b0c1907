package apperr

import (
	"encoding/json"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`    // e.g. "invalid", "not_null"
	Message string `json:"message"` // human readable
}

type Problem struct {
	Type        string       `json:"type,omitempty"` // RFC7807 type URI
	Title       string       `json:"title"`          // short summary
	Status      int          `json:"status"`         // HTTP status code
	Detail      string       `json:"detail,omitempty"`
	Instance    string       `json:"instance,omitempty"`
	RequestID   string       `json:"request_id,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
	Retryable   bool         `json:"retryable,omitempty"`
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" && r != nil {
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			p.RequestID = rid
		}
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// Invalid writes the 400 problem used for INVALID_INPUT failures.
func Invalid(w http.ResponseWriter, r *http.Request, detail string, fields ...FieldError) {
	Write(w, r, Problem{
		Title:       "Invalid input",
		Status:      http.StatusBadRequest,
		Detail:      detail,
		FieldErrors: fields,
	})
}
