package check

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/0xabhi/mpin-api/internal/api/apperr"
	"github.com/0xabhi/mpin-api/internal/api/httpx"
	"github.com/0xabhi/mpin-api/internal/api/middlewares"
	"github.com/0xabhi/mpin-api/internal/mpin"
	"github.com/0xabhi/mpin-api/internal/store/audit"
	"github.com/0xabhi/mpin-api/internal/validate"
)

type Handler struct {
	Classifier *mpin.Classifier
	Audit      audit.Store
}

func New(cls *mpin.Classifier, sto audit.Store) *Handler {
	return &Handler{Classifier: cls, Audit: sto}
}

// Check classifies the submitted MPIN. POST /api/v1/mpin/check
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Invalid(w, r, "request body must be valid JSON")
		return
	}

	pin, err := validate.PIN(req.PIN)
	if err != nil {
		apperr.Invalid(w, r, err.Error(),
			apperr.FieldError{Field: "pin", Code: "invalid", Message: err.Error()})
		return
	}

	var demo mpin.Demographics
	var fieldErrs []apperr.FieldError
	for _, f := range []struct {
		name string
		raw  string
		dst  *time.Time
	}{
		{"dob_self", req.DOBSelf, &demo.Self},
		{"dob_spouse", req.DOBSpouse, &demo.Spouse},
		{"anniversary", req.Anniversary, &demo.Anniversary},
	} {
		d, err := validate.Date(f.name, f.raw)
		if err != nil {
			fieldErrs = append(fieldErrs, apperr.FieldError{Field: f.name, Code: "invalid", Message: err.Error()})
			continue
		}
		*f.dst = d
	}
	if len(fieldErrs) > 0 {
		apperr.Invalid(w, r, "one or more dates are malformed", fieldErrs...)
		return
	}

	res, err := h.Classifier.Classify(pin, demo)
	if err != nil {
		apperr.Invalid(w, r, err.Error(),
			apperr.FieldError{Field: "pin", Code: "invalid", Message: err.Error()})
		return
	}

	h.record(r, pin, res)

	httpx.WriteJSON(w, http.StatusOK, res)
}

// record writes the outcome to the audit store. Best effort: a storage
// failure must never fail the check itself. The PIN is not part of the event.
func (h *Handler) record(r *http.Request, pin string, res mpin.Result) {
	if h.Audit == nil {
		return
	}
	reasons := make([]string, 0, len(res.Reasons))
	for _, reason := range res.Reasons {
		reasons = append(reasons, string(reason))
	}
	err := h.Audit.Record(r.Context(), audit.Check{
		PINLength: len(pin),
		Strength:  string(res.Strength),
		Reasons:   reasons,
		RequestID: middlewares.GetRequestID(r),
	})
	if err != nil {
		log.Printf("[audit] record failed: %v", err)
	}
}
