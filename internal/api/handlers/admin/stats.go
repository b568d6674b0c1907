package admin

import (
	"net/http"

	"github.com/0xabhi/mpin-api/internal/api/apperr"
	"github.com/0xabhi/mpin-api/internal/api/httpx"
)

// Stats serves the aggregate check counters. GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Sto.Stats(r.Context())
	if err != nil {
		if p, ok := apperr.FromPG(err); ok {
			apperr.Write(w, r, p)
			return
		}
		httpx.ErrorCode(w, http.StatusInternalServerError, "stats_failed", "Could not load stats")
		return
	}
	httpx.OK(w, st)
}
