package admin

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/0xabhi/mpin-api/internal/api/httpx"
	jwtutil "github.com/0xabhi/mpin-api/internal/security/jwt"
	"github.com/0xabhi/mpin-api/internal/security/password"
)

type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

// Login exchanges the admin passphrase for a short-lived access token.
// POST /admin/login. The expected argon2id hash comes from
// ADMIN_PASSPHRASE_HASH; without it the admin surface stays disabled.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	phc := os.Getenv("ADMIN_PASSPHRASE_HASH")
	if phc == "" {
		httpx.ErrorCode(w, http.StatusServiceUnavailable, "admin_disabled", "Admin access is not configured")
		return
	}

	ok, err := password.Verify(req.Passphrase, phc)
	if err != nil || !ok {
		httpx.ErrorCode(w, http.StatusUnauthorized, "invalid_credentials", "Invalid passphrase")
		return
	}

	access, _, err := jwtutil.SignAdmin("admin", jwtutil.DefaultAccessTTL())
	if err != nil {
		httpx.ErrorCode(w, http.StatusInternalServerError, "jwt_error", "Failed to sign access token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"access_token": access})
}
