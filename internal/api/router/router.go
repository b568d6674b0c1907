package router

import (
	"net/http"

	"github.com/0xabhi/mpin-api/internal/api/handlers/admin"
	"github.com/0xabhi/mpin-api/internal/api/handlers/check"
	"github.com/0xabhi/mpin-api/internal/api/httpx"
	mw "github.com/0xabhi/mpin-api/internal/api/middlewares"
	"github.com/0xabhi/mpin-api/internal/mpin"
	"github.com/0xabhi/mpin-api/internal/store/audit"
)

func Router(cls *mpin.Classifier, sto audit.Store) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ch := check.New(cls, sto)
	mux.HandleFunc("POST /api/v1/mpin/check", ch.Check)

	ah := admin.New(sto)
	mux.HandleFunc("POST /admin/login", ah.Login)
	mux.Handle("GET /admin/stats", mw.RequireAdmin(http.HandlerFunc(ah.Stats)))

	return mux
}
