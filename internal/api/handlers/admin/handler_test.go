package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/0xabhi/mpin-api/internal/api/handlers/admin"
	mw "github.com/0xabhi/mpin-api/internal/api/middlewares"
	"github.com/0xabhi/mpin-api/internal/security/password"
	"github.com/0xabhi/mpin-api/internal/store/audit"
)

func TestLogin(t *testing.T) {
	phc, err := password.Hash("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_PASSPHRASE_HASH", phc)

	h := admin.New(audit.NewMemory())

	// wrong passphrase
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"passphrase":"nope"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}

	// correct passphrase
	req = httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"passphrase":"correct horse battery staple"}`))
	rec = httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.AccessToken == "" {
		t.Fatal("expected an access token")
	}

	// the issued token must pass the admin middleware
	ok := false
	guarded := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok = true
		w.WriteHeader(http.StatusOK)
	}))
	req = httptest.NewRequest("GET", "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+res.AccessToken)
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if !ok || rec.Code != http.StatusOK {
		t.Fatalf("issued token rejected: %d", rec.Code)
	}
}

func TestLogin_Disabled(t *testing.T) {
	t.Setenv("ADMIN_PASSPHRASE_HASH", "")

	h := admin.New(audit.NewMemory())
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"passphrase":"anything"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503 when no hash is configured, got %d", rec.Code)
	}
}

func TestStats(t *testing.T) {
	mem := audit.NewMemory()
	_ = mem.Record(t.Context(), audit.Check{PINLength: 4, Strength: "WEAK", Reasons: []string{"COMMONLY_USED"}})
	_ = mem.Record(t.Context(), audit.Check{PINLength: 6, Strength: "STRONG"})

	h := admin.New(mem)
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Status string      `json:"status"`
		Data   audit.Stats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Data.Total != 2 || res.Data.Weak != 1 || res.Data.Len4 != 1 || res.Data.Len6 != 1 {
		t.Fatalf("bad stats: %+v", res.Data)
	}
}

func TestRequireAdmin_RejectsMissingToken(t *testing.T) {
	guarded := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}
