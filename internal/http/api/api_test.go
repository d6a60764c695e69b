package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/config"
	"github.com/rtservizi/fieldtrack/internal/db"
	"github.com/rtservizi/fieldtrack/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + filepath.Join(t.TempDir(), "fieldtrack-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	st := store.New(conn)
	engine := gin.New()
	RegisterRoutes(engine, st, config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	return engine, st
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var errMarshal error
		payload, errMarshal = json.Marshal(body)
		if errMarshal != nil {
			t.Fatalf("marshal body: %v", errMarshal)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": username,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if errDecode := json.Unmarshal(rec.Body.Bytes(), &resp); errDecode != nil {
		t.Fatalf("decode login response: %v", errDecode)
	}
	if resp.Token == "" {
		t.Fatalf("expected login token in response")
	}
	return resp.Token
}

func seedOperator(t *testing.T, st *store.Store) string {
	t.Helper()
	_, errCreate := st.CreateUser(context.Background(), store.UserParams{
		Username: "mario",
		Email:    "mario@example.com",
		Role:     "Operatore",
		Password: "secret-password",
	})
	if errCreate != nil {
		t.Fatalf("seed operator: %v", errCreate)
	}
	return "mario"
}

func TestLogin_BadCredentials(t *testing.T) {
	engine, st := newTestServer(t)
	seedOperator(t, st)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": "mario",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": "nobody",
		"password": "secret-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectsMissingOrBadToken(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/clients", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/clients", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}
}

func TestClientLifecycleOverHTTP(t *testing.T) {
	engine, st := newTestServer(t)
	seedOperator(t, st)
	token := loginAs(t, engine, "mario", "secret-password")

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/clients", token, gin.H{
		"name": "Acme SpA",
		"city": "Torino",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on create, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/clients", token, gin.H{
		"name": "Acme SpA",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate name, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/clients?search=acme", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/v1/clients/999", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting missing client, got %d", rec.Code)
	}
}

func TestReportEndpoints_BadInputs(t *testing.T) {
	engine, st := newTestServer(t)
	seedOperator(t, st)
	token := loginAs(t, engine, "mario", "secret-password")

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/reports", token, gin.H{
		"date":      "June 1st",
		"work_type": "commission",
		"work_id":   1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/reports", token, gin.H{
		"date":      "2024-06-01",
		"work_type": "gadget",
		"work_id":   1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown work type, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/reports/month?month=2024-06", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed month, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/reports/42", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing report, got %d", rec.Code)
	}
}

func TestReportLifecycleOverHTTP(t *testing.T) {
	engine, st := newTestServer(t)
	seedOperator(t, st)
	token := loginAs(t, engine, "mario", "secret-password")

	client, errCreate := st.CreateClient(context.Background(), store.ClientParams{Name: "Acme SpA"})
	if errCreate != nil {
		t.Fatalf("seed client: %v", errCreate)
	}
	commission, errCreate := st.CreateCommission(context.Background(), store.CommissionParams{
		Code:     "C-100",
		ClientID: client.ID,
	})
	if errCreate != nil {
		t.Fatalf("seed commission: %v", errCreate)
	}

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/reports", token, gin.H{
		"date":                  "2024-06-01",
		"intervention_duration": "4h",
		"intervention_type":     "maintenance",
		"work_type":             "commission",
		"work_id":               commission.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on report create, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/reports", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on report list, got %d", rec.Code)
	}
	var listResp struct {
		Reports []struct {
			ID             uint64 `json:"id"`
			CommissionCode string `json:"commission_code"`
			ClientName     string `json:"client_name"`
		} `json:"reports"`
	}
	if errDecode := json.Unmarshal(rec.Body.Bytes(), &listResp); errDecode != nil {
		t.Fatalf("decode report list: %v", errDecode)
	}
	if len(listResp.Reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(listResp.Reports))
	}
	if listResp.Reports[0].CommissionCode != "C-100" || listResp.Reports[0].ClientName != "Acme SpA" {
		t.Fatalf("expected enriched report row, got %+v", listResp.Reports[0])
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/reports/months", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on months, got %d", rec.Code)
	}
	var monthsResp struct {
		Months []string `json:"months"`
	}
	if errDecode := json.Unmarshal(rec.Body.Bytes(), &monthsResp); errDecode != nil {
		t.Fatalf("decode months: %v", errDecode)
	}
	if len(monthsResp.Months) != 1 || monthsResp.Months[0] != "06/2024" {
		t.Fatalf("expected single month 06/2024, got %v", monthsResp.Months)
	}
}
