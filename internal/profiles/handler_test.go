package profiles_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"growthplan-backend/internal/bootstrap"
	"growthplan-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postProfile(t *testing.T, router *gin.Engine, guestID string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateProfileNormalizesInput(t *testing.T) {
	router := newTestRouter(t)

	resp := postProfile(t, router, "guest-p1", map[string]any{
		"city":         "moscow",
		"workMode":     "private-only",
		"energyVector": "grow",
		"privatePrice": 3000,
		"repeatRate":   -10,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID      string `json:"id"`
		Profile struct {
			Name       string `json:"name"`
			RepeatRate int    `json:"repeatRate"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("missing id in response")
	}
	if created.Profile.Name != "Мастер" {
		t.Fatalf("expected default name, got %q", created.Profile.Name)
	}
	if created.Profile.RepeatRate != 0 {
		t.Fatalf("expected clamped repeat rate, got %d", created.Profile.RepeatRate)
	}
}

func TestCreateProfileRejectsUnknownWorkMode(t *testing.T) {
	router := newTestRouter(t)

	resp := postProfile(t, router, "guest-p2", map[string]any{
		"city":     "moscow",
		"workMode": "freelance",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	resp := postProfile(t, router, "guest-p3", map[string]any{
		"name":         "Ольга",
		"city":         "spb",
		"workMode":     "hybrid",
		"energyVector": "exit",
		"salonPrice":   1800,
		"salonClients": 8,
		"salonPercent": 35,
		"privatePrice": 2500,
		"privateClients": 4,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+created.ID, nil)
	req.Header.Set("X-Guest-Id", "guest-p3")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var fetched struct {
		Profile struct {
			Name     string `json:"name"`
			City     string `json:"city"`
			WorkMode string `json:"workMode"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode fetched: %v", err)
	}
	if fetched.Profile.Name != "Ольга" || fetched.Profile.City != "spb" || fetched.Profile.WorkMode != "hybrid" {
		t.Fatalf("unexpected profile: %+v", fetched.Profile)
	}

	// Another user cannot see it.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+created.ID, nil)
	req.Header.Set("X-Guest-Id", "guest-other")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign profile, got %d", rec.Code)
	}
}

func TestListProfilesRequiresLogin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	req.Header.Set("X-Guest-Id", "guest-p4")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest history, got %d", rec.Code)
	}
}

func TestCurrentProfileReturnsLatest(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/current", nil)
	req.Header.Set("X-Guest-Id", "guest-p5")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any submission, got %d", rec.Code)
	}

	for _, city := range []string{"regional", "moscow"} {
		resp := postProfile(t, router, "guest-p5", map[string]any{
			"city":         city,
			"workMode":     "private-only",
			"energyVector": "grow",
			"privatePrice": 2000,
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.Code)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/current", nil)
	req.Header.Set("X-Guest-Id", "guest-p5")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var fetched struct {
		Profile struct {
			City string `json:"city"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode current: %v", err)
	}
	if fetched.Profile.City != "moscow" {
		t.Fatalf("expected latest profile, got city %q", fetched.Profile.City)
	}
}
