package plans_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"growthplan-backend/internal/bootstrap"
	"growthplan-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:              "0",
		CORSAllowOrigin:   []string{"http://localhost:5173"},
		LocalStoreDir:     t.TempDir(),
		Env:               "dev",
		ObjectStoreType:   "local",
		PlanVersion:       "plan:v1",
		RenderCallbackKey: "render-test-key",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router *gin.Engine, method, path, guestID string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createProfile(t *testing.T, router *gin.Engine, guestID string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/profiles", guestID, map[string]any{
		"name":              "Анна",
		"city":              "moscow",
		"workMode":          "salon-only",
		"energyVector":      "exit",
		"salonPrice":        2000,
		"salonClients":      10,
		"salonPercent":      40,
		"salonClientSource": "take-leftovers",
		"salonPercentFair":  "low",
		"repeatRate":        35,
		"sources":           []string{"instagram"},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create profile: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode profile response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("profile id missing in response: %s", resp.Body.String())
	}
	return created.ID
}

func createPlan(t *testing.T, router *gin.Engine, guestID, profileID string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/plans", guestID, map[string]string{"profileId": profileID})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("create plan: expected 202, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		PlanID string `json:"planId"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode plan response: %v", err)
	}
	if created.PlanID == "" {
		t.Fatalf("plan id missing in response: %s", resp.Body.String())
	}
	return created.PlanID
}

func TestCreatePlanGeneratesInline(t *testing.T) {
	app := newTestApp(t)
	profileID := createProfile(t, app.Router, "guest-plan-1")
	planID := createPlan(t, app.Router, "guest-plan-1", profileID)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID, "guest-plan-1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get plan: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var plan struct {
		Status    string `json:"status"`
		Scenario  string `json:"scenario"`
		PageCount int    `json:"pageCount"`
		Steps     []struct {
			ID string `json:"id"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.Status != "completed" {
		t.Fatalf("expected completed plan, got %q", plan.Status)
	}
	if plan.Scenario != "salon-exit" {
		t.Fatalf("expected salon-exit scenario, got %q", plan.Scenario)
	}
	if len(plan.Steps) < 3 || len(plan.Steps) > 5 {
		t.Fatalf("expected 3..5 steps, got %d", len(plan.Steps))
	}
	if plan.PageCount < 5 {
		t.Fatalf("expected at least lead+closing pages, got %d", plan.PageCount)
	}
}

func TestCreatePlanUnknownProfile(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/plans", "guest-plan-2", map[string]string{"profileId": "missing"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetPlanHiddenFromOtherUsers(t *testing.T) {
	app := newTestApp(t)
	profileID := createProfile(t, app.Router, "guest-owner")
	planID := createPlan(t, app.Router, "guest-owner", profileID)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID, "guest-intruder", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign plan, got %d", resp.Code)
	}
}

func TestGetPagesMatchesPageCount(t *testing.T) {
	app := newTestApp(t)
	profileID := createProfile(t, app.Router, "guest-pages")
	planID := createPlan(t, app.Router, "guest-pages", profileID)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID+"/pages", "guest-pages", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get pages: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		PageCount int `json:"pageCount"`
		Pages     []struct {
			Number int    `json:"number"`
			Total  int    `json:"total"`
			HTML   string `json:"html"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode pages: %v", err)
	}
	if out.PageCount != len(out.Pages) {
		t.Fatalf("pageCount %d != pages %d", out.PageCount, len(out.Pages))
	}
	for i, page := range out.Pages {
		if page.Number != i+1 {
			t.Fatalf("page %d numbered %d", i+1, page.Number)
		}
		if page.Total != out.PageCount {
			t.Fatalf("page %d total %d, want %d", i+1, page.Total, out.PageCount)
		}
		marker := fmt.Sprintf("%d / %d", page.Number, page.Total)
		if !strings.Contains(page.HTML, marker) {
			t.Fatalf("page %d missing marker %q", page.Number, marker)
		}
	}
}

func TestAttachDocumentVerifiesPageCount(t *testing.T) {
	app := newTestApp(t)
	profileID := createProfile(t, app.Router, "guest-doc")
	planID := createPlan(t, app.Router, "guest-doc", profileID)

	var plan struct {
		PageCount int `json:"pageCount"`
	}
	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID, "guest-doc", nil)
	if err := json.Unmarshal(resp.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.PageCount == 0 {
		t.Fatalf("plan has no page count")
	}

	// Wrong page count is rejected.
	put := func(doc []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/plans/"+planID+"/document", bytes.NewReader(doc))
		req.Header.Set("Content-Type", "application/pdf")
		req.Header.Set("X-Guest-Id", "guest-doc")
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		return rec
	}

	if rec := put(buildPDF(t, plan.PageCount+1)); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("mismatched pdf: expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := put([]byte("not a pdf")); rec.Code != http.StatusBadRequest {
		t.Fatalf("garbage body: expected 400, got %d", rec.Code)
	}

	rec := put(buildPDF(t, plan.PageCount))
	if rec.Code != http.StatusOK {
		t.Fatalf("matching pdf: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var attached struct {
		DocumentPages int `json:"documentPages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &attached); err != nil {
		t.Fatalf("decode attach response: %v", err)
	}
	if attached.DocumentPages != plan.PageCount {
		t.Fatalf("documentPages %d, want %d", attached.DocumentPages, plan.PageCount)
	}

	// Download returns the stored document.
	dl := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID+"/download", "guest-doc", nil)
	if dl.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", dl.Code)
	}
	if ct := dl.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("download content type %q", ct)
	}
	if !bytes.HasPrefix(dl.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("download body is not a pdf")
	}
}

func TestDownloadBeforeAttachConflicts(t *testing.T) {
	app := newTestApp(t)
	profileID := createProfile(t, app.Router, "guest-early")
	planID := createPlan(t, app.Router, "guest-early", profileID)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID+"/download", "guest-early", nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 before attach, got %d", resp.Code)
	}
}

// buildPDF produces a minimal n-page PDF with a correct xref table.
func buildPDF(t *testing.T, n int) []byte {
	t.Helper()
	if n < 1 {
		t.Fatalf("buildPDF: need at least one page")
	}

	var buf bytes.Buffer
	offsets := make([]int, 0, n+3)
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, n)
	for i := 0; i < n; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), n))
	for i := 0; i < n; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", i+3))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefStart)

	return buf.Bytes()
}

func TestRenderKeyGrantsCallbackAccess(t *testing.T) {
	app := newTestApp(t)
	profileID := createProfile(t, app.Router, "guest-render")
	planID := createPlan(t, app.Router, "guest-render", profileID)

	var plan struct {
		PageCount int `json:"pageCount"`
	}
	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID, "guest-render", nil)
	if err := json.Unmarshal(resp.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}

	// The rasterizer pulls pages without a user identity.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+planID+"/pages", nil)
	req.Header.Set("X-Render-Key", "render-test-key")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("pages with render key: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// And delivers the PDF the same way.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/plans/"+planID+"/document", bytes.NewReader(buildPDF(t, plan.PageCount)))
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("X-Render-Key", "render-test-key")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("attach with render key: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// A wrong key is rejected outright.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+planID+"/pages", nil)
	req.Header.Set("X-Render-Key", "wrong-key")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong render key: expected 401, got %d", rec.Code)
	}

	// The owner can download what the rasterizer delivered.
	dl := doJSON(t, app.Router, http.MethodGet, "/api/v1/plans/"+planID+"/download", "guest-render", nil)
	if dl.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", dl.Code)
	}
}
