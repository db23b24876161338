package webserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stockdesk/src/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:          "0",
		AllowOrigins:  []string{"http://localhost:3000"},
		ToastTTL:      time.Minute,
		RedirectDelay: 2 * time.Second,
		FocusDelay:    5 * time.Millisecond,
		RateLimit:     1000,
		RateWindow:    time.Minute,
	}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// nil DB and Redis: catalog-backed routes are not exercised here and
	// storage falls back to the in-memory backend.
	return New(testConfig(), nil, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestWeighEndpoint(t *testing.T) {
	r := testRouter(t)

	w, resp := doJSON(t, r, "POST", "/v1/calc/weight",
		`{"shape":"square","diameterMm":10,"lengthMm":100,"density":7.85}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := resp["weightKg"].(float64); got != 0.0785 {
		t.Errorf("weightKg = %v, want 0.0785", got)
	}
	if got := resp["shapeLabel"].(string); got != "Square bar" {
		t.Errorf("shapeLabel = %q", got)
	}
}

func TestWeighEndpointRequiresDensityOrMaterial(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, "POST", "/v1/calc/weight", `{"shape":"round","diameterMm":10,"lengthMm":100}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	r := testRouter(t)

	w, resp := doJSON(t, r, "POST", "/v1/validate",
		`{"value":"42","type":"integer","options":{"min":0,"max":100}}`)
	if w.Code != http.StatusOK || resp["valid"] != true {
		t.Errorf("status = %d, resp = %v", w.Code, resp)
	}

	_, resp = doJSON(t, r, "POST", "/v1/validate", `{"value":"007","type":"integer"}`)
	if resp["valid"] != false {
		t.Errorf("007 should be invalid, resp = %v", resp)
	}
}

func TestLabelsEndpoint(t *testing.T) {
	r := testRouter(t)

	w, resp := doJSON(t, r, "GET", "/v1/labels/shapes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	labels := resp["labels"].(map[string]any)
	if labels["round"] != "Round bar" {
		t.Errorf("labels = %v", labels)
	}

	w, _ = doJSON(t, r, "GET", "/v1/labels/colors", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown kind status = %d, want 404", w.Code)
	}
}

func TestToastLifecycleOverHTTP(t *testing.T) {
	r := testRouter(t)

	w, resp := doJSON(t, r, "POST", "/v1/toasts", `{"severity":"success","message":"saved"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("push status = %d", w.Code)
	}
	id := resp["id"].(string)

	_, resp = doJSON(t, r, "GET", "/v1/toasts", "")
	if toasts := resp["toasts"].([]any); len(toasts) != 1 {
		t.Fatalf("active toasts = %v", toasts)
	}

	w, _ = doJSON(t, r, "DELETE", "/v1/toasts/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("dismiss status = %d", w.Code)
	}
	_, resp = doJSON(t, r, "GET", "/v1/toasts", "")
	if toasts := resp["toasts"].([]any); len(toasts) != 0 {
		t.Errorf("toast survived dismissal: %v", toasts)
	}
}

func TestReportErrorMapsStatusCodes(t *testing.T) {
	r := testRouter(t)

	w, resp := doJSON(t, r, "POST", "/v1/errors", `{"message":"request failed with status 401"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["redirect"] != "/login" {
		t.Errorf("401 should carry a login redirect, resp = %v", resp)
	}
	if resp["redirectAfterMs"].(float64) != 2000 {
		t.Errorf("redirectAfterMs = %v", resp["redirectAfterMs"])
	}

	_, resp = doJSON(t, r, "POST", "/v1/errors", `{"message":"socket hang up"}`)
	if resp["message"] != "socket hang up" {
		t.Errorf("unmatched error should pass through, resp = %v", resp)
	}
	if _, ok := resp["redirect"]; ok {
		t.Error("unmatched error must not redirect")
	}
}

func TestStateEndpoints(t *testing.T) {
	r := testRouter(t)

	w, _ := doJSON(t, r, "PUT", "/v1/state/sess1/prefs", `{"shape":"hexagon"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("put status = %d", w.Code)
	}

	_, resp := doJSON(t, r, "GET", "/v1/state/sess1/prefs", "")
	if resp["found"] != true {
		t.Fatalf("stored value not found: %v", resp)
	}
	if v := resp["value"].(map[string]any); v["shape"] != "hexagon" {
		t.Errorf("value = %v", v)
	}

	_, resp = doJSON(t, r, "GET", "/v1/state/sess1/missing?default=none", "")
	if resp["found"] != false || resp["value"] != "none" {
		t.Errorf("missing key should return caller default, resp = %v", resp)
	}

	w, _ = doJSON(t, r, "DELETE", "/v1/state/sess1/prefs", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	_, resp = doJSON(t, r, "GET", "/v1/state/sess1/prefs", "")
	if resp["found"] != false {
		t.Error("value survived delete")
	}
}

func TestStateRejectsBadJSON(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, "PUT", "/v1/state/sess1/prefs", `{broken`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestModalEndpoints(t *testing.T) {
	r := testRouter(t)

	w, _ := doJSON(t, r, "POST", "/v1/session/sess1/modal/weigh-dialog/open", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("open status = %d", w.Code)
	}

	_, resp := doJSON(t, r, "GET", "/v1/session/sess1/ui", "")
	if resp["openModal"] != "weigh-dialog" {
		t.Errorf("snapshot = %v", resp)
	}

	_, resp = doJSON(t, r, "DELETE", "/v1/session/sess1/modal", "")
	if resp["closed"] != "weigh-dialog" {
		t.Errorf("closed = %v", resp["closed"])
	}

	_, resp = doJSON(t, r, "GET", "/v1/session/sess1/ui", "")
	if open, ok := resp["openModal"]; ok && open != "" {
		t.Errorf("modal still open: %v", open)
	}
}

func TestModalFormDraft(t *testing.T) {
	r := testRouter(t)

	doJSON(t, r, "POST", "/v1/session/sess1/modal/movement-dialog/open", "")

	form := url.Values{"material": {"sus-304"}, "location": {"A-01", "B-17"}}
	req := httptest.NewRequest("POST", "/v1/session/sess1/modal/movement-dialog/form",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("form status = %d", w.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	fields := resp["fields"].(map[string]any)
	if fields["material"] != "sus-304" {
		t.Errorf("fields = %v", fields)
	}
	if locs := fields["location"].([]any); len(locs) != 2 || locs[0] != "A-01" {
		t.Errorf("repeated field = %v", locs)
	}
}

func TestBusyEndpoints(t *testing.T) {
	r := testRouter(t)

	w, _ := doJSON(t, r, "POST", "/v1/session/sess1/busy/save-btn",
		`{"currentLabel":"Save","busyLabel":"Saving..."}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("busy status = %d", w.Code)
	}

	_, resp := doJSON(t, r, "DELETE", "/v1/session/sess1/busy/save-btn", "")
	if resp["restoreLabel"] != "Save" {
		t.Errorf("restoreLabel = %v", resp["restoreLabel"])
	}
}

func TestConfirmationAnswerUnknown(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, "POST", "/v1/confirmations/nope", `{"accepted":true}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
