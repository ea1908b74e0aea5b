package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dreamholidays/api/internal/config"
	"dreamholidays/api/internal/content"
	"dreamholidays/api/internal/history"
	"dreamholidays/api/internal/store"
	"dreamholidays/api/internal/upload"
)

type testServer struct {
	srv   *HTTPServer
	store *store.FileStore
}

func newTestServer(t *testing.T, log changelog) *testServer {
	t.Helper()
	dir := t.TempDir()
	fs := store.NewFileStore(filepath.Join(dir, "site-config.json"))
	views := content.New(fs, content.Options{Debounce: 5 * time.Millisecond})
	relay := upload.New(filepath.Join(dir, "public"))
	svc := New(config.Load(), fs, views, relay, log)
	return &testServer{
		srv:   NewHTTPServer(svc, "*"),
		store: fs,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return payload
}

func seedConfig(t *testing.T, ts *testServer, doc store.Document) {
	t.Helper()
	if err := ts.store.WriteAll(context.Background(), doc); err != nil {
		t.Fatalf("seed config: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if payload := decodeResponse(t, rec); payload["ok"] != true {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestReady(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	if payload["status"] != "ready" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestGetConfigNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/config", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	if payload["error"] != "Config file not found" {
		t.Fatalf("unexpected error %v", payload)
	}
}

func TestGetConfig(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"stats": json.RawMessage(`{"happyCustomers":5,"visible":true}`),
	})

	rec := ts.do(t, http.MethodGet, "/api/config", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	if payload["success"] != true {
		t.Fatalf("missing success flag: %v", payload)
	}
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data envelope: %v", payload)
	}
	if _, ok := data["stats"]; !ok {
		t.Fatalf("stats section missing: %v", data)
	}
}

func TestReplaceConfig(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/config", map[string]any{
		"data": map[string]any{
			"stats": map[string]any{"happyCustomers": 9, "visible": true},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	payload := decodeResponse(t, rec)
	if payload["message"] != "Config file updated successfully" {
		t.Fatalf("unexpected message %v", payload)
	}
	if _, ok := payload["data"].(map[string]any); !ok {
		t.Fatalf("missing data in response: %v", payload)
	}

	doc, err := ts.store.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll after POST: %v", err)
	}
	if _, ok := doc["stats"]; !ok {
		t.Fatal("stats not persisted")
	}
}

func TestReplaceConfigNoData(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		rec := ts.do(t, method, "/api/config", map[string]any{})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", method, rec.Code)
		}
	}
}

func TestPutBehavesLikePost(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPut, "/api/config", map[string]any{
		"data": map[string]any{"contact": map[string]any{"visible": true}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPatchSection(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"stats":    json.RawMessage(`{"happyCustomers":5}`),
		"packages": json.RawMessage(`[{"id":1,"name":"Santorini Paradise"}]`),
	})

	rec := ts.do(t, http.MethodPatch, "/api/config", map[string]any{
		"section": "stats",
		"data":    map[string]any{"happyCustomers": 10},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	payload := decodeResponse(t, rec)
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing full document in response: %v", payload)
	}
	if _, ok := data["packages"]; !ok {
		t.Fatalf("sibling section missing from response: %v", data)
	}
	stats := data["stats"].(map[string]any)
	if stats["happyCustomers"] != float64(10) {
		t.Fatalf("stats not updated: %v", stats)
	}
}

func TestPatchSectionValidation(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{"stats": json.RawMessage(`{}`)})

	rec := ts.do(t, http.MethodPatch, "/api/config", map[string]any{"section": "stats"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing data: expected 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodPatch, "/api/config", map[string]any{"data": map[string]any{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing section: expected 400, got %d", rec.Code)
	}
}

func TestPatchSectionWithoutBaseDocument(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPatch, "/api/config", map[string]any{
		"section": "stats",
		"data":    map[string]any{"happyCustomers": 1},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteSection(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"stats":   json.RawMessage(`{"happyCustomers":5}`),
		"contact": json.RawMessage(`{"visible":true}`),
	})

	rec := ts.do(t, http.MethodDelete, "/api/config", map[string]any{"section": "contact"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	data := payload["data"].(map[string]any)
	if _, ok := data["contact"]; ok {
		t.Fatalf("deleted section still in response: %v", data)
	}
}

func TestDeleteSectionErrors(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{"stats": json.RawMessage(`{}`)})

	rec := ts.do(t, http.MethodDelete, "/api/config", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing section: expected 400, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodDelete, "/api/config", map[string]any{"section": "nope"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown section: expected 404, got %d", rec.Code)
	}
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("image", "beach photo.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := form.WriteField("folder", "hero"); err != nil {
		t.Fatalf("write folder field: %v", err)
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	payload := decodeResponse(t, rec)
	url, _ := payload["url"].(string)
	if !strings.HasPrefix(url, "/hero/") || !strings.HasSuffix(url, "_beach_photo.jpg") {
		t.Fatalf("unexpected url %q", url)
	}
	if payload["path"] != url {
		t.Fatalf("path should equal url: %v", payload)
	}
}

func TestUploadMissingFile(t *testing.T) {
	ts := newTestServer(t, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("folder", "hero")
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	if payload["error"] != "No file uploaded" {
		t.Fatalf("unexpected error %v", payload)
	}
}

func TestContentHeroSlides(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"heroSlides": json.RawMessage(`[
			{"id":1,"title":"B","visible":true,"order":2},
			{"id":2,"title":"Hidden","visible":false,"order":1},
			{"id":3,"title":"A","visible":true,"order":1}
		]`),
	})

	rec := ts.do(t, http.MethodGet, "/api/content/hero-slides", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	data := payload["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 visible slides, got %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["title"] != "A" {
		t.Fatalf("expected order-sorted slides, got %v", data)
	}
}

func TestContentFeaturedPackages(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"packages": json.RawMessage(`[
			{"id":1,"name":"A","featured":true,"status":"active"},
			{"id":2,"name":"B","featured":true,"status":"draft"}
		]`),
	})

	rec := ts.do(t, http.MethodGet, "/api/content/packages/featured", nil)
	payload := decodeResponse(t, rec)
	data := payload["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 featured active package, got %d", len(data))
	}
}

func TestContentSearchPackages(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"packages": json.RawMessage(`[
			{"id":1,"name":"Santorini Paradise","location":"Greece","description":"x","status":"active"},
			{"id":2,"name":"Bali Adventure","location":"Indonesia","description":"x","status":"active"}
		]`),
	})

	rec := ts.do(t, http.MethodGet, "/api/content/packages/search?q=greece", nil)
	payload := decodeResponse(t, rec)
	data := payload["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 match, got %d", len(data))
	}
}

func TestContentPackageByID(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"packages": json.RawMessage(`[{"id":7,"name":"A","status":"active"}]`),
	})

	rec := ts.do(t, http.MethodGet, "/api/content/packages/7", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodGet, "/api/content/packages/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing package: expected 404, got %d", rec.Code)
	}
	rec = ts.do(t, http.MethodGet, "/api/content/packages/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", rec.Code)
	}
}

func TestRawWritesInvalidateContentViews(t *testing.T) {
	ts := newTestServer(t, nil)
	seedConfig(t, ts, store.Document{
		"heroSlides": json.RawMessage(`[{"id":1,"title":"Old","visible":true,"order":1}]`),
	})

	rec := ts.do(t, http.MethodGet, "/api/content/hero-slides", nil)
	data := decodeResponse(t, rec)["data"].([]any)
	if data[0].(map[string]any)["title"] != "Old" {
		t.Fatalf("unexpected initial slides %v", data)
	}

	rec = ts.do(t, http.MethodPatch, "/api/config", map[string]any{
		"section": "heroSlides",
		"data":    []map[string]any{{"id": 1, "title": "New", "visible": true, "order": 1}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch failed: %d", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/api/content/hero-slides", nil)
	data = decodeResponse(t, rec)["data"].([]any)
	if data[0].(map[string]any)["title"] != "New" {
		t.Fatalf("content view served stale slides: %v", data)
	}
}

func TestHistoryUnavailable(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/config/history", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	log, err := history.New(t.TempDir())
	if err != nil {
		t.Fatalf("history.New: %v", err)
	}
	ts := newTestServer(t, log)
	ctx := context.Background()

	if err := log.Record(ctx, store.Document{"stats": json.RawMessage(`{"happyCustomers":1}`)}, "first save"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := log.Record(ctx, store.Document{"stats": json.RawMessage(`{"happyCustomers":2}`)}, "second save"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	rec := ts.do(t, http.MethodGet, "/api/config/history?limit=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeResponse(t, rec)["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 commit with limit, got %d", len(data))
	}
	hash := data[0].(map[string]any)["hash"].(string)

	rec = ts.do(t, http.MethodGet, "/api/config/history/"+hash, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("entry: expected 200, got %d", rec.Code)
	}
	payload := decodeResponse(t, rec)
	if _, ok := payload["data"].(map[string]any)["stats"]; !ok {
		t.Fatalf("missing document at commit: %v", payload)
	}

	rec = ts.do(t, http.MethodGet, "/api/config/history?limit=-1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit: expected 400, got %d", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORSAndRequestIDHeaders(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodOptions, "/api/config", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS origin header")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Fatal("PATCH missing from allowed methods")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}
