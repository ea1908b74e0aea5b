package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dreamholidays/api/internal/store"
)

// maxUploadBytes caps multipart uploads; marketing images stay well under it.
const maxUploadBytes = 32 << 20

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ready"
		statusCode := http.StatusOK
		checks := map[string]any{
			"store": map[string]any{"status": "ok"},
		}

		if err := s.service.Ping(ctx); err != nil {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			checks["store"] = map[string]any{
				"status": "error",
				"error":  err.Error(),
			}
		}

		writeJSON(w, statusCode, map[string]any{
			"ok":     status == "ready",
			"status": status,
			"checks": checks,
		})
		return
	}

	if r.URL.Path == "/api/config" {
		switch r.Method {
		case http.MethodGet:
			s.handleGetConfig(w, r)
		case http.MethodPost, http.MethodPut:
			s.handleReplaceConfig(w, r)
		case http.MethodPatch:
			s.handlePatchConfig(w, r)
		case http.MethodDelete:
			s.handleDeleteSection(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		}
		return
	}

	parts := splitPath(r.URL.Path)

	// /api/config/history and /api/config/history/{hash}
	if r.Method == http.MethodGet && len(parts) >= 3 && parts[0] == "api" && parts[1] == "config" && parts[2] == "history" {
		if len(parts) == 3 {
			s.handleHistory(w, r)
			return
		}
		if len(parts) == 4 {
			s.handleHistoryEntry(w, r, parts[3])
			return
		}
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/upload" {
		s.handleUpload(w, r)
		return
	}

	if r.Method == http.MethodGet && len(parts) >= 2 && parts[0] == "api" && parts[1] == "content" {
		if len(parts) == 3 && parts[2] == "hero-slides" {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": s.service.VisibleHeroSlides(r.Context())})
			return
		}
		if len(parts) == 4 && parts[2] == "packages" && parts[3] == "featured" {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": s.service.FeaturedPackages(r.Context())})
			return
		}
		if len(parts) == 4 && parts[2] == "packages" && parts[3] == "search" {
			query := r.URL.Query().Get("q")
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": s.service.SearchPackages(r.Context(), query)})
			return
		}
		if len(parts) == 4 && parts[2] == "packages" {
			id, err := strconv.Atoi(parts[3])
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Package id must be an integer", nil)
				return
			}
			pkg, ok := s.service.PackageByID(r.Context(), id)
			if !ok {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Package not found", nil)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": pkg})
			return
		}
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

func (s *HTTPServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	doc, err := s.service.GetConfig(r.Context())
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": doc})
}

func (s *HTTPServer) handleReplaceConfig(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	doc, err := s.service.ReplaceConfig(r.Context(), body.Data)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Config file updated successfully",
		"data":    doc,
	})
}

func (s *HTTPServer) handlePatchConfig(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Section string          `json:"section"`
		Data    json.RawMessage `json:"data"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	if body.Section == "" || len(body.Data) == 0 {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Section and data are required", nil)
		return
	}
	doc, err := s.service.PatchSection(r.Context(), body.Section, body.Data)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Section %q updated successfully", body.Section),
		"data":    doc,
	})
}

func (s *HTTPServer) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Section string `json:"section"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	if body.Section == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Section is required", nil)
		return
	}
	doc, err := s.service.RemoveSection(r.Context(), body.Section)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Section %q deleted successfully", body.Section),
		"data":    doc,
	})
}

func (s *HTTPServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid multipart form", nil)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "No file uploaded", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Failed to read upload", nil)
		return
	}

	folder := r.FormValue("folder")
	result, err := s.service.Upload(r.Context(), header.Filename, folder, data)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"url":      result.URL,
		"path":     result.URL,
		"filename": result.Filename,
	})
}

func (s *HTTPServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}
	items, err := s.service.History(r.Context(), limit)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": items})
}

func (s *HTTPServer) handleHistoryEntry(w http.ResponseWriter, r *http.Request, hash string) {
	doc, info, err := s.service.HistoryEntry(r.Context(), hash)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "commit": info, "data": doc})
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func randomRequestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
	header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
	header.Set("Cache-Control", "no-store")
	header.Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func mapError(err error) (status int, code, message string, details any) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details
	}
	if errors.Is(err, store.ErrSectionNotFound) {
		return http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found", nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound, "NOT_FOUND", "Config file not found", nil
	}
	if errors.Is(err, store.ErrInvalidInput) {
		return http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil
	}
	if errors.Is(err, store.ErrStorage) {
		return http.StatusInternalServerError, "STORAGE_ERROR", "Storage error", nil
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Server error", nil
}
