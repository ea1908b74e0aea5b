// Package upload relays admin image uploads onto the public asset tree.
// Files land under <public-root>/<folder>/ with a millisecond-timestamp
// prefix, so the returned URL is unique and the original name stays legible.
package upload

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"dreamholidays/api/internal/store"
)

// DefaultFolder is used when the request does not name a target folder.
const DefaultFolder = "uploads"

// Result describes a stored upload. URL is the site-relative path the
// rendering layer embeds.
type Result struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// mirror pushes a copy of each upload to object storage. Mirror failures are
// logged, never fatal: the local file is the source of truth.
type mirror interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) error
}

// Relay writes uploads below the public root.
type Relay struct {
	publicDir string
	mirror    mirror
	logger    *log.Logger
	now       func() time.Time
}

type Option func(*Relay)

func WithMirror(m mirror) Option {
	return func(r *Relay) { r.mirror = m }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Relay) { r.logger = l }
}

func New(publicDir string, opts ...Option) *Relay {
	r := &Relay{
		publicDir: publicDir,
		logger:    log.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store writes data as <ms-timestamp>_<sanitized-name> inside folder,
// creating the folder when needed. The folder defaults when empty and must
// not escape the public root.
func (r *Relay) Store(ctx context.Context, originalName, folder string, data []byte) (Result, error) {
	if originalName == "" || len(data) == 0 {
		return Result{}, fmt.Errorf("%w: no file provided", store.ErrInvalidInput)
	}
	if folder == "" {
		folder = DefaultFolder
	}
	if !safeFolder(folder) {
		return Result{}, fmt.Errorf("%w: invalid folder %q", store.ErrInvalidInput, folder)
	}

	filename := fmt.Sprintf("%d_%s", r.now().UnixMilli(), sanitizeName(originalName))
	dir := filepath.Join(r.publicDir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: create upload dir: %v", store.ErrStorage, err)
	}

	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: write upload: %v", store.ErrStorage, err)
	}

	if r.mirror != nil {
		objectName := path.Join(folder, filename)
		if err := r.mirror.Put(ctx, objectName, data, contentTypeFor(filename)); err != nil {
			r.logger.Printf(`{"msg":"upload mirror failed","object":%q,"error":%q}`, objectName, err.Error())
		}
	}

	return Result{
		URL:      "/" + path.Join(folder, filename),
		Path:     fullPath,
		Filename: filename,
	}, nil
}

// sanitizeName keeps letters, digits, dots and hyphens; everything else
// becomes an underscore.
func sanitizeName(name string) string {
	out := []byte(name)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// safeFolder rejects folder values that would climb out of the public root.
func safeFolder(folder string) bool {
	if strings.HasPrefix(folder, "/") || strings.Contains(folder, "\\") {
		return false
	}
	for _, part := range strings.Split(folder, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
