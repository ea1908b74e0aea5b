package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dreamholidays/api/internal/config"
	"dreamholidays/api/internal/content"
	"dreamholidays/api/internal/history"
	"dreamholidays/api/internal/store"
	"dreamholidays/api/internal/upload"
)

type configStore interface {
	ReadAll(ctx context.Context) (store.Document, error)
	WriteAll(ctx context.Context, doc store.Document) error
	WriteSection(ctx context.Context, name string, value json.RawMessage) (store.Document, error)
	DeleteSection(ctx context.Context, name string) (store.Document, error)
	Ping(ctx context.Context) error
}

// contentViews is the slice of the content layer the public read endpoints
// need. Invalidate keeps the cache coherent with raw config writes.
type contentViews interface {
	VisibleHeroSlides(ctx context.Context) []content.HeroSlide
	FeaturedPackages(ctx context.Context) []content.Package
	SearchPackages(ctx context.Context, query string) []content.Package
	PackageByID(ctx context.Context, id int) (content.Package, bool)
	Invalidate()
}

type uploader interface {
	Store(ctx context.Context, originalName, folder string, data []byte) (upload.Result, error)
}

// changelog is nil when SITE_HISTORY_DIR is unset.
type changelog interface {
	History(ctx context.Context, limit int) ([]history.CommitInfo, error)
	GetByHash(ctx context.Context, hash string) (store.Document, history.CommitInfo, error)
}

type Service struct {
	cfg       config.Config
	store     configStore
	content   contentViews
	uploads   uploader
	changelog changelog
}

func New(cfg config.Config, cs configStore, views contentViews, uploads uploader, log changelog) *Service {
	return &Service{
		cfg:       cfg,
		store:     cs,
		content:   views,
		uploads:   uploads,
		changelog: log,
	}
}

// GetConfig returns the full stored document.
func (s *Service) GetConfig(ctx context.Context) (store.Document, error) {
	return s.store.ReadAll(ctx)
}

// ReplaceConfig overwrites the whole document and returns what was
// persisted. The payload must be a JSON object keyed by section name.
func (s *Service) ReplaceConfig(ctx context.Context, data json.RawMessage) (store.Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data provided", store.ErrInvalidInput)
	}
	var doc store.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: config must be a JSON object", store.ErrInvalidInput)
	}
	if doc == nil {
		doc = store.Document{}
	}
	if err := s.store.WriteAll(ctx, doc); err != nil {
		return nil, err
	}
	s.content.Invalidate()
	return doc, nil
}

// PatchSection replaces one section and returns the updated document.
func (s *Service) PatchSection(ctx context.Context, section string, data json.RawMessage) (store.Document, error) {
	doc, err := s.store.WriteSection(ctx, section, data)
	if err != nil {
		return nil, err
	}
	s.content.Invalidate()
	return doc, nil
}

// RemoveSection deletes one section and returns the document without it.
func (s *Service) RemoveSection(ctx context.Context, section string) (store.Document, error) {
	doc, err := s.store.DeleteSection(ctx, section)
	if err != nil {
		return nil, err
	}
	s.content.Invalidate()
	return doc, nil
}

func (s *Service) Upload(ctx context.Context, originalName, folder string, data []byte) (upload.Result, error) {
	return s.uploads.Store(ctx, originalName, folder, data)
}

func (s *Service) History(ctx context.Context, limit int) ([]history.CommitInfo, error) {
	if s.changelog == nil {
		return nil, domainError(http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "Config history not configured", nil)
	}
	return s.changelog.History(ctx, limit)
}

func (s *Service) HistoryEntry(ctx context.Context, hash string) (store.Document, history.CommitInfo, error) {
	if s.changelog == nil {
		return nil, history.CommitInfo{}, domainError(http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "Config history not configured", nil)
	}
	doc, info, err := s.changelog.GetByHash(ctx, hash)
	if err != nil {
		return nil, history.CommitInfo{}, domainError(http.StatusNotFound, "NOT_FOUND", "Commit not found", nil)
	}
	return doc, info, nil
}

func (s *Service) VisibleHeroSlides(ctx context.Context) []content.HeroSlide {
	return s.content.VisibleHeroSlides(ctx)
}

func (s *Service) FeaturedPackages(ctx context.Context) []content.Package {
	return s.content.FeaturedPackages(ctx)
}

func (s *Service) SearchPackages(ctx context.Context, query string) []content.Package {
	return s.content.SearchPackages(ctx, query)
}

func (s *Service) PackageByID(ctx context.Context, id int) (content.Package, bool) {
	return s.content.PackageByID(ctx, id)
}

// Ping reports store reachability for the readiness probe.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
