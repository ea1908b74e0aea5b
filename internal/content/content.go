// Package content is the typed access layer over the configuration store.
// It keeps a mutex-guarded in-memory copy of the document, loads it lazily
// with a fallback ladder (store, last-known-good, snapshot, compiled
// default), and writes mutations back through a debounced save.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"dreamholidays/api/internal/store"
)

// DefaultSaveDebounce is how long the service waits after the last mutation
// before persisting, so a burst of edits becomes one write.
const DefaultSaveDebounce = time.Second

type configStore interface {
	ReadAll(ctx context.Context) (store.Document, error)
	WriteAll(ctx context.Context, doc store.Document) error
}

// snapshotStore holds the last successfully persisted document somewhere
// outside this process. It is written after each durable save and read only
// while initializing.
type snapshotStore interface {
	Save(ctx context.Context, doc store.Document) error
	Load(ctx context.Context) (store.Document, error)
}

// changelog records one entry per durable write.
type changelog interface {
	Record(ctx context.Context, doc store.Document, message string) error
}

// Options carries the optional collaborators of the service.
type Options struct {
	Snapshot  snapshotStore
	Changelog changelog
	Debounce  time.Duration
	Logger    *log.Logger
}

// Service serializes all reads and mutations of the site content behind one
// mutex. Mutations update the in-memory copy immediately and schedule a
// debounced write-through; readers never wait on the filesystem once the
// document is loaded.
type Service struct {
	store     configStore
	snapshot  snapshotStore
	changelog changelog
	debounce  time.Duration
	logger    *log.Logger

	mu       sync.Mutex
	loaded   bool
	site     SiteContent
	lastGood store.Document
	nextID   map[string]int
	timer    *time.Timer
	dirty    bool

	// flushMu serializes write-throughs, so a Flush entered while the
	// debounce timer's persist is still in flight waits for it to land.
	flushMu sync.Mutex
}

func New(cs configStore, opts Options) *Service {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultSaveDebounce
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Service{
		store:     cs,
		snapshot:  opts.Snapshot,
		changelog: opts.Changelog,
		debounce:  opts.Debounce,
		logger:    opts.Logger,
		nextID:    make(map[string]int),
	}
}

// Initialize loads the document eagerly. Callers may skip it; every accessor
// loads lazily. It never fails: the ladder bottoms out at the compiled
// default.
func (s *Service) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
}

// Invalidate drops the in-memory copy so the next access reloads from the
// store. Called after the document is modified through the raw config API.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
}

// ensureLoaded populates s.site. Ladder: store, then the last-known-good
// copy this process persisted, then the external snapshot, then the
// compiled default. Must be called with s.mu held.
func (s *Service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	doc, err := s.store.ReadAll(ctx)
	if err == nil {
		site, convErr := fromDocument(doc)
		if convErr == nil {
			s.adopt(site, doc)
			return
		}
		err = convErr
	}
	s.logger.Printf(`{"msg":"content load from store failed","error":%q}`, err.Error())

	if s.lastGood != nil {
		if site, convErr := fromDocument(s.lastGood); convErr == nil {
			s.adopt(site, s.lastGood)
			return
		}
	}
	if s.snapshot != nil {
		if snap, snapErr := s.snapshot.Load(ctx); snapErr == nil {
			if site, convErr := fromDocument(snap); convErr == nil {
				s.logger.Printf(`{"msg":"content restored from snapshot"}`)
				s.adopt(site, snap)
				return
			}
		}
	}
	s.logger.Printf(`{"msg":"content falling back to compiled default"}`)
	s.adopt(DefaultContent(), nil)
}

func (s *Service) adopt(site SiteContent, doc store.Document) {
	s.site = site
	s.loaded = true
	if doc != nil {
		s.lastGood = doc.Clone()
	}
	// Id counters only ratchet up so ids are never reused within this
	// process, even when every record of a collection has been deleted.
	s.bumpNextID(SectionHeroSlides, maxSlideID(site.HeroSlides))
	s.bumpNextID(SectionPackages, maxPackageID(site.Packages))
	s.bumpNextID("testimonials.reviews", maxReviewID(site.Testimonials.Reviews))
	s.bumpNextID("gallery.images", maxImageID(site.Gallery.Images))
	s.bumpNextID("whyChoose.features", maxFeatureID(site.WhyChoose.Features))
	s.bumpNextID("social.instagram", maxPostID(site.Social.Posts.Instagram))
	s.bumpNextID("social.facebook", maxPostID(site.Social.Posts.Facebook))
	s.bumpNextID("social.twitter", maxPostID(site.Social.Posts.Twitter))
}

func (s *Service) bumpNextID(key string, currentMax int) {
	if s.nextID[key] <= currentMax {
		s.nextID[key] = currentMax + 1
	}
}

func (s *Service) allocID(key string) int {
	id := s.nextID[key]
	if id < 1 {
		id = 1
	}
	s.nextID[key] = id + 1
	return id
}

// scheduleSave arms the debounced write-through. Must be called with s.mu
// held, after the in-memory copy has been mutated.
func (s *Service) scheduleSave() {
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.Flush(context.Background()); err != nil {
			s.logger.Printf(`{"msg":"debounced content save failed","error":%q}`, err.Error())
		}
	})
}

// Flush persists a pending mutation immediately. Safe to call when nothing
// is pending. Called by the debounce timer and by main on shutdown; it
// returns only after any in-flight write has completed, so a shutdown
// Flush never races a timer-fired one.
func (s *Service) Flush(ctx context.Context) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	doc, err := s.site.document()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode content: %w", err)
	}
	s.dirty = false
	s.mu.Unlock()

	if err := s.store.WriteAll(ctx, doc); err != nil {
		// Keep serving the in-memory copy; the next mutation retries.
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.lastGood = doc.Clone()
	s.mu.Unlock()

	if s.snapshot != nil {
		if err := s.snapshot.Save(ctx, doc); err != nil {
			s.logger.Printf(`{"msg":"content snapshot save failed","error":%q}`, err.Error())
		}
	}
	if s.changelog != nil {
		if err := s.changelog.Record(ctx, doc, "content update"); err != nil {
			s.logger.Printf(`{"msg":"content changelog record failed","error":%q}`, err.Error())
		}
	}
	return nil
}

// UpdateSection applies a raw JSON patch to one section. Record sections
// merge field-by-field (absent fields keep their value); collection sections
// are replaced wholesale. Unknown names land in the passthrough bucket.
func (s *Service) UpdateSection(ctx context.Context, name string, data json.RawMessage) error {
	if name == "" || len(data) == 0 {
		return store.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	var err error
	switch name {
	case SectionHeroSlides:
		var slides []HeroSlide
		if err = json.Unmarshal(data, &slides); err == nil {
			s.site.HeroSlides = slides
			s.bumpNextID(SectionHeroSlides, maxSlideID(slides))
		}
	case SectionPackages:
		var pkgs []Package
		if err = json.Unmarshal(data, &pkgs); err == nil {
			s.site.Packages = pkgs
			s.bumpNextID(SectionPackages, maxPackageID(pkgs))
		}
	case SectionCompany:
		err = json.Unmarshal(data, &s.site.Company)
	case SectionStats:
		err = json.Unmarshal(data, &s.site.Stats)
	case SectionTestimonials:
		err = json.Unmarshal(data, &s.site.Testimonials)
	case SectionGallery:
		err = json.Unmarshal(data, &s.site.Gallery)
	case SectionWhyChoose:
		err = json.Unmarshal(data, &s.site.WhyChoose)
	case SectionContact:
		err = json.Unmarshal(data, &s.site.Contact)
	case SectionSocial:
		err = json.Unmarshal(data, &s.site.Social)
	case SectionFooter:
		err = json.Unmarshal(data, &s.site.Footer)
	default:
		if !json.Valid(data) {
			err = fmt.Errorf("section %q: invalid JSON", name)
		} else {
			if s.site.Extra == nil {
				s.site.Extra = make(map[string]json.RawMessage)
			}
			buf := make(json.RawMessage, len(data))
			copy(buf, data)
			s.site.Extra[name] = buf
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
	}
	s.scheduleSave()
	return nil
}

// ToggleSectionVisibility flips the visible flag of a record section.
func (s *Service) ToggleSectionVisibility(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	switch name {
	case SectionCompany:
		s.site.Company.Visible = !s.site.Company.Visible
	case SectionStats:
		s.site.Stats.Visible = !s.site.Stats.Visible
	case SectionTestimonials:
		s.site.Testimonials.Visible = !s.site.Testimonials.Visible
	case SectionGallery:
		s.site.Gallery.Visible = !s.site.Gallery.Visible
	case SectionWhyChoose:
		s.site.WhyChoose.Visible = !s.site.WhyChoose.Visible
	case SectionContact:
		s.site.Contact.Visible = !s.site.Contact.Visible
	case SectionSocial:
		s.site.Social.Visible = !s.site.Social.Visible
	case SectionFooter:
		s.site.Footer.Visible = !s.site.Footer.Visible
	default:
		return fmt.Errorf("%w: section %q has no visibility flag", store.ErrInvalidInput, name)
	}
	s.scheduleSave()
	return nil
}

// GetSection returns the named section's current value as raw JSON. Absent
// known sections resolve to their zero-value shape; names this build does
// not know resolve to the passthrough bucket, or JSON null.
func (s *Service) GetSection(ctx context.Context, name string) json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	var value any
	switch name {
	case SectionHeroSlides:
		value = s.site.HeroSlides
	case SectionPackages:
		value = s.site.Packages
	case SectionCompany:
		value = s.site.Company
	case SectionStats:
		value = s.site.Stats
	case SectionTestimonials:
		value = s.site.Testimonials
	case SectionGallery:
		value = s.site.Gallery
	case SectionWhyChoose:
		value = s.site.WhyChoose
	case SectionContact:
		value = s.site.Contact
	case SectionSocial:
		value = s.site.Social
	case SectionFooter:
		value = s.site.Footer
	default:
		if raw, ok := s.site.Extra[name]; ok {
			buf := make(json.RawMessage, len(raw))
			copy(buf, raw)
			return buf
		}
		return json.RawMessage("null")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}

// ---- typed getters -------------------------------------------------------

func (s *Service) HeroSlides(ctx context.Context) []HeroSlide {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return copySlice(s.site.HeroSlides)
}

// VisibleHeroSlides returns the slides the landing page renders, ordered by
// their order field ascending.
func (s *Service) VisibleHeroSlides(ctx context.Context) []HeroSlide {
	all := s.HeroSlides(ctx)
	out := make([]HeroSlide, 0, len(all))
	for _, slide := range all {
		if slide.Visible {
			out = append(out, slide)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Service) Packages(ctx context.Context) []Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return copySlice(s.site.Packages)
}

// FeaturedPackages returns packages that are both featured and active.
func (s *Service) FeaturedPackages(ctx context.Context) []Package {
	all := s.Packages(ctx)
	out := make([]Package, 0, len(all))
	for _, pkg := range all {
		if pkg.Featured && pkg.Status == PackageStatusActive {
			out = append(out, pkg)
		}
	}
	return out
}

// SearchPackages matches active packages whose name, location, or
// description contains the query, case-insensitively.
func (s *Service) SearchPackages(ctx context.Context, query string) []Package {
	q := strings.ToLower(query)
	all := s.Packages(ctx)
	out := make([]Package, 0, len(all))
	for _, pkg := range all {
		if pkg.Status != PackageStatusActive {
			continue
		}
		if strings.Contains(strings.ToLower(pkg.Name), q) ||
			strings.Contains(strings.ToLower(pkg.Location), q) ||
			strings.Contains(strings.ToLower(pkg.Description), q) {
			out = append(out, pkg)
		}
	}
	return out
}

func (s *Service) PackageByID(ctx context.Context, id int) (Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	for _, pkg := range s.site.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}

func (s *Service) Company(ctx context.Context) Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.site.Company
}

func (s *Service) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.site.Stats
}

func (s *Service) Testimonials(ctx context.Context) Testimonials {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	t := s.site.Testimonials
	t.Reviews = copySlice(t.Reviews)
	return t
}

func (s *Service) Gallery(ctx context.Context) Gallery {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	g := s.site.Gallery
	g.Images = copySlice(g.Images)
	return g
}

func (s *Service) WhyChoose(ctx context.Context) WhyChoose {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	w := s.site.WhyChoose
	w.Features = copySlice(w.Features)
	return w
}

func (s *Service) Contact(ctx context.Context) Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.site.Contact
}

func (s *Service) Social(ctx context.Context) Social {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	so := s.site.Social
	so.Platforms = copySlice(so.Platforms)
	so.Posts.Instagram = copySlice(so.Posts.Instagram)
	so.Posts.Facebook = copySlice(so.Posts.Facebook)
	so.Posts.Twitter = copySlice(so.Posts.Twitter)
	return so
}

func (s *Service) Footer(ctx context.Context) Footer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	f := s.site.Footer
	f.QuickLinks = copySlice(f.QuickLinks)
	f.Destinations = copySlice(f.Destinations)
	return f
}

// ---- hero slide mutators -------------------------------------------------

// AddHeroSlide assigns the next id and appends the slide at the end of the
// ordering. Mutators on missing ids are silent no-ops, matching the admin
// surface this layer serves.
func (s *Service) AddHeroSlide(ctx context.Context, slide HeroSlide) HeroSlide {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	slide.ID = s.allocID(SectionHeroSlides)
	slide.Order = len(s.site.HeroSlides) + 1
	s.site.HeroSlides = append(s.site.HeroSlides, slide)
	s.scheduleSave()
	return slide
}

func (s *Service) UpdateHeroSlide(ctx context.Context, slide HeroSlide) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.HeroSlides {
		if s.site.HeroSlides[i].ID == slide.ID {
			s.site.HeroSlides[i] = slide
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) DeleteHeroSlide(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	kept := s.site.HeroSlides[:0]
	for _, slide := range s.site.HeroSlides {
		if slide.ID != id {
			kept = append(kept, slide)
		}
	}
	if len(kept) != len(s.site.HeroSlides) {
		s.site.HeroSlides = kept
		s.scheduleSave()
	}
}

func (s *Service) ToggleHeroSlideVisibility(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.HeroSlides {
		if s.site.HeroSlides[i].ID == id {
			s.site.HeroSlides[i].Visible = !s.site.HeroSlides[i].Visible
			s.scheduleSave()
			return
		}
	}
}

// ReorderHeroSlides replaces the collection and rewrites order to position,
// so order values stay consistent with the given sequence.
func (s *Service) ReorderHeroSlides(ctx context.Context, slides []HeroSlide) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	out := copySlice(slides)
	for i := range out {
		out[i].Order = i + 1
	}
	s.site.HeroSlides = out
	s.bumpNextID(SectionHeroSlides, maxSlideID(out))
	s.scheduleSave()
}

// ---- package mutators ----------------------------------------------------

// AddPackage assigns the next id and defaults status to active when unset.
func (s *Service) AddPackage(ctx context.Context, pkg Package) Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	pkg.ID = s.allocID(SectionPackages)
	if pkg.Status == "" {
		pkg.Status = PackageStatusActive
	}
	s.site.Packages = append(s.site.Packages, pkg)
	s.scheduleSave()
	return pkg
}

func (s *Service) UpdatePackage(ctx context.Context, pkg Package) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.Packages {
		if s.site.Packages[i].ID == pkg.ID {
			s.site.Packages[i] = pkg
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) DeletePackage(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	kept := s.site.Packages[:0]
	for _, pkg := range s.site.Packages {
		if pkg.ID != id {
			kept = append(kept, pkg)
		}
	}
	if len(kept) != len(s.site.Packages) {
		s.site.Packages = kept
		s.scheduleSave()
	}
}

// TogglePackageStatus switches a package between active and inactive. Draft
// packages activate.
func (s *Service) TogglePackageStatus(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.Packages {
		if s.site.Packages[i].ID == id {
			if s.site.Packages[i].Status == PackageStatusActive {
				s.site.Packages[i].Status = PackageStatusInactive
			} else {
				s.site.Packages[i].Status = PackageStatusActive
			}
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) TogglePackageFeatured(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.Packages {
		if s.site.Packages[i].ID == id {
			s.site.Packages[i].Featured = !s.site.Packages[i].Featured
			s.scheduleSave()
			return
		}
	}
}

// ---- embedded collection mutators ---------------------------------------

func (s *Service) AddTestimonial(ctx context.Context, review Review) Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	review.ID = s.allocID("testimonials.reviews")
	s.site.Testimonials.Reviews = append(s.site.Testimonials.Reviews, review)
	s.scheduleSave()
	return review
}

func (s *Service) UpdateTestimonial(ctx context.Context, review Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.Testimonials.Reviews {
		if s.site.Testimonials.Reviews[i].ID == review.ID {
			s.site.Testimonials.Reviews[i] = review
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) DeleteTestimonial(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	kept := s.site.Testimonials.Reviews[:0]
	for _, review := range s.site.Testimonials.Reviews {
		if review.ID != id {
			kept = append(kept, review)
		}
	}
	if len(kept) != len(s.site.Testimonials.Reviews) {
		s.site.Testimonials.Reviews = kept
		s.scheduleSave()
	}
}

func (s *Service) AddGalleryImage(ctx context.Context, img GalleryImage) GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	img.ID = s.allocID("gallery.images")
	s.site.Gallery.Images = append(s.site.Gallery.Images, img)
	s.scheduleSave()
	return img
}

func (s *Service) UpdateGalleryImage(ctx context.Context, img GalleryImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.Gallery.Images {
		if s.site.Gallery.Images[i].ID == img.ID {
			s.site.Gallery.Images[i] = img
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) DeleteGalleryImage(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	kept := s.site.Gallery.Images[:0]
	for _, img := range s.site.Gallery.Images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	if len(kept) != len(s.site.Gallery.Images) {
		s.site.Gallery.Images = kept
		s.scheduleSave()
	}
}

func (s *Service) AddWhyChooseFeature(ctx context.Context, f Feature) Feature {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	f.ID = s.allocID("whyChoose.features")
	s.site.WhyChoose.Features = append(s.site.WhyChoose.Features, f)
	s.scheduleSave()
	return f
}

func (s *Service) UpdateWhyChooseFeature(ctx context.Context, f Feature) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.WhyChoose.Features {
		if s.site.WhyChoose.Features[i].ID == f.ID {
			s.site.WhyChoose.Features[i] = f
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) DeleteWhyChooseFeature(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	kept := s.site.WhyChoose.Features[:0]
	for _, f := range s.site.WhyChoose.Features {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) != len(s.site.WhyChoose.Features) {
		s.site.WhyChoose.Features = kept
		s.scheduleSave()
	}
}

// AddSocialPost appends a post under the named platform feed (instagram,
// facebook, or twitter).
func (s *Service) AddSocialPost(ctx context.Context, platform string, post SocialPost) (SocialPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	feed, err := s.socialFeed(platform)
	if err != nil {
		return SocialPost{}, err
	}
	post.ID = s.allocID("social." + strings.ToLower(platform))
	*feed = append(*feed, post)
	s.scheduleSave()
	return post, nil
}

func (s *Service) DeleteSocialPost(ctx context.Context, platform string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	feed, err := s.socialFeed(platform)
	if err != nil {
		return err
	}
	kept := (*feed)[:0]
	for _, post := range *feed {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	if len(kept) != len(*feed) {
		*feed = kept
		s.scheduleSave()
	}
	return nil
}

// UpdateSocialPlatform replaces the platform entry matched by name.
func (s *Service) UpdateSocialPlatform(ctx context.Context, platform SocialPlatform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i := range s.site.Social.Platforms {
		if strings.EqualFold(s.site.Social.Platforms[i].Name, platform.Name) {
			s.site.Social.Platforms[i] = platform
			s.scheduleSave()
			return
		}
	}
}

func (s *Service) socialFeed(platform string) (*[]SocialPost, error) {
	switch strings.ToLower(platform) {
	case "instagram":
		return &s.site.Social.Posts.Instagram, nil
	case "facebook":
		return &s.site.Social.Posts.Facebook, nil
	case "twitter":
		return &s.site.Social.Posts.Twitter, nil
	}
	return nil, fmt.Errorf("%w: unknown social platform %q", store.ErrInvalidInput, platform)
}

// copySlice returns a non-nil copy so callers always get a real collection,
// even for empty sections.
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func maxSlideID(items []HeroSlide) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func maxPackageID(items []Package) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func maxReviewID(items []Review) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func maxImageID(items []GalleryImage) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func maxFeatureID(items []Feature) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func maxPostID(items []SocialPost) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}
