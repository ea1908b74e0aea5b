package content

import (
	"encoding/json"
	"fmt"

	"dreamholidays/api/internal/store"
)

// emptyContent is the decode base for fromDocument: absent sections resolve
// to empty collections or blank records with visible set, so callers never
// see a nil-like section.
func emptyContent() SiteContent {
	return SiteContent{
		HeroSlides:   []HeroSlide{},
		Packages:     []Package{},
		Company:      Company{Visible: true},
		Stats:        Stats{Visible: true},
		Testimonials: Testimonials{Reviews: []Review{}, Visible: true},
		Gallery:      Gallery{Images: []GalleryImage{}, Visible: true},
		WhyChoose:    WhyChoose{Features: []Feature{}, Visible: true},
		Contact:      Contact{Visible: true},
		Social: Social{
			Platforms: []SocialPlatform{},
			Posts: SocialPosts{
				Instagram: []SocialPost{},
				Facebook:  []SocialPost{},
				Twitter:   []SocialPost{},
			},
			Visible: true,
		},
		Footer: Footer{QuickLinks: []string{}, Destinations: []string{}, Visible: true},
	}
}

// fromDocument decodes the raw stored document into the typed view. Unknown
// sections are kept verbatim in Extra.
func fromDocument(doc store.Document) (SiteContent, error) {
	site := emptyContent()
	for name, raw := range doc {
		var err error
		switch name {
		case SectionHeroSlides:
			err = json.Unmarshal(raw, &site.HeroSlides)
		case SectionPackages:
			err = json.Unmarshal(raw, &site.Packages)
		case SectionCompany:
			err = json.Unmarshal(raw, &site.Company)
		case SectionStats:
			err = json.Unmarshal(raw, &site.Stats)
		case SectionTestimonials:
			err = json.Unmarshal(raw, &site.Testimonials)
		case SectionGallery:
			err = json.Unmarshal(raw, &site.Gallery)
		case SectionWhyChoose:
			err = json.Unmarshal(raw, &site.WhyChoose)
		case SectionContact:
			err = json.Unmarshal(raw, &site.Contact)
		case SectionSocial:
			err = json.Unmarshal(raw, &site.Social)
		case SectionFooter:
			err = json.Unmarshal(raw, &site.Footer)
		default:
			if site.Extra == nil {
				site.Extra = make(map[string]json.RawMessage)
			}
			buf := make(json.RawMessage, len(raw))
			copy(buf, raw)
			site.Extra[name] = buf
		}
		if err != nil {
			return SiteContent{}, fmt.Errorf("decode section %q: %w", name, err)
		}
	}
	return site, nil
}

// document encodes the typed view back into the raw form the store persists.
func (c SiteContent) document() (store.Document, error) {
	doc := make(store.Document, 10+len(c.Extra))
	sections := []struct {
		name  string
		value any
	}{
		{SectionHeroSlides, c.HeroSlides},
		{SectionPackages, c.Packages},
		{SectionCompany, c.Company},
		{SectionStats, c.Stats},
		{SectionTestimonials, c.Testimonials},
		{SectionGallery, c.Gallery},
		{SectionWhyChoose, c.WhyChoose},
		{SectionContact, c.Contact},
		{SectionSocial, c.Social},
		{SectionFooter, c.Footer},
	}
	for _, section := range sections {
		raw, err := json.Marshal(section.value)
		if err != nil {
			return nil, fmt.Errorf("encode section %q: %w", section.name, err)
		}
		doc[section.name] = raw
	}
	for name, raw := range c.Extra {
		buf := make(json.RawMessage, len(raw))
		copy(buf, raw)
		doc[name] = buf
	}
	return doc, nil
}
