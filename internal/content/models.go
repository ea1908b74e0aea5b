package content

import "encoding/json"

// Section names of the configuration document. Collection-shaped sections
// hold lists of identifiable records; the rest are single records with a
// visibility flag.
const (
	SectionHeroSlides   = "heroSlides"
	SectionPackages     = "packages"
	SectionCompany      = "company"
	SectionStats        = "stats"
	SectionTestimonials = "testimonials"
	SectionGallery      = "gallery"
	SectionWhyChoose    = "whyChoose"
	SectionContact      = "contact"
	SectionSocial       = "social"
	SectionFooter       = "footer"
)

// Package status values used as the display filter for packages.
const (
	PackageStatusActive   = "active"
	PackageStatusInactive = "inactive"
	PackageStatusDraft    = "draft"
)

type HeroSlide struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
	Gradient        string `json:"gradient"`
	Visible         bool   `json:"visible"`
	Order           int    `json:"order"`
}

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Package struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"originalPrice"`
	Duration      string         `json:"duration"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	MaxPeople     int            `json:"maxPeople"`
	Image         string         `json:"image"`
	Images        []string       `json:"images"`
	Description   string         `json:"description"`
	Highlights    []string       `json:"highlights"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Included      []string       `json:"included"`
	NotIncluded   []string       `json:"notIncluded"`
	Featured      bool           `json:"featured"`
	Category      string         `json:"category"`
	Status        string         `json:"status"`
}

type Company struct {
	Name           string `json:"name"`
	Logo           string `json:"logo"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondaryPhone"`
	Address        string `json:"address"`
	Visible        bool   `json:"visible"`
}

type Stats struct {
	HappyCustomers     int  `json:"happyCustomers"`
	DestinationsServed int  `json:"destinationsServed"`
	YearsExperience    int  `json:"yearsExperience"`
	ToursCompleted     int  `json:"toursCompleted"`
	Visible            bool `json:"visible"`
}

type Review struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Image    string `json:"image"`
}

type Testimonials struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Reviews  []Review `json:"reviews"`
	Visible  bool     `json:"visible"`
}

type GalleryImage struct {
	ID  int    `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type Gallery struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Images   []GalleryImage `json:"images"`
	Visible  bool           `json:"visible"`
}

type Feature struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WhyChoose struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Features []Feature `json:"features"`
	Visible  bool      `json:"visible"`
}

type Contact struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Visible  bool   `json:"visible"`
}

type SocialPlatform struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	Followers string `json:"followers"`
}

type SocialPost struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Caption  string `json:"caption"`
	Image    string `json:"image"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
	Retweets int    `json:"retweets"`
}

type SocialPosts struct {
	Instagram []SocialPost `json:"instagram"`
	Facebook  []SocialPost `json:"facebook"`
	Twitter   []SocialPost `json:"twitter"`
}

type Social struct {
	Title     string           `json:"title"`
	Subtitle  string           `json:"subtitle"`
	Platforms []SocialPlatform `json:"platforms"`
	Posts     SocialPosts      `json:"posts"`
	Visible   bool             `json:"visible"`
}

type Footer struct {
	Logo         string   `json:"logo"`
	About        string   `json:"about"`
	QuickLinks   []string `json:"quickLinks"`
	Destinations []string `json:"destinations"`
	Copyright    string   `json:"copyright"`
	Visible      bool     `json:"visible"`
}

// SiteContent is the typed view of the configuration document. Extra keeps
// sections this build does not know about so hand-edited documents survive
// round-trips untouched.
type SiteContent struct {
	HeroSlides   []HeroSlide
	Packages     []Package
	Company      Company
	Stats        Stats
	Testimonials Testimonials
	Gallery      Gallery
	WhyChoose    WhyChoose
	Contact      Contact
	Social       Social
	Footer       Footer
	Extra        map[string]json.RawMessage
}
