// Package site binds the portfolio datasets to the view controllers and
// produces framework-neutral view models for every section.
package site

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pamudauposath/portfolio/internal/config"
	"github.com/pamudauposath/portfolio/internal/content"
)

// Site is the whole single-page portfolio.
type Site struct {
	Data     *content.Dataset
	Config   config.Config
	Links    Linker
	sections []Section
	now      func() time.Time
}

// Option customizes New.
type Option func(*Site)

// WithClock replaces time.Now, for the hero statistics.
func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

// New builds every section in page order.
func New(d *content.Dataset, cfg config.Config, opts ...Option) *Site {
	links := Linker{Base: cfg.BasePath}
	s := &Site{Data: d, Config: cfg, Links: links, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.sections = []Section{
		newProjects(d, cfg, links),
		newExperience(d, cfg, links),
		newEducation(d, links),
		newOpenSource(d, cfg, links),
		newAchievements(d, cfg, links),
		newCertifications(d, cfg, links),
		newSkills(d, cfg, links),
	}
	return s
}

// Sections returns the sections in page order.
func (s *Site) Sections() []Section { return s.sections }

// Section looks a section up by name.
func (s *Site) Section(name string) (Section, bool) {
	for _, sec := range s.sections {
		if sec.Name() == name {
			return sec, true
		}
	}
	return nil, false
}

// Stat is one hero figure.
type Stat struct {
	Value string
	Label string
}

// Hero is the top banner.
type Hero struct {
	Name    string
	Title   string
	Tagline string
	About   string
	Stats   []Stat
	Tech    []string
	CV      string
	Contact string
}

// SEO is the document head metadata. URL and Image are absolute, as
// link previews are fetched outside the page.
type SEO struct {
	Title          string
	Description    string
	Keywords       string
	Author         string
	Robots         string
	URL            string
	Image          string
	Type           string
	SiteName       string
	Locale         string
	TwitterCreator string
	ArticleAuthor  string
	ThemeColor     string
	Person         PersonSchema
}

// PersonSchema is the schema.org Person embedded in the head as JSON-LD.
type PersonSchema struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Image       string        `json:"image"`
	JobTitle    string        `json:"jobTitle"`
	Description string        `json:"description"`
	Email       string        `json:"email,omitempty"`
	Telephone   string        `json:"telephone,omitempty"`
	Address     PostalAddress `json:"address"`
	SameAs      []string      `json:"sameAs"`
}

// PostalAddress is the schema.org address of a PersonSchema.
type PostalAddress struct {
	Type     string `json:"@type"`
	Locality string `json:"addressLocality"`
}

const themeColor = "#ff7300"

// Contact is the contact section.
type Contact struct {
	Email    string
	Phone    string
	Location string
	Action   string
	Social   []Link
}

// Page is the full index document.
type Page struct {
	SEO        SEO
	Hero       Hero
	Nav        []Link
	Sections   []Fragment
	Contact    Contact
	Owner      string
	Year       int
	Base       string
	Stylesheet string
}

// Page renders the index in the initial state of every section.
func (s *Site) Page() Page {
	d := s.Data
	now := s.now()

	p := Page{
		SEO: s.seo(),
		Hero: Hero{
			Name:    d.Site.Name,
			Title:   d.Site.Title,
			Tagline: d.Site.Tagline,
			About:   d.Site.About,
			Stats:   s.Stats(),
			Tech:    content.TopTechStack(d.Projects, s.Config.TopTechLimit),
			CV:      s.Links.URL(d.Site.CVURL),
			Contact: "#contact",
		},
		Nav: []Link{{Label: "Home", URL: "#home"}},
		Contact: Contact{
			Email:    d.Site.Email,
			Phone:    d.Site.Phone,
			Location: d.Site.Location,
			Action:   d.Site.FormEndpoint,
		},
		Owner:      d.Site.Name,
		Year:       now.Year(),
		Base:       s.Config.BasePath,
		Stylesheet: s.Links.URL("static/site.css"),
	}
	for _, sec := range s.sections {
		p.Nav = append(p.Nav, Link{Label: sec.Title(), URL: "#" + sec.Name()})
		p.Sections = append(p.Sections, sec.Open(State{}).View())
	}
	p.Nav = append(p.Nav, Link{Label: "Contact", URL: "#contact"})

	p.Contact.Social = appendLink(p.Contact.Social, "GitHub", d.Site.Social.GitHub)
	p.Contact.Social = appendLink(p.Contact.Social, "LinkedIn", d.Site.Social.LinkedIn)
	p.Contact.Social = appendLink(p.Contact.Social, "WhatsApp", d.Site.Social.WhatsApp)
	p.Contact.Social = appendLink(p.Contact.Social, "Twitter", d.Site.Social.Twitter)
	return p
}

func (s *Site) seo() SEO {
	d := s.Data.Site
	image := content.AbsoluteURL(d.URL, d.Image)
	seo := SEO{
		Title:          d.ShortName + " - Portfolio",
		Description:    d.Tagline,
		Keywords:       strings.Join(d.Keywords, ", "),
		Author:         d.Name,
		Robots:         "index, follow",
		URL:            d.URL,
		Image:          image,
		Type:           "website",
		SiteName:       d.Name,
		Locale:         "en_US",
		TwitterCreator: handle(d.Social.Twitter),
		ArticleAuthor:  d.Social.LinkedIn,
		ThemeColor:     themeColor,
		Person: PersonSchema{
			Context:     "https://schema.org",
			Type:        "Person",
			Name:        d.Name,
			URL:         d.URL,
			Image:       image,
			JobTitle:    d.Title,
			Description: d.Tagline,
			Email:       d.Email,
			Telephone:   d.Phone,
			Address:     PostalAddress{Type: "PostalAddress", Locality: d.Location},
			SameAs:      []string{},
		},
	}
	for _, u := range []string{d.Social.GitHub, d.Social.LinkedIn, d.Social.Twitter} {
		if u != "" {
			seo.Person.SameAs = append(seo.Person.SameAs, u)
		}
	}
	return seo
}

// handle turns a profile URL into "@name".
func handle(profile string) string {
	name := path.Base(strings.TrimSuffix(profile, "/"))
	if profile == "" || name == "." || name == "/" {
		return ""
	}
	return "@" + strings.TrimPrefix(name, "@")
}

// Stats computes the hero figures from the datasets on every call.
func (s *Site) Stats() []Stat {
	d := s.Data
	return []Stat{
		{Value: content.YearsOfExperience(s.now(), s.Config.ExperienceStartYear), Label: "Years Experience"},
		{Value: content.ProjectsCompleted(d.Projects), Label: "Projects Completed"},
		{Value: strconv.Itoa(content.SkillCategoriesCount(d.Skills)), Label: "Skill Areas"},
		{Value: strconv.Itoa(content.TotalSkillsCount(d.Skills)), Label: "Skills"},
	}
}
