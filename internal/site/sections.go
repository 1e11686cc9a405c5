package site

import (
	"slices"
	"strings"

	"github.com/pamudauposath/portfolio/internal/config"
	"github.com/pamudauposath/portfolio/internal/content"
)

// Section names double as page anchors and URL segments.
const (
	Projects       = "projects"
	Experience     = "experience"
	Education      = "education"
	OpenSource     = "opensource"
	Achievements   = "achievements"
	Certifications = "certifications"
	Skills         = "skills"
)

const cardTags = 4

// reversed returns a copy of items, most recent first.
func reversed[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

func newProjects(d *content.Dataset, cfg config.Config, links Linker) Section {
	s := &paged[content.Project]{
		name:     Projects,
		title:    "Featured Projects",
		subtitle: "A collection of projects showcasing my skills in mobile development, cloud computing, IoT, and web applications.",
		empty:    "No projects match the selected filters.",
		items:    reversed(d.Projects),
		pageSize: cfg.Sections.Projects.PageSize,
		links:    links,
		specs: []facetSpec[content.Project]{
			{
				name:    "type",
				options: []option{{"team", "Team"}, {"individual", "Individual"}},
				value:   func(p content.Project) string { return strings.ToLower(p.ProjectType) },
			},
			{
				name:    "category",
				options: []option{{"mobile", "Mobile"}, {"web", "Web"}, {"cloud", "Cloud"}, {"iot", "IoT"}},
				multi:   true,
				value:   func(p content.Project) string { return strings.ToLower(p.Category) },
			},
		},
		id: func(p content.Project) string { return p.ID },
	}
	s.card = func(p content.Project) Card {
		tags, more := clip(p.Tech, cardTags)
		c := Card{
			ID:        p.ID,
			Title:     p.Title,
			Subtitle:  p.Category + " · " + p.ProjectType,
			Meta:      projectPeriod(p),
			Body:      p.ShortDescription,
			Image:     links.URL(p.Image),
			Fallback:  content.PlaceholderImage(p.Title),
			Tags:      tags,
			MoreTags:  more,
			DetailURL: links.Detail(Projects, p.ID),
		}
		if p.Highlight {
			c.Badge = "Featured"
		}
		return c
	}
	s.keys = func(p content.Project) []string {
		keys := []string{p.ID}
		for i := range p.Gallery {
			keys = append(keys, mediaKey(p.ID, i+1))
		}
		return keys
	}
	s.detail = func(p content.Project, position string) (DetailView, bool) {
		media := append([]content.Media{{Type: "image", URL: p.Image}}, p.Gallery...)
		d := DetailView{
			Section:  Projects,
			ID:       p.ID,
			Title:    p.Title,
			Subtitle: p.Category + " · " + p.ProjectType,
			Period:   projectPeriod(p),
			Body:     p.Description,
			Tags:     p.Tech,
			Fallback: content.PlaceholderImage(p.Title),
			Media:    gallery(links, Projects, p.ID, content.PlaceholderImage(p.Title), media, position),
			CloseURL: links.Closed(),
		}
		if p.Highlight {
			d.Badge = "Featured"
		}
		d.Links = appendLink(d.Links, "GitHub", p.GitHubURL)
		d.Links = appendLink(d.Links, "Live Demo", p.LiveURL)
		d.Links = appendLink(d.Links, "LinkedIn", p.LinkedInProjectURL)
		for _, person := range p.Participants {
			d.People = append(d.People, Person{
				Name:     person.Name,
				Initials: content.Initials(person.Name),
				Role:     person.Role,
				URL:      person.URL,
			})
		}
		return d, true
	}
	return s.init()
}

func projectPeriod(p content.Project) string {
	if p.Ongoing {
		return period(p.StartDate, "")
	}
	return period(p.StartDate, p.EndDate)
}

var experienceTypes = map[string]string{
	"work":       "Work",
	"leadership": "Leadership",
	"volunteer":  "Volunteer",
}

func newExperience(d *content.Dataset, cfg config.Config, links Linker) Section {
	s := &paged[content.Experience]{
		name:     Experience,
		title:    "Experience",
		subtitle: "Professional work, leadership roles and volunteering.",
		empty:    "No experience in this category yet.",
		items:    d.Experiences,
		pageSize: cfg.Sections.Experience.PageSize,
		links:    links,
		specs: []facetSpec[content.Experience]{{
			name:    "type",
			options: []option{{"work", "Work"}, {"leadership", "Leadership"}, {"volunteer", "Volunteer"}},
			all:     true,
			value:   func(e content.Experience) string { return e.Type },
		}},
		id: func(e content.Experience) string { return e.ID },
	}
	s.card = func(e content.Experience) Card {
		tags, more := clip(e.Skills, cardTags)
		return Card{
			ID:        e.ID,
			Title:     e.Title,
			Subtitle:  e.Organization,
			Meta:      period(e.StartDate, e.EndDate),
			Body:      e.Description,
			Image:     links.URL(e.Logo),
			Fallback:  content.PlaceholderImage(e.Organization),
			Badge:     experienceTypes[e.Type],
			Tags:      tags,
			MoreTags:  more,
			DetailURL: links.Detail(Experience, e.ID),
		}
	}
	s.detail = func(e content.Experience, _ string) (DetailView, bool) {
		d := DetailView{
			Section:  Experience,
			ID:       e.ID,
			Title:    e.Title,
			Subtitle: joinNonEmpty(" · ", e.Organization, e.Location),
			Period:   period(e.StartDate, e.EndDate),
			Badge:    experienceTypes[e.Type],
			Image:    links.URL(e.Logo),
			Fallback: content.PlaceholderImage(e.Organization),
			Body:     e.Description,
			Tags:     e.Skills,
			CloseURL: links.Closed(),
		}
		d.Lists = appendList(d.Lists, "Responsibilities", e.Responsibilities)
		return d, true
	}
	return s.init()
}

func newEducation(d *content.Dataset, links Linker) Section {
	return &listed[content.Education]{
		name:     Education,
		title:    "Education",
		subtitle: "Academic background and qualifications.",
		items:    reversed(d.Educations),
		links:    links,
		id:       func(e content.Education) string { return e.ID },
		card: func(e content.Education) Card {
			activities, moreActivities := clip(e.Activities, 2)
			skills, moreSkills := clip(e.Skills, 2)
			preview := append(slices.Clone(activities), skills...)
			more := moreActivities + moreSkills
			c := Card{
				ID:        e.ID,
				Title:     e.Institution,
				Subtitle:  e.Degree + " - " + e.Field,
				Meta:      period(e.StartDate, e.EndDate),
				Body:      e.Grade,
				Image:     links.URL(e.Logo),
				Fallback:  content.PlaceholderImage(e.Institution),
				Tags:      preview,
				MoreTags:  more,
				DetailURL: links.Detail(Education, e.ID),
			}
			if e.Ongoing() {
				c.Badge = "Ongoing"
			}
			return c
		},
		detail: func(e content.Education) DetailView {
			d := DetailView{
				Section:  Education,
				ID:       e.ID,
				Title:    e.Institution,
				Subtitle: e.Degree + " - " + e.Field,
				Period:   period(e.StartDate, e.EndDate),
				Image:    links.URL(e.Logo),
				Fallback: content.PlaceholderImage(e.Institution),
				Body:     e.Description,
				Tags:     e.Skills,
				CloseURL: links.Closed(),
			}
			if e.Ongoing() {
				d.Badge = "Ongoing"
			}
			if e.Grade != "" {
				d.Lists = appendList(d.Lists, "Grade", []string{e.Grade})
			}
			d.Lists = appendList(d.Lists, "Activities & Societies", e.Activities)
			return d
		},
	}
}

func newOpenSource(d *content.Dataset, cfg config.Config, links Linker) Section {
	return &windowed[content.Contribution]{
		name:     OpenSource,
		title:    "Open Source Contributions",
		subtitle: "Contributing to the global developer community through open source projects.",
		items:    d.Contributions,
		size:     cfg.Sections.OpenSource.Window,
		boundary: cfg.Sections.OpenSource.Policy(),
		links:    links,
		id:       func(c content.Contribution) string { return c.ID },
		card: func(c content.Contribution) Card {
			tags, more := clip(c.Tech, cardTags)
			return Card{
				ID:        c.ID,
				Title:     c.ProjectName,
				Subtitle:  c.Organization,
				Meta:      period(c.StartDate, c.EndDate),
				Body:      c.ShortDescription,
				Badge:     statusLabel(c.Status),
				Tags:      tags,
				MoreTags:  more,
				DetailURL: links.Detail(OpenSource, c.ID),
			}
		},
		detail: func(c content.Contribution) DetailView {
			d := DetailView{
				Section:  OpenSource,
				ID:       c.ID,
				Title:    c.ProjectName,
				Subtitle: joinNonEmpty(" · ", c.Organization, c.Role),
				Period:   period(c.StartDate, c.EndDate),
				Badge:    statusLabel(c.Status),
				Body:     c.Description,
				Tags:     c.Tech,
				CloseURL: links.Closed(),
			}
			d.Lists = appendList(d.Lists, "Contributions", c.Contributions)
			d.Links = appendLink(d.Links, "GitHub", c.GitHubURL)
			d.Links = appendLink(d.Links, "Website", c.WebsiteURL)
			return d
		},
	}
}

func statusLabel(status string) string {
	if status == "active" {
		return "Active"
	}
	return "Completed"
}

func newAchievements(d *content.Dataset, cfg config.Config, links Linker) Section {
	var awards []content.Achievement
	for _, a := range d.Achievements {
		if a.Category == content.Award {
			awards = append(awards, a)
		}
	}
	return &windowed[content.Achievement]{
		name:     Achievements,
		title:    "Achievements & Awards",
		subtitle: "Recognition and awards received for technical excellence, innovation, and competition wins.",
		items:    awards,
		size:     cfg.Sections.Achievements.Window,
		boundary: cfg.Sections.Achievements.Policy(),
		links:    links,
		id:       func(a content.Achievement) string { return a.ID },
		card: func(a content.Achievement) Card {
			return Card{
				ID:        a.ID,
				Title:     a.Title,
				Subtitle:  a.Issuer,
				Meta:      a.Date,
				Body:      a.Description,
				DetailURL: links.Detail(Achievements, a.ID),
			}
		},
		detail: func(a content.Achievement) DetailView {
			body := a.DetailedDescription
			if body == "" {
				body = a.Description
			}
			d := DetailView{
				Section:  Achievements,
				ID:       a.ID,
				Title:    a.Title,
				Subtitle: a.Issuer,
				Period:   a.Date,
				Image:    links.URL(a.Image),
				Fallback: content.PlaceholderImage(a.Title),
				Body:     body,
				CloseURL: links.Closed(),
			}
			d.Lists = appendList(d.Lists, "Highlights", a.Achievements)
			for _, m := range a.TeamMembers {
				d.People = append(d.People, Person{Name: m, Initials: content.Initials(m)})
			}
			d.Links = appendLink(d.Links, "LinkedIn Post", a.LinkedInPost)
			return d
		},
	}
}

func newCertifications(d *content.Dataset, cfg config.Config, links Linker) Section {
	var items []content.Achievement
	for _, a := range d.Achievements {
		if a.Category == content.Certification || a.Category == content.Publication {
			items = append(items, a)
		}
	}
	s := &paged[content.Achievement]{
		name:     Certifications,
		title:    "Certifications & Publications",
		subtitle: "Professional certifications and published work.",
		empty:    "Nothing here yet.",
		items:    reversed(items),
		pageSize: cfg.Sections.Certifications.PageSize,
		links:    links,
		specs: []facetSpec[content.Achievement]{{
			name:    "kind",
			options: []option{{content.Certification, "Certification"}, {content.Publication, "Publication"}},
			all:     true,
			value:   func(a content.Achievement) string { return a.Category },
		}},
		id: func(a content.Achievement) string { return a.ID },
	}
	s.card = func(a content.Achievement) Card {
		c := Card{
			ID:       a.ID,
			Title:    a.Title,
			Subtitle: a.Issuer,
			Meta:     a.Date,
			Body:     a.Description,
			Badge:    "Certification",
		}
		if a.Category == content.Publication {
			c.Badge = "Publication"
		}
		c.Links = appendLink(c.Links, "View Credential", a.CredentialURL)
		return c
	}
	return s.init()
}

func newSkills(d *content.Dataset, cfg config.Config, links Linker) Section {
	s := &paged[content.SkillCategory]{
		name:     Skills,
		title:    "Skills & Technologies",
		subtitle: "Languages, frameworks and tools I work with.",
		items:    d.Skills,
		pageSize: cfg.Sections.Skills.PageSize,
		links:    links,
		id:       func(c content.SkillCategory) string { return c.Name },
		card: func(c content.SkillCategory) Card {
			return Card{ID: c.Name, Title: c.Name, Tags: c.Skills}
		},
	}
	return s.init()
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
