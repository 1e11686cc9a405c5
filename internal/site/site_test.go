package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamudauposath/portfolio/internal/config"
	"github.com/pamudauposath/portfolio/internal/content"
	"github.com/pamudauposath/portfolio/internal/view"
)

func newTestSite(t *testing.T) *Site {
	t.Helper()
	d, err := content.Load()
	require.NoError(t, err)
	clock := func() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC) }
	return New(d, config.Default(), WithClock(clock))
}

func section(t *testing.T, s *Site, name string) Section {
	t.Helper()
	sec, ok := s.Section(name)
	require.True(t, ok, name)
	return sec
}

func cardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func TestStateKey(t *testing.T) {
	tests := []struct {
		st   State
		want string
	}{
		{State{}, "index"},
		{State{Page: 2}, "page-2"},
		{State{Start: 3}, "at-3"},
		{State{Selection: view.Selection{"type": {"team"}, "category": {"web", "cloud"}}, Page: 1}, "category-web.cloud_type-team_page-1"},
		{State{Selection: view.Selection{"kind": nil}, Page: 1}, "page-1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.st.Key())
	}
}

func TestParseState(t *testing.T) {
	st := ParseState("category-web.cloud_type-team_page-2.html")
	assert.Equal(t, view.Selection{"category": {"web", "cloud"}, "type": {"team"}}, st.Selection)
	assert.Equal(t, 2, st.Page)

	st = ParseState("at-4")
	assert.Equal(t, 4, st.Start)

	st = ParseState("junk_page-x_-_type-_at-")
	assert.Empty(t, st.Selection)
	assert.Equal(t, 0, st.Page)
	assert.Equal(t, 0, st.Start)

	assert.Equal(t, State{Selection: view.Selection{}}, ParseState("index"))
}

func TestProjects_DefaultView(t *testing.T) {
	s := newTestSite(t)
	sess := section(t, s, Projects).Open(State{})

	assert.Equal(t, []string{"11", "10", "9", "8", "7", "6"}, cardIDs(sess.Cards()))
	assert.Equal(t, "Page 1 of 2", sess.Status())

	v := sess.View().Data.(CollectionView)
	assert.True(t, v.Pager.Visible())
	assert.True(t, v.Pager.Prev.Disabled)
	assert.False(t, v.Pager.Next.Disabled)
	assert.Equal(t, "/sections/projects/page-2.html", v.Pager.Next.URL)
	assert.Equal(t, "/sections/projects/page-1.html", v.Pager.Prev.URL)
	assert.Nil(t, v.Clear)
	require.Len(t, v.Facets, 2)
	assert.Equal(t, "/sections/projects/type-team_page-1.html", v.Facets[0].Options[0].URL)
}

func TestProjects_Filters(t *testing.T) {
	s := newTestSite(t)
	sess := section(t, s, Projects).Open(State{Page: 2})

	sess.Toggle("category", "web")
	assert.Equal(t, 1, sess.State().Page)
	assert.Equal(t, []string{"11", "7", "3"}, cardIDs(sess.Cards()))

	sess.Toggle("type", "team")
	assert.Equal(t, []string{"7"}, cardIDs(sess.Cards()))

	v := sess.View().Data.(CollectionView)
	require.NotNil(t, v.Clear)
	assert.Equal(t, "Clear All (1)", v.Clear.Label)
	assert.Equal(t, "/sections/projects/page-1.html", v.Clear.URL)
	assert.False(t, v.Pager.Visible())

	sess.Toggle("type", "team")
	sess.Toggle("category", "bogus")
	assert.Equal(t, []string{"11", "7", "3"}, cardIDs(sess.Cards()))

	sess.Clear()
	assert.Len(t, sess.Cards(), 6)
}

func TestProjects_EmptyFilter(t *testing.T) {
	d, err := content.Load()
	require.NoError(t, err)
	d.Projects = d.Projects[:1]
	sec := section(t, New(d, config.Default()), Projects)

	sess := sec.Open(ParseState("category-web_page-3"))
	v := sess.View().Data.(CollectionView)
	assert.Empty(t, v.Cards)
	assert.Equal(t, 0, v.Matched)
	assert.Equal(t, "No projects match the selected filters.", v.Empty)
	assert.Equal(t, 1, v.Pager.Current)
	assert.Equal(t, 1, v.Pager.Total)
	require.NotNil(t, v.Clear)
	assert.Equal(t, "Clear All (0)", v.Clear.Label)

	sess.Toggle("category", "mobile")
	assert.Equal(t, []string{"1"}, cardIDs(sess.Cards()))
}

func TestExperience_AllButton(t *testing.T) {
	s := newTestSite(t)
	sess := section(t, s, Experience).Open(ParseState("type-leadership_page-1"))

	assert.Equal(t, []string{"1", "2", "7"}, cardIDs(sess.Cards()))

	v := sess.View().Data.(CollectionView)
	require.Len(t, v.Facets, 1)
	all := v.Facets[0].Options[0]
	assert.Equal(t, "All", all.Label)
	assert.False(t, all.Active)
	assert.Equal(t, "/sections/experience/page-1.html", all.URL)
	assert.True(t, v.Facets[0].Options[2].Active)
	assert.Nil(t, v.Clear)

	sess = section(t, s, Experience).Open(State{})
	assert.Equal(t, "Page 1 of 2", sess.Status())
	assert.True(t, sess.View().Data.(CollectionView).Facets[0].Options[0].Active)
}

func TestCertifications(t *testing.T) {
	s := newTestSite(t)
	sess := section(t, s, Certifications).Open(State{})
	assert.Equal(t, []string{"13", "11", "10", "9", "7", "6"}, cardIDs(sess.Cards()))

	sess.Toggle("kind", content.Publication)
	assert.Equal(t, []string{"10", "6"}, cardIDs(sess.Cards()))

	_, ok := section(t, s, Certifications).Detail("2")
	assert.False(t, ok)
}

func TestOpenSource_Wraps(t *testing.T) {
	cfg := config.Default()
	cfg.Sections.OpenSource.Window = 2
	d, err := content.Load()
	require.NoError(t, err)
	sec := section(t, New(d, cfg), OpenSource)

	v := sec.Open(State{}).View().Data.(CarouselView)
	assert.True(t, v.Navigable)
	assert.False(t, v.Prev.Disabled)
	assert.Equal(t, "/sections/opensource/at-1.html", v.Prev.URL)
	assert.Equal(t, "/sections/opensource/at-1.html", v.Next.URL)
	require.Len(t, v.Dots, 2)
	assert.True(t, v.Dots[0].Active)

	sess := sec.Open(State{Start: 1})
	sess.Next()
	assert.Equal(t, 0, sess.State().Start)
	assert.Equal(t, "1-2 of 3", sess.Status())
}

func TestAchievements_Clamps(t *testing.T) {
	s := newTestSite(t)
	sec := section(t, s, Achievements)

	sess := sec.Open(State{})
	assert.Equal(t, []string{"1", "3", "5"}, cardIDs(sess.Cards()))
	sess.Prev()
	assert.Equal(t, 0, sess.State().Start)

	v := sess.View().Data.(CarouselView)
	assert.True(t, v.Prev.Disabled)
	assert.False(t, v.Next.Disabled)
	assert.Len(t, v.Dots, 3)

	sess.JumpTo(99)
	assert.Equal(t, 2, sess.State().Start)
	sess.Next()
	assert.Equal(t, []string{"5", "8", "12"}, cardIDs(sess.Cards()))
	assert.True(t, sess.View().Data.(CarouselView).Next.Disabled)
	assert.Len(t, sec.States(), 3)
}

func TestEducation_ListAndDetail(t *testing.T) {
	s := newTestSite(t)
	sec := section(t, s, Education)
	sess := sec.Open(State{})

	cards := sess.Cards()
	require.Len(t, cards, 6)
	assert.Equal(t, "6", cards[0].ID)
	assert.Equal(t, "Ongoing", cards[0].Badge)
	// First two activities, then first two skills.
	assert.Equal(t, []string{"Badminton", "Gavel Club", "Java", "Python"}, cards[0].Tags)
	assert.Equal(t, 5, cards[0].MoreTags)
	assert.Equal(t, "/detail/education/6.html", cards[0].DetailURL)

	d, ok := sec.Detail("1")
	require.True(t, ok)
	assert.Equal(t, "Thurstan College", d.Title)
	assert.Equal(t, "/closed.html", d.CloseURL)
	assert.Equal(t, "list", sess.View().Template)
}

func TestProjects_DetailGallery(t *testing.T) {
	s := newTestSite(t)
	sec := section(t, s, Projects)

	d, ok := sec.Detail("2")
	require.True(t, ok)
	require.NotNil(t, d.Media)
	assert.Equal(t, "Featured", d.Badge)
	assert.Equal(t, "1 / 3", d.Media.Position)
	assert.Equal(t, "/projects/elephant-warning.jpg", d.Media.URL)
	assert.Equal(t, "/detail/projects/2.m2.html", d.Media.Prev.URL)
	assert.Equal(t, "/detail/projects/2.m1.html", d.Media.Next.URL)

	d, ok = sec.Detail("2.m2")
	require.True(t, ok)
	assert.Equal(t, "video", d.Media.Type)
	assert.Equal(t, "/detail/projects/2.html", d.Media.Next.URL)

	d, ok = sec.Detail("1")
	require.True(t, ok)
	assert.False(t, d.Media.Multiple)
	require.Len(t, d.People, 2)
	assert.Equal(t, "NP", d.People[1].Initials)

	_, ok = sec.Detail("404")
	assert.False(t, ok)
	assert.Contains(t, sec.DetailKeys(), "2.m2")
}

func TestStates_RoundTrip(t *testing.T) {
	s := newTestSite(t)
	for _, sec := range s.Sections() {
		seen := map[string]bool{}
		for _, st := range sec.States() {
			key := st.Key()
			assert.False(t, seen[key], "%s: duplicate state %s", sec.Name(), key)
			seen[key] = true

			got := sec.Open(ParseState(key)).State().Key()
			assert.Equal(t, key, got, sec.Name())
		}
		assert.NotEmpty(t, seen, sec.Name())
	}
}

func TestStates_LinksStayInside(t *testing.T) {
	s := newTestSite(t)
	sec := section(t, s, Projects)
	known := map[string]bool{}
	for _, st := range sec.States() {
		known[s.Links.Fragment(Projects, st)] = true
	}
	for _, st := range sec.States() {
		v := sec.Open(st).View().Data.(CollectionView)
		assert.True(t, known[v.Pager.Prev.URL], v.Pager.Prev.URL)
		assert.True(t, known[v.Pager.Next.URL], v.Pager.Next.URL)
		for _, g := range v.Facets {
			for _, o := range g.Options {
				assert.True(t, known[o.URL], o.URL)
			}
		}
	}
}

func TestPage(t *testing.T) {
	s := newTestSite(t)
	p := s.Page()

	assert.Equal(t, "Pamuda - Portfolio", p.SEO.Title)
	assert.Equal(t, 2026, p.Year)
	assert.Len(t, p.Sections, len(s.Sections()))
	assert.Equal(t, "#home", p.Nav[0].URL)
	assert.Equal(t, "#contact", p.Nav[len(p.Nav)-1].URL)
	assert.Equal(t, Stat{Value: "3+", Label: "Years Experience"}, p.Hero.Stats[0])
	assert.Equal(t, Stat{Value: "11+", Label: "Projects Completed"}, p.Hero.Stats[1])
	assert.LessOrEqual(t, len(p.Hero.Tech), 8)
	assert.Len(t, p.Contact.Social, 4)
}

func TestPage_SEO(t *testing.T) {
	seo := newTestSite(t).Page().SEO

	assert.Equal(t, "https://pamudauposath.github.io/portfolio/", seo.URL)
	assert.Equal(t, "https://pamudauposath.github.io/portfolio/og-image.jpg", seo.Image)
	assert.Equal(t, "Pamuda U. de A. Goonatilake", seo.Author)
	assert.Equal(t, "index, follow", seo.Robots)
	assert.Equal(t, "en_US", seo.Locale)
	assert.Equal(t, "@goonatilakeP", seo.TwitterCreator)
	assert.Equal(t, "#ff7300", seo.ThemeColor)

	p := seo.Person
	assert.Equal(t, "Person", p.Type)
	assert.Equal(t, seo.Image, p.Image)
	assert.Equal(t, "Full Stack Developer & Cloud Enthusiast", p.JobTitle)
	assert.Equal(t, "Colombo, Sri Lanka", p.Address.Locality)
	assert.Equal(t, []string{
		"https://github.com/PamudaUposath",
		"https://linkedin.com/in/pamuda-u-goonatilake",
		"https://twitter.com/goonatilakeP",
	}, p.SameAs)
}

func TestPage_SEOImageIgnoresBasePath(t *testing.T) {
	d, err := content.Load()
	require.NoError(t, err)
	cfg := config.Default()
	cfg.BasePath = "/portfolio/"

	seo := New(d, cfg).Page().SEO
	assert.Equal(t, "https://pamudauposath.github.io/portfolio/og-image.jpg", seo.Image)
}

func TestHandle(t *testing.T) {
	assert.Equal(t, "@goonatilakeP", handle("https://twitter.com/goonatilakeP"))
	assert.Equal(t, "@someone", handle("https://x.com/someone/"))
	assert.Equal(t, "", handle(""))
}

func TestLinker_BasePath(t *testing.T) {
	l := Linker{Base: "/portfolio/"}
	assert.Equal(t, "/portfolio/sections/skills/page-2.html", l.Fragment(Skills, State{Page: 2}))
	assert.Equal(t, "/portfolio/detail/projects/3.html", l.Detail(Projects, "3"))
	assert.Equal(t, "/portfolio/closed.html", l.Closed())
}

func TestClip(t *testing.T) {
	src := []string{"a", "b", "c", "d"}

	head, more := clip(src, 2)
	assert.Equal(t, []string{"a", "b"}, head)
	assert.Equal(t, 2, more)
	_ = append(head, "x")
	assert.Equal(t, "c", src[2])

	all, more := clip(src[:3], 5)
	assert.Equal(t, []string{"a", "b", "c"}, all)
	assert.Zero(t, more)
	_ = append(all, "y")
	assert.Equal(t, "d", src[3])
}
