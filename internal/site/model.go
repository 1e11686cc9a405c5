package site

// Link is a navigation target in a rendered fragment.
type Link struct {
	Label    string
	URL      string
	Active   bool
	Disabled bool
}

// Card is the summary tile of one item.
type Card struct {
	ID        string
	Title     string
	Subtitle  string
	Meta      string
	Body      string
	Image     string
	Fallback  string
	Badge     string
	Tags      []string
	MoreTags  int
	Links     []Link
	DetailURL string
}

// Pager is the "Page X of Y" control.
type Pager struct {
	Current int
	Total   int
	Label   string
	Prev    Link
	Next    Link
}

// Visible reports whether the pager should be drawn at all.
func (p Pager) Visible() bool { return p.Total > 1 }

// FacetGroup is one row of filter buttons.
type FacetGroup struct {
	Name    string
	Options []Link
}

// CollectionView is a paginated, filterable section body.
type CollectionView struct {
	Section  string
	Title    string
	Subtitle string
	Cards    []Card
	Facets   []FacetGroup
	Clear    *Link
	Matched  int
	Empty    string
	Pager    Pager
	Self     string
}

// CarouselView is a windowed section body.
type CarouselView struct {
	Section   string
	Title     string
	Subtitle  string
	Cards     []Card
	Prev      Link
	Next      Link
	Dots      []Link
	Navigable bool
	Self      string
}

// ListView shows every item at once.
type ListView struct {
	Section  string
	Title    string
	Subtitle string
	Cards    []Card
	Self     string
}

// Fragment pairs a template name with its data.
type Fragment struct {
	Template string
	Data     any
}

// List is a titled bullet list inside a detail view.
type List struct {
	Heading string
	Items   []string
}

// Person is a project participant or team member.
type Person struct {
	Name     string
	Initials string
	Role     string
	URL      string
}

// MediaView is the gallery of a detail view.
type MediaView struct {
	Type     string
	URL      string
	Fallback string
	Position string
	Prev     Link
	Next     Link
	Dots     []Link
	Multiple bool
}

// DetailView is the content of the overlay for one item.
type DetailView struct {
	Section  string
	ID       string
	Title    string
	Subtitle string
	Period   string
	Badge    string
	Image    string
	Fallback string
	Body     string
	Lists    []List
	Tags     []string
	Links    []Link
	People   []Person
	Media    *MediaView
	CloseURL string
}
