// Package content holds the portfolio datasets and the helpers derived
// from them.
package content

// Site is the owner's profile and page metadata.
type Site struct {
	Name         string   `yaml:"name"`
	ShortName    string   `yaml:"short_name"`
	Title        string   `yaml:"title"`
	Tagline      string   `yaml:"tagline"`
	About        string   `yaml:"about"`
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone"`
	Location     string   `yaml:"location"`
	URL          string   `yaml:"url"`
	Image        string   `yaml:"image"`
	CVURL        string   `yaml:"cv_url"`
	FormEndpoint string   `yaml:"form_endpoint"`
	Social       Social   `yaml:"social"`
	Keywords     []string `yaml:"keywords"`
}

type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	WhatsApp string `yaml:"whatsapp"`
	Twitter  string `yaml:"twitter"`
}

type Media struct {
	Type string `yaml:"type"` // image or video
	URL  string `yaml:"url"`
}

type Participant struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
	URL  string `yaml:"url"`
}

type Project struct {
	ID                 string        `yaml:"id"`
	Title              string        `yaml:"title"`
	ShortDescription   string        `yaml:"short_description"`
	Description        string        `yaml:"description"`
	Category           string        `yaml:"category"`
	ProjectType        string        `yaml:"project_type"`
	Tech               []string      `yaml:"tech"`
	Image              string        `yaml:"image"`
	Gallery            []Media       `yaml:"gallery"`
	GitHubURL          string        `yaml:"github_url"`
	LiveURL            string        `yaml:"live_url"`
	LinkedInProjectURL string        `yaml:"linkedin_project_url"`
	Highlight          bool          `yaml:"highlight"`
	Ongoing            bool          `yaml:"ongoing"`
	StartDate          string        `yaml:"start_date"`
	EndDate            string        `yaml:"end_date"`
	Participants       []Participant `yaml:"participants"`
}

type Experience struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Organization     string   `yaml:"organization"`
	Type             string   `yaml:"type"` // work, leadership or volunteer
	StartDate        string   `yaml:"start_date"`
	EndDate          string   `yaml:"end_date"`
	Location         string   `yaml:"location"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	Skills           []string `yaml:"skills"`
	Logo             string   `yaml:"logo"`
}

type Education struct {
	ID          string   `yaml:"id"`
	Institution string   `yaml:"institution"`
	Degree      string   `yaml:"degree"`
	Field       string   `yaml:"field"`
	StartDate   string   `yaml:"start_date"`
	EndDate     string   `yaml:"end_date"`
	Grade       string   `yaml:"grade"`
	Description string   `yaml:"description"`
	Activities  []string `yaml:"activities"`
	Skills      []string `yaml:"skills"`
	Logo        string   `yaml:"logo"`
}

// Ongoing reports whether the programme has not finished yet.
func (e Education) Ongoing() bool { return e.EndDate == Present }

type Contribution struct {
	ID               string   `yaml:"id"`
	ProjectName      string   `yaml:"project_name"`
	Organization     string   `yaml:"organization"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	Role             string   `yaml:"role"`
	Contributions    []string `yaml:"contributions"`
	Tech             []string `yaml:"tech"`
	GitHubURL        string   `yaml:"github_url"`
	WebsiteURL       string   `yaml:"website_url"`
	Stars            int      `yaml:"stars"`
	Status           string   `yaml:"status"` // active or completed
	StartDate        string   `yaml:"start_date"`
	EndDate          string   `yaml:"end_date"`
}

// Achievement categories.
const (
	Award         = "award"
	Certification = "certification"
	Publication   = "publication"
)

type Achievement struct {
	ID                  string   `yaml:"id"`
	Title               string   `yaml:"title"`
	Issuer              string   `yaml:"issuer"`
	Date                string   `yaml:"date"`
	Category            string   `yaml:"category"`
	Description         string   `yaml:"description"`
	DetailedDescription string   `yaml:"detailed_description"`
	Achievements        []string `yaml:"achievements"`
	TeamMembers         []string `yaml:"team_members"`
	CredentialURL       string   `yaml:"credential_url"`
	LinkedInPost        string   `yaml:"linked_in_post"`
	Image               string   `yaml:"image"`
}

type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// Present marks an open-ended date range.
const Present = "Present"

// Dataset is every collection shown on the site.
type Dataset struct {
	Site          Site
	Projects      []Project
	Experiences   []Experience
	Educations    []Education
	Contributions []Contribution
	Achievements  []Achievement
	Skills        []SkillCategory
}
