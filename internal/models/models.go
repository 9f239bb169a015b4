package models

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

type Project struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	LongDescription string            `json:"longDescription,omitempty"`
	ImageURL        string            `json:"imageUrl"`
	Tags            []string          `json:"tags"`
	Metrics         map[string]string `json:"metrics"`
	Date            string            `json:"date"`
	Featured        bool              `json:"featured"`
	OrderIndex      int               `json:"orderIndex"`
	Status          string            `json:"status"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

type CaseStudy struct {
	ID         string            `json:"id"`
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle,omitempty"`
	Client     string            `json:"client,omitempty"`
	Industry   string            `json:"industry,omitempty"`
	Role       string            `json:"role,omitempty"`
	CoverImage string            `json:"coverImage"`
	Thumbnail  string            `json:"thumbnail,omitempty"`
	Context    string            `json:"context,omitempty"`
	Challenge  string            `json:"challenge,omitempty"`
	Approach   string            `json:"approach,omitempty"`
	Solution   string            `json:"solution,omitempty"`
	Outcome    string            `json:"outcome,omitempty"`
	Metrics    map[string]string `json:"metrics"`
	Timeline   string            `json:"timeline,omitempty"`
	Tools      []string          `json:"tools"`
	PDFURL     string            `json:"pdfUrl,omitempty"`
	Featured   bool              `json:"featured"`
	OrderIndex int               `json:"orderIndex"`
	Status     string            `json:"status"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}

type Achievement struct {
	Text   string `json:"text"`
	Metric string `json:"metric,omitempty"`
}

type LeadershipPosition struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Organization string        `json:"organization"`
	Type         string        `json:"type"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate,omitempty"`
	Current      bool          `json:"current"`
	Description  string        `json:"description"`
	Achievements []Achievement `json:"achievements"`
	OrderIndex   int           `json:"orderIndex"`
	CreatedAt    string        `json:"createdAt"`
}

type ContactSubmission struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// AdminUser is the singleton credential record in admin.json. Unlike the
// content types it is persisted as a single JSON object, not an array.
type AdminUser struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
}
