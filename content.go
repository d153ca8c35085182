package canvasmcp

// File is a file uploaded to a course.
type File struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	FolderID    int    `json:"folder_id,omitempty"`
}

// FileList wraps a course file listing.
type FileList struct {
	Files    []File    `json:"files"`
	Count    int       `json:"count"`
	Advisory *Advisory `json:"advisory,omitempty"`
}

// ModuleItem is one entry inside a module, in declared position order. Type
// is the Canvas item type: File, Page, Assignment, ExternalUrl, SubHeader,
// Discussion or Quiz.
type ModuleItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Position    int    `json:"position"`
	HTMLURL     string `json:"html_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// Module is a course content module with its embedded items.
type Module struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Position  int          `json:"position"`
	Published bool         `json:"published"`
	Items     []ModuleItem `json:"items"`
}

// ModuleList wraps a course module listing.
type ModuleList struct {
	Modules  []Module  `json:"modules"`
	Count    int       `json:"count"`
	Advisory *Advisory `json:"advisory,omitempty"`
}

// Page is a course wiki page. URL is the page slug used as its identifier.
// Body is only populated for the front page; listed pages omit it.
type Page struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	FrontPage bool   `json:"front_page"`
	Body      string `json:"body,omitempty"`
}

// PageList wraps a course page listing.
type PageList struct {
	Pages    []Page    `json:"pages"`
	Count    int       `json:"count"`
	Advisory *Advisory `json:"advisory,omitempty"`
}

// HomePage wraps a course front page lookup. Page is nil when the course has
// no custom home page.
type HomePage struct {
	Page     *Page     `json:"page,omitempty"`
	Advisory *Advisory `json:"advisory,omitempty"`
}

// Syllabus is a course's syllabus body. HasSyllabus is false when the course
// has no published syllabus, in which case Advisory explains alternatives.
type Syllabus struct {
	CourseID    int       `json:"course_id"`
	CourseName  string    `json:"course_name"`
	HasSyllabus bool      `json:"has_syllabus"`
	Body        string    `json:"body,omitempty"`
	Advisory    *Advisory `json:"advisory,omitempty"`
}
