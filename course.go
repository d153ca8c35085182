package canvasmcp

// Teacher identifies a course teacher.
type Teacher struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Course is the flattened course record returned by ListCourses.
type Course struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	CourseCode     string `json:"course_code"`
	EnrollmentTerm string `json:"enrollment_term,omitempty"`
	TotalStudents  int    `json:"total_students"`
	WorkflowState  string `json:"workflow_state"`
	DefaultView    string `json:"default_view,omitempty"`
}

// CourseDetail extends Course with the fields only fetched for a single
// course. NavigationHint suggests which tool to call next based on the
// course's default view.
type CourseDetail struct {
	Course
	StartAt        string    `json:"start_at,omitempty"`
	EndAt          string    `json:"end_at,omitempty"`
	PublicSyllabus bool      `json:"public_syllabus"`
	SyllabusBody   string    `json:"syllabus_body,omitempty"`
	Teachers       []Teacher `json:"teachers"`
	EnabledTabs    []string  `json:"enabled_tabs"`
	NavigationHint string    `json:"navigation_hint"`
}
