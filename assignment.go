package canvasmcp

// Assignment is the flattened assignment record for one course. DueAt is the
// raw ISO-8601 timestamp from Canvas, empty when no due date is set.
type Assignment struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DueAt           string   `json:"due_at,omitempty"`
	PointsPossible  float64  `json:"points_possible"`
	SubmissionTypes []string `json:"submission_types,omitempty"`
	HasSubmitted    bool     `json:"has_submitted_submissions"`
	WorkflowState   string   `json:"workflow_state"`
	HTMLURL         string   `json:"html_url"`
}

// UpcomingAssignment is an assignment with a future due date, annotated with
// its course for cross-course aggregation.
type UpcomingAssignment struct {
	CourseID       int     `json:"course_id"`
	CourseName     string  `json:"course_name"`
	CourseCode     string  `json:"course_code"`
	AssignmentID   int     `json:"assignment_id"`
	AssignmentName string  `json:"assignment_name"`
	DueAt          string  `json:"due_at"`
	PointsPossible float64 `json:"points_possible"`
	HTMLURL        string  `json:"html_url"`
}
