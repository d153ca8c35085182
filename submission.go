package canvasmcp

// SubmissionComment is a comment left on a submission.
type SubmissionComment struct {
	Author    string `json:"author,omitempty"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Submission is the caller's own submission for one assignment. Submitted is
// derived: true for every workflow state except "unsubmitted".
type Submission struct {
	AssignmentID   int                 `json:"assignment_id"`
	AssignmentName string              `json:"assignment_name,omitempty"`
	WorkflowState  string              `json:"workflow_state"`
	Submitted      bool                `json:"submitted"`
	Score          *float64            `json:"score"`
	Grade          string              `json:"grade,omitempty"`
	SubmittedAt    string              `json:"submitted_at,omitempty"`
	Late           bool                `json:"late"`
	Missing        bool                `json:"missing"`
	Comments       []SubmissionComment `json:"comments,omitempty"`
}

// SubmissionResult wraps a single-submission lookup. Submission is nil when
// Advisory explains why nothing was returned.
type SubmissionResult struct {
	Submission *Submission `json:"submission,omitempty"`
	Advisory   *Advisory   `json:"advisory,omitempty"`
}

// AssignmentGrade is one row of a course's per-assignment grade report.
type AssignmentGrade struct {
	AssignmentID   int                 `json:"assignment_id"`
	AssignmentName string              `json:"assignment_name"`
	DueAt          string              `json:"due_at,omitempty"`
	PointsPossible float64             `json:"points_possible"`
	Score          *float64            `json:"score"`
	Grade          string              `json:"grade,omitempty"`
	WorkflowState  string              `json:"workflow_state"`
	Submitted      bool                `json:"submitted"`
	Late           bool                `json:"late"`
	Missing        bool                `json:"missing"`
	Comments       []SubmissionComment `json:"comments,omitempty"`
}

// CourseGrades is the caller's enrollment-level grade summary for one course.
type CourseGrades struct {
	CourseID     int       `json:"course_id"`
	CourseName   string    `json:"course_name,omitempty"`
	CurrentScore *float64  `json:"current_score"`
	CurrentGrade string    `json:"current_grade,omitempty"`
	FinalScore   *float64  `json:"final_score"`
	FinalGrade   string    `json:"final_grade,omitempty"`
	Advisory     *Advisory `json:"advisory,omitempty"`
}
