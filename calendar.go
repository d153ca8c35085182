package canvasmcp

// CalendarEvent is a calendar event scoped to a course context. CourseID and
// CourseName are resolved from the event's context code during cross-course
// aggregation; CourseName falls back to "Unknown Course" when the context
// code does not match an active course.
type CalendarEvent struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	StartAt      string `json:"start_at,omitempty"`
	EndAt        string `json:"end_at,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	Description  string `json:"description,omitempty"`
	ContextCode  string `json:"context_code,omitempty"`
	CourseID     int    `json:"course_id,omitempty"`
	CourseName   string `json:"course_name,omitempty"`
}

// EventList wraps a calendar event listing.
type EventList struct {
	Events   []CalendarEvent `json:"events"`
	Count    int             `json:"count"`
	Advisory *Advisory       `json:"advisory,omitempty"`
}
