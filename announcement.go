package canvasmcp

// Announcement is a course announcement. CourseID is parsed from the
// announcement's context code.
type Announcement struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message,omitempty"`
	PostedAt string `json:"posted_at,omitempty"`
	Author   string `json:"author,omitempty"`
	CourseID int    `json:"course_id,omitempty"`
}

// AnnouncementList wraps an announcement listing, newest first.
type AnnouncementList struct {
	Announcements []Announcement `json:"announcements"`
	Count         int            `json:"count"`
	Advisory      *Advisory      `json:"advisory,omitempty"`
}
