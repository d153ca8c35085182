package canvas

import (
	"context"
	"net/url"

	"github.com/aviklund/canvasmcp"
)

// Upstream JSON mirrors. Only the fields the shaping layer reads are
// declared; everything else in the payload is ignored.

type termJSON struct {
	Name string `json:"name"`
}

type teacherJSON struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
}

type courseJSON struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	CourseCode     string        `json:"course_code"`
	EnrollmentTerm *termJSON     `json:"enrollment_term"`
	TotalStudents  int           `json:"total_students"`
	WorkflowState  string        `json:"workflow_state"`
	DefaultView    string        `json:"default_view"`
	StartAt        string        `json:"start_at"`
	EndAt          string        `json:"end_at"`
	PublicSyllabus bool          `json:"public_syllabus"`
	SyllabusBody   string        `json:"syllabus_body"`
	Teachers       []teacherJSON `json:"teachers"`
}

type tabJSON struct {
	Label  string `json:"label"`
	Hidden bool   `json:"hidden"`
}

func (cj courseJSON) flatten() canvasmcp.Course {
	course := canvasmcp.Course{
		ID:            cj.ID,
		Name:          cj.Name,
		CourseCode:    cj.CourseCode,
		TotalStudents: cj.TotalStudents,
		WorkflowState: cj.WorkflowState,
		DefaultView:   cj.DefaultView,
	}
	if cj.EnrollmentTerm != nil {
		course.EnrollmentTerm = cj.EnrollmentTerm.Name
	}
	return course
}

// navigationHints maps a course's default view to a suggestion for the next
// tool to call. Unrecognized views fall back to defaultNavigationHint.
var navigationHints = map[string]string{
	"modules":     "This course organizes content in modules. Use get_course_modules to explore it.",
	"wiki":        "This course opens on a custom home page. Use get_course_home_page to read it.",
	"syllabus":    "This course is centered on its syllabus. Use get_course_syllabus to read it.",
	"assignments": "This course opens on its assignment list. Use get_assignments to see it.",
	"feed":        "This course opens on its activity feed. Use get_announcements for recent posts.",
}

const defaultNavigationHint = "Start with get_course_modules, then get_course_pages and get_course_files to locate content."

func navigationHint(defaultView string) string {
	if hint, ok := navigationHints[defaultView]; ok {
		return hint
	}
	return defaultNavigationHint
}

// ListCourses returns the caller's active courses with term, teacher and
// student-count includes flattened into one record each.
func (c *Client) ListCourses(ctx context.Context) ([]canvasmcp.Course, error) {
	params := url.Values{
		"enrollment_state": {"active"},
		"include[]":        {"term", "total_students", "teachers"},
	}

	var raw []courseJSON
	if err := c.get(ctx, "/courses", params, &raw); err != nil {
		return nil, err
	}

	courses := make([]canvasmcp.Course, 0, len(raw))
	for _, cj := range raw {
		courses = append(courses, cj.flatten())
	}
	return courses, nil
}

// GetCourse returns full detail for one course. The tabs fetch is
// best-effort: a failure leaves EnabledTabs empty and is only logged.
func (c *Client) GetCourse(ctx context.Context, courseID int) (*canvasmcp.CourseDetail, error) {
	params := url.Values{
		"include[]": {"syllabus_body", "term", "teachers", "total_students", "course_image"},
	}

	var raw courseJSON
	if err := c.get(ctx, coursePath(courseID, ""), params, &raw); err != nil {
		return nil, err
	}

	detail := &canvasmcp.CourseDetail{
		Course:         raw.flatten(),
		StartAt:        raw.StartAt,
		EndAt:          raw.EndAt,
		PublicSyllabus: raw.PublicSyllabus,
		SyllabusBody:   raw.SyllabusBody,
		Teachers:       make([]canvasmcp.Teacher, 0, len(raw.Teachers)),
		EnabledTabs:    c.enabledTabs(ctx, courseID),
		NavigationHint: navigationHint(raw.DefaultView),
	}
	for _, t := range raw.Teachers {
		detail.Teachers = append(detail.Teachers, canvasmcp.Teacher{ID: t.ID, Name: t.DisplayName})
	}
	return detail, nil
}

// enabledTabs fetches the visible navigation tabs for a course. The course
// detail is still useful without them, so any failure degrades to an empty
// list.
func (c *Client) enabledTabs(ctx context.Context, courseID int) []string {
	var raw []tabJSON
	if err := c.get(ctx, coursePath(courseID, "/tabs"), nil, &raw); err != nil {
		c.log.Debug().Int("course_id", courseID).Err(err).Msg("tabs unavailable, continuing without them")
		return []string{}
	}

	tabs := make([]string, 0, len(raw))
	for _, t := range raw {
		if t.Hidden {
			continue
		}
		tabs = append(tabs, t.Label)
	}
	return tabs
}
