package canvas

import (
	"context"
	"net/url"

	"github.com/aviklund/canvasmcp"
)

// GetCourseSyllabus returns the course syllabus body. The operation succeeds
// structurally even when no syllabus is published; HasSyllabus and an
// advisory report that case.
func (c *Client) GetCourseSyllabus(ctx context.Context, courseID int) (*canvasmcp.Syllabus, error) {
	params := url.Values{
		"include[]": {"syllabus_body"},
	}

	var raw courseJSON
	if err := c.get(ctx, coursePath(courseID, ""), params, &raw); err != nil {
		return nil, err
	}

	syllabus := &canvasmcp.Syllabus{
		CourseID:    raw.ID,
		CourseName:  raw.Name,
		HasSyllabus: raw.SyllabusBody != "",
		Body:        raw.SyllabusBody,
	}
	if !syllabus.HasSyllabus {
		syllabus.Advisory = canvasmcp.InfoAdvisory(
			"This course has no syllabus published.",
			"Try get_course_home_page or get_course_modules for course information.",
		)
	}
	return syllabus, nil
}
