package canvas

import (
	"context"
	"sort"
	"time"

	"github.com/aviklund/canvasmcp"
)

type assignmentJSON struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DueAt           string   `json:"due_at"`
	PointsPossible  float64  `json:"points_possible"`
	SubmissionTypes []string `json:"submission_types"`
	HasSubmitted    bool     `json:"has_submitted_submissions"`
	WorkflowState   string   `json:"workflow_state"`
	HTMLURL         string   `json:"html_url"`
}

func (aj assignmentJSON) flatten() canvasmcp.Assignment {
	return canvasmcp.Assignment{
		ID:              aj.ID,
		Name:            aj.Name,
		Description:     aj.Description,
		DueAt:           aj.DueAt,
		PointsPossible:  aj.PointsPossible,
		SubmissionTypes: aj.SubmissionTypes,
		HasSubmitted:    aj.HasSubmitted,
		WorkflowState:   aj.WorkflowState,
		HTMLURL:         aj.HTMLURL,
	}
}

// GetAssignments returns all assignments for a course, flattened one-to-one.
func (c *Client) GetAssignments(ctx context.Context, courseID int) ([]canvasmcp.Assignment, error) {
	var raw []assignmentJSON
	if err := c.get(ctx, coursePath(courseID, "/assignments"), nil, &raw); err != nil {
		return nil, err
	}

	assignments := make([]canvasmcp.Assignment, 0, len(raw))
	for _, aj := range raw {
		assignments = append(assignments, aj.flatten())
	}
	return assignments, nil
}

// GetUpcomingDeadlines aggregates assignments with future due dates across
// all active courses, sorted ascending by due date. A course whose
// assignment fetch fails is skipped rather than failing the aggregate, and
// assignments whose due date is absent or unparseable are dropped.
func (c *Client) GetUpcomingDeadlines(ctx context.Context) ([]canvasmcp.UpcomingAssignment, error) {
	courses, err := c.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	upcoming := []canvasmcp.UpcomingAssignment{}
	for _, course := range courses {
		assignments, err := c.GetAssignments(ctx, course.ID)
		if err != nil {
			c.log.Debug().Int("course_id", course.ID).Err(err).Msg("skipping course in deadline aggregation")
			continue
		}
		for _, a := range assignments {
			if a.DueAt == "" {
				continue
			}
			due, err := time.Parse(time.RFC3339, a.DueAt)
			if err != nil {
				continue
			}
			if !due.After(now) {
				continue
			}
			upcoming = append(upcoming, canvasmcp.UpcomingAssignment{
				CourseID:       course.ID,
				CourseName:     course.Name,
				CourseCode:     course.CourseCode,
				AssignmentID:   a.ID,
				AssignmentName: a.Name,
				DueAt:          a.DueAt,
				PointsPossible: a.PointsPossible,
				HTMLURL:        a.HTMLURL,
			})
		}
	}

	// Lexicographic order of RFC 3339 strings is chronological order.
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].DueAt < upcoming[j].DueAt })
	return upcoming, nil
}
