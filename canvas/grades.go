package canvas

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/aviklund/canvasmcp"
)

type gradesJSON struct {
	CurrentScore *float64 `json:"current_score"`
	CurrentGrade string   `json:"current_grade"`
	FinalScore   *float64 `json:"final_score"`
	FinalGrade   string   `json:"final_grade"`
}

type enrollmentJSON struct {
	Type   string     `json:"type"`
	Grades gradesJSON `json:"grades"`
}

// GetCourseGrades returns the caller's enrollment-level grades for one
// course. A missing enrollment, a 403 (grades hidden) and a 404 are all
// reported as advisories.
func (c *Client) GetCourseGrades(ctx context.Context, courseID int) (*canvasmcp.CourseGrades, error) {
	params := url.Values{
		"user_id":   {"self"},
		"type[]":    {"StudentEnrollment"},
		"include[]": {"total_scores"},
	}

	var raw []enrollmentJSON
	err := c.get(ctx, coursePath(courseID, "/enrollments"), params, &raw)
	switch statusOf(err) {
	case http.StatusForbidden:
		return &canvasmcp.CourseGrades{
			CourseID: courseID,
			Advisory: canvasmcp.ErrorAdvisory("Grades are hidden for this course."),
		}, nil
	case http.StatusNotFound:
		return &canvasmcp.CourseGrades{
			CourseID: courseID,
			Advisory: canvasmcp.ErrorAdvisory("Course not found. Please check the course ID."),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return &canvasmcp.CourseGrades{
			CourseID: courseID,
			Advisory: canvasmcp.ErrorAdvisory("No student enrollment found for this course."),
		}, nil
	}

	e := raw[0]
	return &canvasmcp.CourseGrades{
		CourseID:     courseID,
		CurrentScore: e.Grades.CurrentScore,
		CurrentGrade: e.Grades.CurrentGrade,
		FinalScore:   e.Grades.FinalScore,
		FinalGrade:   e.Grades.FinalGrade,
	}, nil
}

// GetAllGrades returns grades for every active course. A course whose grade
// fetch fails is skipped; the aggregate never reports partial failure.
func (c *Client) GetAllGrades(ctx context.Context) ([]canvasmcp.CourseGrades, error) {
	courses, err := c.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	grades := []canvasmcp.CourseGrades{}
	for _, course := range courses {
		cg, err := c.GetCourseGrades(ctx, course.ID)
		if err != nil {
			c.log.Debug().Int("course_id", course.ID).Err(err).Msg("skipping course in grade aggregation")
			continue
		}
		cg.CourseName = course.Name
		grades = append(grades, *cg)
	}
	return grades, nil
}

type submissionJSON struct {
	AssignmentID  int      `json:"assignment_id"`
	WorkflowState string   `json:"workflow_state"`
	Score         *float64 `json:"score"`
	Grade         string   `json:"grade"`
	SubmittedAt   string   `json:"submitted_at"`
	Late          bool     `json:"late"`
	Missing       bool     `json:"missing"`
	Assignment    *struct {
		Name           string  `json:"name"`
		DueAt          string  `json:"due_at"`
		PointsPossible float64 `json:"points_possible"`
	} `json:"assignment"`
	SubmissionComments []struct {
		AuthorName string `json:"author_name"`
		Comment    string `json:"comment"`
		CreatedAt  string `json:"created_at"`
	} `json:"submission_comments"`
}

func (sj submissionJSON) comments() []canvasmcp.SubmissionComment {
	if len(sj.SubmissionComments) == 0 {
		return nil
	}
	comments := make([]canvasmcp.SubmissionComment, 0, len(sj.SubmissionComments))
	for _, cj := range sj.SubmissionComments {
		comments = append(comments, canvasmcp.SubmissionComment{
			Author:    cj.AuthorName,
			Comment:   cj.Comment,
			CreatedAt: cj.CreatedAt,
		})
	}
	return comments
}

// GetAllAssignmentGrades returns one record per submission in a course.
// Graded entries sort before ungraded ones; within each group the order is
// ascending by due-date string, with a blank due date sorting first.
func (c *Client) GetAllAssignmentGrades(ctx context.Context, courseID int) ([]canvasmcp.AssignmentGrade, error) {
	params := url.Values{
		"student_ids[]": {"self"},
		"include[]":     {"assignment", "submission_comments"},
		"per_page":      {strconv.Itoa(submissionsPerPage)},
	}

	var raw []submissionJSON
	if err := c.get(ctx, coursePath(courseID, "/students/submissions"), params, &raw); err != nil {
		return nil, err
	}

	grades := make([]canvasmcp.AssignmentGrade, 0, len(raw))
	for _, sj := range raw {
		grade := canvasmcp.AssignmentGrade{
			AssignmentID:  sj.AssignmentID,
			Score:         sj.Score,
			Grade:         sj.Grade,
			WorkflowState: sj.WorkflowState,
			Submitted:     sj.WorkflowState != "unsubmitted",
			Late:          sj.Late,
			Missing:       sj.Missing,
			Comments:      sj.comments(),
		}
		if sj.Assignment != nil {
			grade.AssignmentName = sj.Assignment.Name
			grade.DueAt = sj.Assignment.DueAt
			grade.PointsPossible = sj.Assignment.PointsPossible
		}
		grades = append(grades, grade)
	}

	sort.SliceStable(grades, func(i, j int) bool {
		ungradedI := grades[i].WorkflowState != "graded"
		ungradedJ := grades[j].WorkflowState != "graded"
		if ungradedI != ungradedJ {
			return !ungradedI
		}
		return grades[i].DueAt < grades[j].DueAt
	})
	return grades, nil
}
