package canvas

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aviklund/canvasmcp"
)

// GetAssignmentSubmission returns the caller's own submission for one
// assignment, with comments. A 404 (assignment not found) and a 403 (no
// permission) are reported as advisories.
func (c *Client) GetAssignmentSubmission(ctx context.Context, courseID, assignmentID int) (*canvasmcp.SubmissionResult, error) {
	params := url.Values{
		"include[]": {"submission_comments", "assignment"},
	}

	path := coursePath(courseID, fmt.Sprintf("/assignments/%d/submissions/self", assignmentID))
	var raw submissionJSON
	err := c.get(ctx, path, params, &raw)
	switch statusOf(err) {
	case http.StatusNotFound:
		return &canvasmcp.SubmissionResult{
			Advisory: canvasmcp.ErrorAdvisory(
				fmt.Sprintf("Assignment %d not found in course %d.", assignmentID, courseID),
				"Use get_assignments to list the course's assignments.",
			),
		}, nil
	case http.StatusForbidden:
		return &canvasmcp.SubmissionResult{
			Advisory: canvasmcp.ErrorAdvisory("No permission to view this submission."),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	submission := &canvasmcp.Submission{
		AssignmentID:  raw.AssignmentID,
		WorkflowState: raw.WorkflowState,
		Submitted:     raw.WorkflowState != "unsubmitted",
		Score:         raw.Score,
		Grade:         raw.Grade,
		SubmittedAt:   raw.SubmittedAt,
		Late:          raw.Late,
		Missing:       raw.Missing,
		Comments:      raw.comments(),
	}
	if raw.Assignment != nil {
		submission.AssignmentName = raw.Assignment.Name
	}
	if submission.AssignmentID == 0 {
		submission.AssignmentID = assignmentID
	}
	return &canvasmcp.SubmissionResult{Submission: submission}, nil
}
