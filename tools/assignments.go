package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aviklund/canvasmcp"
)

func getAssignments(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_assignments",
			mcp.WithDescription("Get all assignments for a specific course, including name, description, "+
				"due date, points possible, submission types and assignment URL."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to retrieve assignments from"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			assignments, err := api.GetAssignments(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(assignments), nil
		},
	}
}

func getUpcomingDeadlines(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_upcoming_deadlines",
			mcp.WithDescription("Get all upcoming assignment deadlines across every active course, sorted "+
				"by due date (earliest first). Each entry names the course and assignment, the due date, "+
				"points possible and the assignment URL. Useful for planning work across courses. "+
				"Only assignments with future due dates are included."),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			upcoming, err := api.GetUpcomingDeadlines(ctx)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(upcoming), nil
		},
	}
}

func getAssignmentSubmission(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_assignment_submission",
			mcp.WithDescription("Get your own submission for a specific assignment: workflow state, "+
				"score, grade, late/missing flags and grader comments."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID the assignment belongs to"),
			),
			mcp.WithNumber("assignment_id",
				mcp.Required(),
				mcp.Description("The Canvas assignment ID to fetch your submission for"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			assignmentID, err := req.RequireInt("assignment_id")
			if err != nil {
				return errorResult(err), nil
			}
			result, err := api.GetAssignmentSubmission(ctx, courseID, assignmentID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(result), nil
		},
	}
}
