package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aviklund/canvasmcp"
)

func getCourseGrades(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_grades",
			mcp.WithDescription("Get your current and final grade for one course, from your own student "+
				"enrollment. Hidden grades and missing enrollments are reported as advisories."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to fetch grades for"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			grades, err := api.GetCourseGrades(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(grades), nil
		},
	}
}

func getAllAssignmentGrades(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_all_assignment_grades",
			mcp.WithDescription("Get your score and grade for every assignment in a course, one record "+
				"per submission. Graded assignments come first, each group ordered by due date."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to fetch assignment grades for"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			grades, err := api.GetAllAssignmentGrades(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(grades), nil
		},
	}
}

func getAllGrades(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_all_grades",
			mcp.WithDescription("Get your current grade in every active course at once. Courses whose "+
				"grades cannot be fetched are skipped."),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			grades, err := api.GetAllGrades(ctx)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(grades), nil
		},
	}
}
