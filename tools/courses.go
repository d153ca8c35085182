package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aviklund/canvasmcp"
)

func listCourses(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("list_courses",
			mcp.WithDescription("Get all active courses for the authenticated user. "+
				"Returns each course's ID, name, code, enrollment term, student count and workflow state. "+
				"Use this first to discover course IDs for the other tools."),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courses, err := api.ListCourses(ctx)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(courses), nil
		},
	}
}

func getCourseDetails(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_details",
			mcp.WithDescription("Get detailed information about a specific course: name, code, term, "+
				"dates, teachers, syllabus, enabled navigation tabs and a navigation_hint suggesting "+
				"which tool to call next based on how the course presents its content."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to retrieve details for"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			detail, err := api.GetCourse(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(detail), nil
		},
	}
}
