package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aviklund/canvasmcp"
)

func getCourseFiles(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_files",
			mcp.WithDescription("List all files in a course with download URLs, sizes, content types and "+
				"timestamps. When the Files section is empty or disabled, the result carries an advisory "+
				"suggesting which tools to try instead."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to list files from"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			files, err := api.GetCourseFiles(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(files), nil
		},
	}
}

func getCourseModules(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_modules",
			mcp.WithDescription("Get a course's content modules with their items (files, pages, "+
				"assignments, external links) in order. This is usually the best map of how a course "+
				"is organized."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to list modules from"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			modules, err := api.GetCourseModules(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(modules), nil
		},
	}
}

func getCoursePages(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_pages",
			mcp.WithDescription("List a course's wiki pages, most recently updated first. Page bodies are "+
				"not included; use get_course_home_page for the front page content."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to list pages from"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			pages, err := api.GetCoursePages(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(pages), nil
		},
	}
}

func getCourseHomePage(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_home_page",
			mcp.WithDescription("Get the course's custom home page including its full body. When no "+
				"custom home page is set, the result carries an advisory pointing at the modules and "+
				"syllabus tools instead."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to fetch the home page for"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			home, err := api.GetCourseHomePage(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(home), nil
		},
	}
}

func getCourseSyllabus(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_syllabus",
			mcp.WithDescription("Get the course syllabus body. has_syllabus reports whether a syllabus "+
				"is published; when it is not, an advisory suggests where else to look."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to fetch the syllabus for"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			syllabus, err := api.GetCourseSyllabus(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(syllabus), nil
		},
	}
}
