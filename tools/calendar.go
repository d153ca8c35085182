package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aviklund/canvasmcp"
)

func getCalendarEvents(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_calendar_events",
			mcp.WithDescription("Get calendar events (lectures, labs, exams) for one course. Without "+
				"dates, the window defaults to the next 30 days."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to fetch events for"),
			),
			mcp.WithString("start_date",
				mcp.Description("Window start as YYYY-MM-DD (default: today)"),
			),
			mcp.WithString("end_date",
				mcp.Description("Window end as YYYY-MM-DD (default: 30 days from today)"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			events, err := api.GetCalendarEvents(ctx, courseID,
				req.GetString("start_date", ""),
				req.GetString("end_date", ""))
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(events), nil
		},
	}
}

func getAllCalendarEvents(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_all_calendar_events",
			mcp.WithDescription("Get calendar events across every active course for the coming days, "+
				"sorted by start time and labeled with the course they belong to."),
			mcp.WithNumber("days_ahead",
				mcp.Description("How many days ahead to look (default: 7)"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			events, err := api.GetAllCalendarEvents(ctx, req.GetInt("days_ahead", 7))
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(events), nil
		},
	}
}

func getAnnouncements(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_announcements",
			mcp.WithDescription("Get recent announcements, newest first. Scope to one course with "+
				"course_id or omit it to cover every active course."),
			mcp.WithNumber("course_id",
				mcp.Description("Optional Canvas course ID; omit to search all active courses"),
			),
			mcp.WithNumber("days_back",
				mcp.Description("How many days back to look (default: 14)"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			announcements, err := api.GetAnnouncements(ctx,
				req.GetInt("course_id", 0),
				req.GetInt("days_back", 14))
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(announcements), nil
		},
	}
}
