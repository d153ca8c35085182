package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aviklund/canvasmcp"
)

func getCourseDiscussions(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_course_discussions",
			mcp.WithDescription("List a course's discussion topics ordered by recent activity, with "+
				"reply and unread counts. Use get_discussion_entries to read a topic."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID to list discussions from"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			topics, err := api.GetCourseDiscussions(ctx, courseID)
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(topics), nil
		},
	}
}

func getDiscussionEntries(api canvasmcp.API) Definition {
	return Definition{
		Tool: mcp.NewTool("get_discussion_entries",
			mcp.WithDescription("Read the top-level entries of a discussion topic, each with a short "+
				"preview of its most recent replies."),
			mcp.WithNumber("course_id",
				mcp.Required(),
				mcp.Description("The Canvas course ID the topic belongs to"),
			),
			mcp.WithNumber("topic_id",
				mcp.Required(),
				mcp.Description("The discussion topic ID to read"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of entries to return (default: 20)"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			courseID, err := courseIDArg(req)
			if err != nil {
				return errorResult(err), nil
			}
			topicID, err := req.RequireInt("topic_id")
			if err != nil {
				return errorResult(err), nil
			}
			entries, err := api.GetDiscussionEntries(ctx, courseID, topicID, req.GetInt("limit", 20))
			if err != nil {
				return errorResult(err), nil
			}
			return jsonResult(entries), nil
		},
	}
}
