// Package tools exposes every [canvasmcp.API] operation as an MCP tool. Each
// definition pairs a declared tool schema with a handler that delegates to the
// client, marshals the result as JSON text, and converts client errors into
// in-band error results. No business logic lives here.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aviklund/canvasmcp"
)

// Definition pairs an MCP tool declaration with its handler.
type Definition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// All returns every Canvas tool definition bound to api.
func All(api canvasmcp.API) []Definition {
	return []Definition{
		listCourses(api),
		getCourseDetails(api),
		getAssignments(api),
		getUpcomingDeadlines(api),
		getCourseFiles(api),
		getCourseModules(api),
		getCoursePages(api),
		getCourseHomePage(api),
		getCourseSyllabus(api),
		getCourseGrades(api),
		getAllAssignmentGrades(api),
		getAllGrades(api),
		getCalendarEvents(api),
		getAllCalendarEvents(api),
		getAnnouncements(api),
		getAssignmentSubmission(api),
		getCourseDiscussions(api),
		getDiscussionEntries(api),
	}
}

// Register declares every Canvas tool on srv.
func Register(srv *server.MCPServer, api canvasmcp.API) {
	for _, def := range All(api) {
		srv.AddTool(def.Tool, def.Handler)
	}
}

// jsonResult marshals v as indented JSON into a text result. Client errors
// never reach this: handlers convert them with errorResult first.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %s", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult converts a client error into an in-band error result. The
// calling agent always receives a payload, never a protocol-level failure.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// courseIDArg reads the required course_id argument.
func courseIDArg(req mcp.CallToolRequest) (int, error) {
	return req.RequireInt("course_id")
}
