// Package canvasmcp defines the domain types and interfaces for a Canvas LMS
// MCP server: flattened result records shaped from the Canvas REST API, the
// [API] interface implemented by the canvas package, and the structured error
// and advisory values shared between the client and the tool layer.
package canvasmcp

import "context"

// API is the read-only surface of the Canvas LMS client. Every method maps to
// one externally exposed tool. Implementations issue HTTP GETs against the
// Canvas REST API and shape the responses into the record types in this
// package; they never mutate upstream state.
type API interface {
	// ListCourses returns the caller's active courses.
	ListCourses(ctx context.Context) ([]Course, error)

	// GetCourse returns full detail for one course, including syllabus,
	// teachers, enabled tabs and a navigation hint derived from the course's
	// default view. The tabs fetch is best-effort: when it fails, EnabledTabs
	// is empty and the rest of the course is still returned.
	GetCourse(ctx context.Context, courseID int) (*CourseDetail, error)

	// GetAssignments returns all assignments for a course.
	GetAssignments(ctx context.Context, courseID int) ([]Assignment, error)

	// GetUpcomingDeadlines aggregates future assignment deadlines across all
	// active courses, sorted ascending by due date. Courses whose assignment
	// fetch fails are skipped; assignments with missing or malformed due
	// dates are dropped.
	GetUpcomingDeadlines(ctx context.Context) ([]UpcomingAssignment, error)

	// GetCourseFiles lists the files of a course. Empty, 403 and 404
	// outcomes are reported as advisories, not errors.
	GetCourseFiles(ctx context.Context, courseID int) (*FileList, error)

	// GetCourseModules lists a course's modules with their items in declared
	// order. Empty and 404 outcomes are reported as advisories.
	GetCourseModules(ctx context.Context, courseID int) (*ModuleList, error)

	// GetCoursePages lists a course's wiki pages, most recently updated
	// first. Page bodies are not included.
	GetCoursePages(ctx context.Context, courseID int) (*PageList, error)

	// GetCourseHomePage returns the course front page with its body. A 404
	// means the course has no custom home page and is reported as an
	// advisory.
	GetCourseHomePage(ctx context.Context, courseID int) (*HomePage, error)

	// GetCourseSyllabus returns the course syllabus body, with an advisory
	// when no syllabus is published.
	GetCourseSyllabus(ctx context.Context, courseID int) (*Syllabus, error)

	// GetCourseGrades returns the caller's enrollment grades for one course.
	GetCourseGrades(ctx context.Context, courseID int) (*CourseGrades, error)

	// GetAllAssignmentGrades returns one record per submission in a course,
	// graded entries first, each group ordered by due date.
	GetAllAssignmentGrades(ctx context.Context, courseID int) ([]AssignmentGrade, error)

	// GetAllGrades returns enrollment grades for every active course.
	// Courses whose grade fetch fails are skipped.
	GetAllGrades(ctx context.Context) ([]CourseGrades, error)

	// GetCalendarEvents returns calendar events for one course. Dates are
	// YYYY-MM-DD; omitted bounds default to today and today+30 days (UTC).
	GetCalendarEvents(ctx context.Context, courseID int, startDate, endDate string) (*EventList, error)

	// GetAllCalendarEvents returns calendar events across all active courses
	// for the next daysAhead days (default 7), sorted by start time. Each
	// event is resolved back to its course via the context code.
	GetAllCalendarEvents(ctx context.Context, daysAhead int) (*EventList, error)

	// GetAnnouncements returns announcements for one course, or for all
	// active courses when courseID is zero, within the last daysBack days
	// (default 14), newest first.
	GetAnnouncements(ctx context.Context, courseID, daysBack int) (*AnnouncementList, error)

	// GetAssignmentSubmission returns the caller's own submission for one
	// assignment, including comments.
	GetAssignmentSubmission(ctx context.Context, courseID, assignmentID int) (*SubmissionResult, error)

	// GetCourseDiscussions lists a course's discussion topics ordered by
	// recent activity.
	GetCourseDiscussions(ctx context.Context, courseID int) (*DiscussionList, error)

	// GetDiscussionEntries returns up to limit top-level entries of a
	// discussion topic (default 20), each with the bounded reply preview
	// Canvas provides.
	GetDiscussionEntries(ctx context.Context, courseID, topicID, limit int) (*EntryList, error)
}
