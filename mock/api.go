// Package mock provides test doubles for canvasmcp interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/aviklund/canvasmcp"
)

// Interface compliance check.
var _ canvasmcp.API = (*API)(nil)

// API is a test double for canvasmcp.API. Set the function fields for the
// methods you need; calling an unset method panics.
type API struct {
	ListCoursesFn             func(ctx context.Context) ([]canvasmcp.Course, error)
	GetCourseFn               func(ctx context.Context, courseID int) (*canvasmcp.CourseDetail, error)
	GetAssignmentsFn          func(ctx context.Context, courseID int) ([]canvasmcp.Assignment, error)
	GetUpcomingDeadlinesFn    func(ctx context.Context) ([]canvasmcp.UpcomingAssignment, error)
	GetCourseFilesFn          func(ctx context.Context, courseID int) (*canvasmcp.FileList, error)
	GetCourseModulesFn        func(ctx context.Context, courseID int) (*canvasmcp.ModuleList, error)
	GetCoursePagesFn          func(ctx context.Context, courseID int) (*canvasmcp.PageList, error)
	GetCourseHomePageFn       func(ctx context.Context, courseID int) (*canvasmcp.HomePage, error)
	GetCourseSyllabusFn       func(ctx context.Context, courseID int) (*canvasmcp.Syllabus, error)
	GetCourseGradesFn         func(ctx context.Context, courseID int) (*canvasmcp.CourseGrades, error)
	GetAllAssignmentGradesFn  func(ctx context.Context, courseID int) ([]canvasmcp.AssignmentGrade, error)
	GetAllGradesFn            func(ctx context.Context) ([]canvasmcp.CourseGrades, error)
	GetCalendarEventsFn       func(ctx context.Context, courseID int, startDate, endDate string) (*canvasmcp.EventList, error)
	GetAllCalendarEventsFn    func(ctx context.Context, daysAhead int) (*canvasmcp.EventList, error)
	GetAnnouncementsFn        func(ctx context.Context, courseID, daysBack int) (*canvasmcp.AnnouncementList, error)
	GetAssignmentSubmissionFn func(ctx context.Context, courseID, assignmentID int) (*canvasmcp.SubmissionResult, error)
	GetCourseDiscussionsFn    func(ctx context.Context, courseID int) (*canvasmcp.DiscussionList, error)
	GetDiscussionEntriesFn    func(ctx context.Context, courseID, topicID, limit int) (*canvasmcp.EntryList, error)
}

// ListCourses delegates to ListCoursesFn.
func (a *API) ListCourses(ctx context.Context) ([]canvasmcp.Course, error) {
	return a.ListCoursesFn(ctx)
}

// GetCourse delegates to GetCourseFn.
func (a *API) GetCourse(ctx context.Context, courseID int) (*canvasmcp.CourseDetail, error) {
	return a.GetCourseFn(ctx, courseID)
}

// GetAssignments delegates to GetAssignmentsFn.
func (a *API) GetAssignments(ctx context.Context, courseID int) ([]canvasmcp.Assignment, error) {
	return a.GetAssignmentsFn(ctx, courseID)
}

// GetUpcomingDeadlines delegates to GetUpcomingDeadlinesFn.
func (a *API) GetUpcomingDeadlines(ctx context.Context) ([]canvasmcp.UpcomingAssignment, error) {
	return a.GetUpcomingDeadlinesFn(ctx)
}

// GetCourseFiles delegates to GetCourseFilesFn.
func (a *API) GetCourseFiles(ctx context.Context, courseID int) (*canvasmcp.FileList, error) {
	return a.GetCourseFilesFn(ctx, courseID)
}

// GetCourseModules delegates to GetCourseModulesFn.
func (a *API) GetCourseModules(ctx context.Context, courseID int) (*canvasmcp.ModuleList, error) {
	return a.GetCourseModulesFn(ctx, courseID)
}

// GetCoursePages delegates to GetCoursePagesFn.
func (a *API) GetCoursePages(ctx context.Context, courseID int) (*canvasmcp.PageList, error) {
	return a.GetCoursePagesFn(ctx, courseID)
}

// GetCourseHomePage delegates to GetCourseHomePageFn.
func (a *API) GetCourseHomePage(ctx context.Context, courseID int) (*canvasmcp.HomePage, error) {
	return a.GetCourseHomePageFn(ctx, courseID)
}

// GetCourseSyllabus delegates to GetCourseSyllabusFn.
func (a *API) GetCourseSyllabus(ctx context.Context, courseID int) (*canvasmcp.Syllabus, error) {
	return a.GetCourseSyllabusFn(ctx, courseID)
}

// GetCourseGrades delegates to GetCourseGradesFn.
func (a *API) GetCourseGrades(ctx context.Context, courseID int) (*canvasmcp.CourseGrades, error) {
	return a.GetCourseGradesFn(ctx, courseID)
}

// GetAllAssignmentGrades delegates to GetAllAssignmentGradesFn.
func (a *API) GetAllAssignmentGrades(ctx context.Context, courseID int) ([]canvasmcp.AssignmentGrade, error) {
	return a.GetAllAssignmentGradesFn(ctx, courseID)
}

// GetAllGrades delegates to GetAllGradesFn.
func (a *API) GetAllGrades(ctx context.Context) ([]canvasmcp.CourseGrades, error) {
	return a.GetAllGradesFn(ctx)
}

// GetCalendarEvents delegates to GetCalendarEventsFn.
func (a *API) GetCalendarEvents(ctx context.Context, courseID int, startDate, endDate string) (*canvasmcp.EventList, error) {
	return a.GetCalendarEventsFn(ctx, courseID, startDate, endDate)
}

// GetAllCalendarEvents delegates to GetAllCalendarEventsFn.
func (a *API) GetAllCalendarEvents(ctx context.Context, daysAhead int) (*canvasmcp.EventList, error) {
	return a.GetAllCalendarEventsFn(ctx, daysAhead)
}

// GetAnnouncements delegates to GetAnnouncementsFn.
func (a *API) GetAnnouncements(ctx context.Context, courseID, daysBack int) (*canvasmcp.AnnouncementList, error) {
	return a.GetAnnouncementsFn(ctx, courseID, daysBack)
}

// GetAssignmentSubmission delegates to GetAssignmentSubmissionFn.
func (a *API) GetAssignmentSubmission(ctx context.Context, courseID, assignmentID int) (*canvasmcp.SubmissionResult, error) {
	return a.GetAssignmentSubmissionFn(ctx, courseID, assignmentID)
}

// GetCourseDiscussions delegates to GetCourseDiscussionsFn.
func (a *API) GetCourseDiscussions(ctx context.Context, courseID int) (*canvasmcp.DiscussionList, error) {
	return a.GetCourseDiscussionsFn(ctx, courseID)
}

// GetDiscussionEntries delegates to GetDiscussionEntriesFn.
func (a *API) GetDiscussionEntries(ctx context.Context, courseID, topicID, limit int) (*canvasmcp.EntryList, error) {
	return a.GetDiscussionEntriesFn(ctx, courseID, topicID, limit)
}
