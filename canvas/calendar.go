package canvas

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/aviklund/canvasmcp"
)

type calendarEventJSON struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
	LocationName string `json:"location_name"`
	Description  string `json:"description"`
	ContextCode  string `json:"context_code"`
}

func (ej calendarEventJSON) flatten() canvasmcp.CalendarEvent {
	return canvasmcp.CalendarEvent{
		ID:           ej.ID,
		Title:        ej.Title,
		StartAt:      ej.StartAt,
		EndAt:        ej.EndAt,
		LocationName: ej.LocationName,
		Description:  ej.Description,
		ContextCode:  ej.ContextCode,
	}
}

const calendarDateFormat = "2006-01-02"

// GetCalendarEvents returns calendar events for one course. Omitted bounds
// default to a [today, today+30d] window in UTC.
func (c *Client) GetCalendarEvents(ctx context.Context, courseID int, startDate, endDate string) (*canvasmcp.EventList, error) {
	today := time.Now().UTC()
	if startDate == "" {
		startDate = today.Format(calendarDateFormat)
	}
	if endDate == "" {
		endDate = today.AddDate(0, 0, defaultCalendarWindowDays).Format(calendarDateFormat)
	}

	params := url.Values{
		"context_codes[]": {contextCode(courseID)},
		"start_date":      {startDate},
		"end_date":        {endDate},
		"per_page":        {strconv.Itoa(eventsPerPage)},
	}

	var raw []calendarEventJSON
	err := c.get(ctx, "/calendar_events", params, &raw)
	if statusOf(err) == http.StatusForbidden {
		return &canvasmcp.EventList{
			Events:   []canvasmcp.CalendarEvent{},
			Advisory: canvasmcp.ErrorAdvisory("No permission to view the calendar for this course."),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	events := make([]canvasmcp.CalendarEvent, 0, len(raw))
	for _, ej := range raw {
		events = append(events, ej.flatten())
	}

	list := &canvasmcp.EventList{Events: events, Count: len(events)}
	if len(events) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			fmt.Sprintf("No calendar events between %s and %s for this course.", startDate, endDate),
		)
	}
	return list, nil
}

// GetAllCalendarEvents returns calendar events across every active course
// within the next daysAhead days (default 7). Each event's course is
// resolved from its context code; unmatched codes get "Unknown Course".
// Events sort ascending by start time, blank start first.
func (c *Client) GetAllCalendarEvents(ctx context.Context, daysAhead int) (*canvasmcp.EventList, error) {
	if daysAhead <= 0 {
		daysAhead = defaultDaysAhead
	}

	courses, err := c.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	nameByID := make(map[int]string, len(courses))
	codes := make([]string, 0, len(courses))
	for _, course := range courses {
		nameByID[course.ID] = course.Name
		codes = append(codes, contextCode(course.ID))
	}

	today := time.Now().UTC()
	params := url.Values{
		"context_codes[]": codes,
		"start_date":      {today.Format(calendarDateFormat)},
		"end_date":        {today.AddDate(0, 0, daysAhead).Format(calendarDateFormat)},
		"per_page":        {strconv.Itoa(eventsPerPage)},
	}

	var raw []calendarEventJSON
	if err := c.get(ctx, "/calendar_events", params, &raw); err != nil {
		return nil, err
	}

	events := make([]canvasmcp.CalendarEvent, 0, len(raw))
	for _, ej := range raw {
		event := ej.flatten()
		event.CourseID = courseIDFromContextCode(ej.ContextCode)
		if name, ok := nameByID[event.CourseID]; ok {
			event.CourseName = name
		} else {
			event.CourseName = "Unknown Course"
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].StartAt < events[j].StartAt })

	list := &canvasmcp.EventList{Events: events, Count: len(events)}
	if len(events) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			fmt.Sprintf("No calendar events across your active courses in the next %d days.", daysAhead),
		)
	}
	return list, nil
}
