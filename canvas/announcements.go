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

type announcementJSON struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	PostedAt    string `json:"posted_at"`
	ContextCode string `json:"context_code"`
	Author      *struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
}

// GetAnnouncements returns announcements within the last daysBack days
// (default 14), scoped to one course when courseID is non-zero and to every
// active course otherwise. Results are newest first; an announcement with no
// posted time is treated as oldest.
func (c *Client) GetAnnouncements(ctx context.Context, courseID, daysBack int) (*canvasmcp.AnnouncementList, error) {
	if daysBack <= 0 {
		daysBack = defaultDaysBack
	}

	var codes []string
	if courseID != 0 {
		codes = []string{contextCode(courseID)}
	} else {
		courses, err := c.ListCourses(ctx)
		if err != nil {
			return nil, err
		}
		for _, course := range courses {
			codes = append(codes, contextCode(course.ID))
		}
	}

	today := time.Now().UTC()
	params := url.Values{
		"context_codes[]": codes,
		"start_date":      {today.AddDate(0, 0, -daysBack).Format(calendarDateFormat)},
		"end_date":        {today.Format(calendarDateFormat)},
		"per_page":        {strconv.Itoa(eventsPerPage)},
	}

	var raw []announcementJSON
	err := c.get(ctx, "/announcements", params, &raw)
	if statusOf(err) == http.StatusForbidden {
		return &canvasmcp.AnnouncementList{
			Announcements: []canvasmcp.Announcement{},
			Advisory:      canvasmcp.ErrorAdvisory(scopedMessage(courseID, "No permission to view announcements")),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	announcements := make([]canvasmcp.Announcement, 0, len(raw))
	for _, aj := range raw {
		announcement := canvasmcp.Announcement{
			ID:       aj.ID,
			Title:    aj.Title,
			Message:  aj.Message,
			PostedAt: aj.PostedAt,
			CourseID: courseIDFromContextCode(aj.ContextCode),
		}
		if aj.Author != nil {
			announcement.Author = aj.Author.DisplayName
		}
		announcements = append(announcements, announcement)
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].PostedAt > announcements[j].PostedAt
	})

	list := &canvasmcp.AnnouncementList{Announcements: announcements, Count: len(announcements)}
	if len(announcements) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			scopedMessage(courseID, fmt.Sprintf("No announcements in the last %d days", daysBack)),
		)
	}
	return list, nil
}

// scopedMessage appends the announcement scope to msg: one course or all
// active courses.
func scopedMessage(courseID int, msg string) string {
	if courseID != 0 {
		return fmt.Sprintf("%s for course %d.", msg, courseID)
	}
	return msg + " across your active courses."
}
