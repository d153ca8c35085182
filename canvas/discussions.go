package canvas

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aviklund/canvasmcp"
)

type discussionTopicJSON struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PostedAt    string `json:"posted_at"`
	LastReplyAt string `json:"last_reply_at"`
	ReplyCount  int    `json:"discussion_subentry_count"`
	UnreadCount int    `json:"unread_count"`
	HTMLURL     string `json:"html_url"`
}

type discussionEntryJSON struct {
	ID            int    `json:"id"`
	UserName      string `json:"user_name"`
	Message       string `json:"message"`
	CreatedAt     string `json:"created_at"`
	RecentReplies []struct {
		UserName  string `json:"user_name"`
		Message   string `json:"message"`
		CreatedAt string `json:"created_at"`
	} `json:"recent_replies"`
}

// GetCourseDiscussions lists a course's discussion topics ordered by recent
// activity (server-side). Empty, 403 and 404 outcomes become advisories.
func (c *Client) GetCourseDiscussions(ctx context.Context, courseID int) (*canvasmcp.DiscussionList, error) {
	params := url.Values{
		"order_by": {"recent_activity"},
		"per_page": {strconv.Itoa(discussionsPerPage)},
	}

	var raw []discussionTopicJSON
	err := c.get(ctx, coursePath(courseID, "/discussion_topics"), params, &raw)
	switch statusOf(err) {
	case http.StatusForbidden:
		return &canvasmcp.DiscussionList{
			Topics:   []canvasmcp.DiscussionTopic{},
			Advisory: canvasmcp.ErrorAdvisory("No permission to view discussions for this course."),
		}, nil
	case http.StatusNotFound:
		return &canvasmcp.DiscussionList{
			Topics:   []canvasmcp.DiscussionTopic{},
			Advisory: canvasmcp.InfoAdvisory("This course has no discussions section."),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	topics := make([]canvasmcp.DiscussionTopic, 0, len(raw))
	for _, tj := range raw {
		topics = append(topics, canvasmcp.DiscussionTopic{
			ID:          tj.ID,
			Title:       tj.Title,
			PostedAt:    tj.PostedAt,
			LastReplyAt: tj.LastReplyAt,
			ReplyCount:  tj.ReplyCount,
			UnreadCount: tj.UnreadCount,
			HTMLURL:     tj.HTMLURL,
		})
	}

	list := &canvasmcp.DiscussionList{Topics: topics, Count: len(topics)}
	if len(topics) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			"This course has no discussion topics.",
			"Try get_announcements for instructor posts.",
		)
	}
	return list, nil
}

// GetDiscussionEntries returns up to limit top-level entries of a topic
// (default 20). The page size sent upstream is capped at 50 and the result
// is additionally truncated client-side to limit. Reply previews are passed
// through as Canvas returns them.
func (c *Client) GetDiscussionEntries(ctx context.Context, courseID, topicID, limit int) (*canvasmcp.EntryList, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	perPage := limit
	if perPage > maxEntriesPerPage {
		perPage = maxEntriesPerPage
	}

	params := url.Values{
		"per_page": {strconv.Itoa(perPage)},
	}

	path := coursePath(courseID, fmt.Sprintf("/discussion_topics/%d/entries", topicID))
	var raw []discussionEntryJSON
	err := c.get(ctx, path, params, &raw)
	if statusOf(err) == http.StatusNotFound {
		return &canvasmcp.EntryList{
			Entries: []canvasmcp.DiscussionEntry{},
			Advisory: canvasmcp.ErrorAdvisory(
				fmt.Sprintf("Discussion topic %d not found in course %d.", topicID, courseID),
				"Use get_course_discussions to list the course's topics.",
			),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(raw) > limit {
		raw = raw[:limit]
	}

	entries := make([]canvasmcp.DiscussionEntry, 0, len(raw))
	for _, ej := range raw {
		entry := canvasmcp.DiscussionEntry{
			ID:        ej.ID,
			Author:    ej.UserName,
			Message:   ej.Message,
			CreatedAt: ej.CreatedAt,
		}
		for _, rj := range ej.RecentReplies {
			entry.RecentReplies = append(entry.RecentReplies, canvasmcp.DiscussionReply{
				Author:    rj.UserName,
				Message:   rj.Message,
				CreatedAt: rj.CreatedAt,
			})
		}
		entries = append(entries, entry)
	}

	list := &canvasmcp.EntryList{Entries: entries, Count: len(entries)}
	if len(entries) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory("No entries in this discussion topic yet.")
	}
	return list, nil
}
