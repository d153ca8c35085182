package canvas

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aviklund/canvasmcp"
)

type pageJSON struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	FrontPage bool   `json:"front_page"`
	Body      string `json:"body"`
}

func (pj pageJSON) flatten() canvasmcp.Page {
	return canvasmcp.Page{
		URL:       pj.URL,
		Title:     pj.Title,
		CreatedAt: pj.CreatedAt,
		UpdatedAt: pj.UpdatedAt,
		FrontPage: pj.FrontPage,
		Body:      pj.Body,
	}
}

// GetCoursePages lists a course's wiki pages, most recently updated first
// (sorted server-side). Bodies are not included in listings.
func (c *Client) GetCoursePages(ctx context.Context, courseID int) (*canvasmcp.PageList, error) {
	params := url.Values{
		"sort":     {"updated_at"},
		"order":    {"desc"},
		"per_page": {strconv.Itoa(pagesPerPage)},
	}

	var raw []pageJSON
	err := c.get(ctx, coursePath(courseID, "/pages"), params, &raw)
	switch statusOf(err) {
	case http.StatusForbidden:
		return &canvasmcp.PageList{
			Pages: []canvasmcp.Page{},
			Advisory: canvasmcp.ErrorAdvisory(
				"No permission to view pages for this course.",
				"Try get_course_modules or get_course_files instead.",
			),
		}, nil
	case http.StatusNotFound:
		return &canvasmcp.PageList{
			Pages: []canvasmcp.Page{},
			Advisory: canvasmcp.InfoAdvisory(
				"This course has no pages section.",
				"Try get_course_modules or get_course_files instead.",
			),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	pages := make([]canvasmcp.Page, 0, len(raw))
	for _, pj := range raw {
		page := pj.flatten()
		page.Body = "" // bodies are only fetched for the front page
		pages = append(pages, page)
	}

	list := &canvasmcp.PageList{Pages: pages, Count: len(pages)}
	if len(pages) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			"This course has no wiki pages.",
			"Try get_course_modules or get_course_files instead.",
		)
	}
	return list, nil
}

// GetCourseHomePage returns the course front page with its body. A 404 means
// no custom home page is set and becomes an advisory; other errors propagate.
func (c *Client) GetCourseHomePage(ctx context.Context, courseID int) (*canvasmcp.HomePage, error) {
	var raw pageJSON
	err := c.get(ctx, coursePath(courseID, "/front_page"), nil, &raw)
	if statusOf(err) == http.StatusNotFound {
		return &canvasmcp.HomePage{
			Advisory: canvasmcp.InfoAdvisory(
				"This course has no custom home page.",
				"Try get_course_modules; the course likely opens on its modules.",
				"Try get_course_syllabus for course information.",
			),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	page := raw.flatten()
	return &canvasmcp.HomePage{Page: &page}, nil
}
