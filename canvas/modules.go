package canvas

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aviklund/canvasmcp"
)

type moduleItemJSON struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Position    int    `json:"position"`
	HTMLURL     string `json:"html_url"`
	ExternalURL string `json:"external_url"`
}

type moduleJSON struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Position  int              `json:"position"`
	Published bool             `json:"published"`
	Items     []moduleItemJSON `json:"items"`
}

// GetCourseModules lists a course's modules with their items, preserving the
// declared item order. Empty and 404 outcomes become advisories.
func (c *Client) GetCourseModules(ctx context.Context, courseID int) (*canvasmcp.ModuleList, error) {
	params := url.Values{
		"include[]": {"items", "content_details"},
		"per_page":  {strconv.Itoa(modulesPerPage)},
	}

	var raw []moduleJSON
	err := c.get(ctx, coursePath(courseID, "/modules"), params, &raw)
	if statusOf(err) == http.StatusNotFound {
		return &canvasmcp.ModuleList{
			Modules: []canvasmcp.Module{},
			Advisory: canvasmcp.InfoAdvisory(
				"This course has no modules section.",
				"Try get_course_home_page for the course landing page.",
				"Try get_course_pages and get_course_files for content.",
			),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	modules := make([]canvasmcp.Module, 0, len(raw))
	for _, mj := range raw {
		items := make([]canvasmcp.ModuleItem, 0, len(mj.Items))
		for _, ij := range mj.Items {
			items = append(items, canvasmcp.ModuleItem{
				ID:          ij.ID,
				Title:       ij.Title,
				Type:        ij.Type,
				Position:    ij.Position,
				HTMLURL:     ij.HTMLURL,
				ExternalURL: ij.ExternalURL,
			})
		}
		modules = append(modules, canvasmcp.Module{
			ID:        mj.ID,
			Name:      mj.Name,
			Position:  mj.Position,
			Published: mj.Published,
			Items:     items,
		})
	}

	list := &canvasmcp.ModuleList{Modules: modules, Count: len(modules)}
	if len(modules) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			"This course has no modules.",
			"Try get_course_home_page for the course landing page.",
			"Try get_course_pages and get_course_files for content.",
		)
	}
	return list, nil
}
