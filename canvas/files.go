package canvas

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aviklund/canvasmcp"
)

type fileJSON struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content-type"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	FolderID    int    `json:"folder_id"`
}

// GetCourseFiles lists a course's files. Three outcomes are expected and
// reported as advisories instead of errors: an empty listing, a 403 (the
// Files section is disabled) and a 404 (the course has no Files section).
func (c *Client) GetCourseFiles(ctx context.Context, courseID int) (*canvasmcp.FileList, error) {
	params := url.Values{
		"per_page": {strconv.Itoa(filesPerPage)},
	}

	var raw []fileJSON
	err := c.get(ctx, coursePath(courseID, "/files"), params, &raw)
	switch statusOf(err) {
	case http.StatusForbidden:
		return &canvasmcp.FileList{
			Files: []canvasmcp.File{},
			Advisory: canvasmcp.ErrorAdvisory(
				"The Files section is disabled for this course.",
				"Try get_course_modules; course materials are often attached to modules.",
				"Try get_course_pages for documents linked from wiki pages.",
			),
		}, nil
	case http.StatusNotFound:
		return &canvasmcp.FileList{
			Files: []canvasmcp.File{},
			Advisory: canvasmcp.InfoAdvisory(
				"This course has no Files section.",
				"Try get_course_modules to see how content is organized.",
				"Try get_course_pages for wiki content.",
			),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]canvasmcp.File, 0, len(raw))
	for _, fj := range raw {
		files = append(files, canvasmcp.File{
			ID:          fj.ID,
			DisplayName: fj.DisplayName,
			Filename:    fj.Filename,
			URL:         fj.URL,
			Size:        fj.Size,
			ContentType: fj.ContentType,
			CreatedAt:   fj.CreatedAt,
			UpdatedAt:   fj.UpdatedAt,
			FolderID:    fj.FolderID,
		})
	}

	list := &canvasmcp.FileList{Files: files, Count: len(files)}
	if len(files) == 0 {
		list.Advisory = canvasmcp.InfoAdvisory(
			"No files found in this course.",
			"Try get_course_modules; content may live in modules instead.",
			"Try get_course_pages for wiki content.",
		)
	}
	return list, nil
}
