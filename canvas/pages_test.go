package canvas_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviklund/canvasmcp"
)

func TestGetCoursePages(t *testing.T) {
	t.Parallel()

	t.Run("requests recency sort and omits bodies", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/courses/4/pages", r.URL.Path)
			assert.Equal(t, "updated_at", r.URL.Query().Get("sort"))
			assert.Equal(t, "desc", r.URL.Query().Get("order"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			fmt.Fprint(w, `[
				{"url": "syllabus-notes", "title": "Syllabus Notes",
				 "updated_at": "2026-03-01T09:00:00Z", "front_page": false,
				 "body": "<p>should not leak into listings</p>"}
			]`)
		}))

		list, err := client.GetCoursePages(context.Background(), 4)
		require.NoError(t, err)
		require.Len(t, list.Pages, 1)
		assert.Equal(t, "syllabus-notes", list.Pages[0].URL)
		assert.Empty(t, list.Pages[0].Body)
	})

	t.Run("advisory outcomes", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name   string
			status int
			level  string
		}{
			{"forbidden", http.StatusForbidden, canvasmcp.AdvisoryError},
			{"not found", http.StatusNotFound, canvasmcp.AdvisoryInfo},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}))

				list, err := client.GetCoursePages(context.Background(), 4)
				require.NoError(t, err)
				require.NotNil(t, list.Advisory)
				assert.Equal(t, tt.level, list.Advisory.Level)
			})
		}

		t.Run("empty", func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `[]`)
			}))

			list, err := client.GetCoursePages(context.Background(), 4)
			require.NoError(t, err)
			require.NotNil(t, list.Advisory)
			assert.Equal(t, "This course has no wiki pages.", list.Advisory.Message)
		})
	})
}

func TestGetCourseHomePage(t *testing.T) {
	t.Parallel()

	t.Run("returns front page with body", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/courses/4/front_page", r.URL.Path)
			fmt.Fprint(w, `{"url": "home", "title": "Welcome", "front_page": true,
				"body": "<h1>Hello</h1>"}`)
		}))

		home, err := client.GetCourseHomePage(context.Background(), 4)
		require.NoError(t, err)
		require.NotNil(t, home.Page)
		assert.True(t, home.Page.FrontPage)
		assert.Equal(t, "<h1>Hello</h1>", home.Page.Body)
		assert.Nil(t, home.Advisory)
	})

	t.Run("404 becomes no-custom-home-page advisory", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		home, err := client.GetCourseHomePage(context.Background(), 4)
		require.NoError(t, err)
		assert.Nil(t, home.Page)
		require.NotNil(t, home.Advisory)
		assert.Equal(t, "This course has no custom home page.", home.Advisory.Message)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		_, err := client.GetCourseHomePage(context.Background(), 4)
		require.Error(t, err)
	})
}

func TestGetCourseSyllabus(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, []string{"syllabus_body"}, r.URL.Query()["include[]"])
			fmt.Fprint(w, `{"id": 4, "name": "Networks", "syllabus_body": "<p>Plan</p>"}`)
		}))

		syllabus, err := client.GetCourseSyllabus(context.Background(), 4)
		require.NoError(t, err)
		assert.True(t, syllabus.HasSyllabus)
		assert.Equal(t, "<p>Plan</p>", syllabus.Body)
		assert.Nil(t, syllabus.Advisory)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": 4, "name": "Networks", "syllabus_body": ""}`)
		}))

		syllabus, err := client.GetCourseSyllabus(context.Background(), 4)
		require.NoError(t, err)
		assert.False(t, syllabus.HasSyllabus)
		require.NotNil(t, syllabus.Advisory)
		assert.Equal(t, "This course has no syllabus published.", syllabus.Advisory.Message)
	})
}
