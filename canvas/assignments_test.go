package canvas_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAssignments(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/5/assignments", r.URL.Path)
		fmt.Fprint(w, `[
			{"id": 11, "name": "Lab 1", "description": "<p>Do it</p>",
			 "due_at": "2026-09-15T23:59:00Z", "points_possible": 25,
			 "submission_types": ["online_upload"], "has_submitted_submissions": true,
			 "workflow_state": "published", "html_url": "https://canvas.example.edu/a/11"}
		]`)
	}))

	assignments, err := client.GetAssignments(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, assignments, 1)

	a := assignments[0]
	assert.Equal(t, 11, a.ID)
	assert.Equal(t, "Lab 1", a.Name)
	assert.Equal(t, "2026-09-15T23:59:00Z", a.DueAt)
	assert.Equal(t, 25.0, a.PointsPossible)
	assert.Equal(t, []string{"online_upload"}, a.SubmissionTypes)
	assert.True(t, a.HasSubmitted)
	assert.Equal(t, "https://canvas.example.edu/a/11", a.HTMLURL)
}

func TestGetUpcomingDeadlines(t *testing.T) {
	t.Parallel()

	t.Run("returns future assignments with course context", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 1, "name": "Intro", "course_code": "IN100"}]`)
		})
		mux.HandleFunc("/courses/1/assignments", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 9, "name": "HW1", "due_at": "2999-01-01T00:00:00Z",
				"points_possible": 10, "html_url": "u"}]`)
		})
		client := newTestClient(t, mux)

		upcoming, err := client.GetUpcomingDeadlines(context.Background())
		require.NoError(t, err)
		require.Len(t, upcoming, 1)

		assert.Equal(t, 1, upcoming[0].CourseID)
		assert.Equal(t, "Intro", upcoming[0].CourseName)
		assert.Equal(t, "IN100", upcoming[0].CourseCode)
		assert.Equal(t, 9, upcoming[0].AssignmentID)
		assert.Equal(t, "HW1", upcoming[0].AssignmentName)
		assert.Equal(t, "2999-01-01T00:00:00Z", upcoming[0].DueAt)
	})

	t.Run("drops past, missing and malformed due dates", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 1, "name": "Intro", "course_code": "IN100"}]`)
		})
		mux.HandleFunc("/courses/1/assignments", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[
				{"id": 1, "name": "past", "due_at": "2001-01-01T00:00:00Z"},
				{"id": 2, "name": "no due date"},
				{"id": 3, "name": "malformed", "due_at": "next tuesday"},
				{"id": 4, "name": "future", "due_at": "2999-01-01T00:00:00Z"}
			]`)
		})
		client := newTestClient(t, mux)

		upcoming, err := client.GetUpcomingDeadlines(context.Background())
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, 4, upcoming[0].AssignmentID)
	})

	t.Run("sorts ascending by due date across courses", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]`)
		})
		mux.HandleFunc("/courses/1/assignments", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 1, "name": "later", "due_at": "2999-06-01T00:00:00Z"}]`)
		})
		mux.HandleFunc("/courses/2/assignments", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 2, "name": "sooner", "due_at": "2999-01-01T00:00:00Z"}]`)
		})
		client := newTestClient(t, mux)

		upcoming, err := client.GetUpcomingDeadlines(context.Background())
		require.NoError(t, err)
		require.Len(t, upcoming, 2)
		assert.Equal(t, "sooner", upcoming[0].AssignmentName)
		assert.Equal(t, "later", upcoming[1].AssignmentName)
	})

	t.Run("skips courses whose assignment fetch fails", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]`)
		})
		mux.HandleFunc("/courses/1/assignments", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		mux.HandleFunc("/courses/2/assignments", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 2, "name": "kept", "due_at": "2999-01-01T00:00:00Z"}]`)
		})
		client := newTestClient(t, mux)

		upcoming, err := client.GetUpcomingDeadlines(context.Background())
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "kept", upcoming[0].AssignmentName)
	})
}
