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

func TestGetAssignmentSubmission(t *testing.T) {
	t.Parallel()

	t.Run("derives submitted from workflow state", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			state     string
			submitted bool
		}{
			{"unsubmitted", false},
			{"submitted", true},
			{"graded", true},
			{"pending_review", true},
		}
		for _, tt := range tests {
			t.Run(tt.state, func(t *testing.T) {
				t.Parallel()
				client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "/courses/2/assignments/15/submissions/self", r.URL.Path)
					fmt.Fprintf(w, `{"assignment_id": 15, "workflow_state": %q,
						"assignment": {"name": "Essay"}}`, tt.state)
				}))

				result, err := client.GetAssignmentSubmission(context.Background(), 2, 15)
				require.NoError(t, err)
				require.NotNil(t, result.Submission)
				assert.Equal(t, tt.submitted, result.Submission.Submitted)
				assert.Equal(t, "Essay", result.Submission.AssignmentName)
			})
		}
	})

	t.Run("includes score and comments", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"assignment_id": 15, "workflow_state": "graded",
				"score": 42.0, "grade": "A", "late": true,
				"submission_comments": [{"author_name": "TA", "comment": "Well argued"}]}`)
		}))

		result, err := client.GetAssignmentSubmission(context.Background(), 2, 15)
		require.NoError(t, err)
		require.NotNil(t, result.Submission)
		require.NotNil(t, result.Submission.Score)
		assert.Equal(t, 42.0, *result.Submission.Score)
		assert.True(t, result.Submission.Late)
		require.Len(t, result.Submission.Comments, 1)
		assert.Equal(t, "TA", result.Submission.Comments[0].Author)
	})

	t.Run("404 becomes not-found advisory", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		result, err := client.GetAssignmentSubmission(context.Background(), 2, 15)
		require.NoError(t, err)
		assert.Nil(t, result.Submission)
		require.NotNil(t, result.Advisory)
		assert.Equal(t, "Assignment 15 not found in course 2.", result.Advisory.Message)
	})

	t.Run("403 becomes no-permission advisory", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		result, err := client.GetAssignmentSubmission(context.Background(), 2, 15)
		require.NoError(t, err)
		require.NotNil(t, result.Advisory)
		assert.Equal(t, canvasmcp.AdvisoryError, result.Advisory.Level)
		assert.Equal(t, "No permission to view this submission.", result.Advisory.Message)
	})
}
