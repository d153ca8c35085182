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

func TestGetCourseGrades(t *testing.T) {
	t.Parallel()

	t.Run("returns own enrollment grades", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/courses/6/enrollments", r.URL.Path)
			assert.Equal(t, "self", r.URL.Query().Get("user_id"))
			assert.Equal(t, []string{"StudentEnrollment"}, r.URL.Query()["type[]"])
			fmt.Fprint(w, `[{"type": "StudentEnrollment", "grades": {
				"current_score": 87.5, "current_grade": "B+",
				"final_score": 85.0, "final_grade": "B"}}]`)
		}))

		grades, err := client.GetCourseGrades(context.Background(), 6)
		require.NoError(t, err)
		assert.Equal(t, 6, grades.CourseID)
		require.NotNil(t, grades.CurrentScore)
		assert.Equal(t, 87.5, *grades.CurrentScore)
		assert.Equal(t, "B+", grades.CurrentGrade)
		assert.Nil(t, grades.Advisory)
	})

	t.Run("advisory outcomes", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name    string
			status  int
			body    string
			message string
		}{
			{"grades hidden", http.StatusForbidden, "", "Grades are hidden for this course."},
			{"course not found", http.StatusNotFound, "", "Course not found. Please check the course ID."},
			{"no enrollment", http.StatusOK, `[]`, "No student enrollment found for this course."},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if tt.status != http.StatusOK {
						w.WriteHeader(tt.status)
						return
					}
					fmt.Fprint(w, tt.body)
				}))

				grades, err := client.GetCourseGrades(context.Background(), 6)
				require.NoError(t, err)
				require.NotNil(t, grades.Advisory)
				assert.Equal(t, canvasmcp.AdvisoryError, grades.Advisory.Level)
				assert.Equal(t, tt.message, grades.Advisory.Message)
			})
		}
	})
}

func TestGetAllGrades(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": 1, "name": "Algebra"}, {"id": 2, "name": "Biology"}]`)
	})
	mux.HandleFunc("/courses/1/enrollments", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"grades": {"current_score": 91.0, "current_grade": "A-"}}]`)
	})
	mux.HandleFunc("/courses/2/enrollments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newTestClient(t, mux)

	grades, err := client.GetAllGrades(context.Background())
	require.NoError(t, err)

	// Course 2's hard failure is skipped, never surfaced.
	require.Len(t, grades, 1)
	assert.Equal(t, 1, grades[0].CourseID)
	assert.Equal(t, "Algebra", grades[0].CourseName)
	assert.Equal(t, "A-", grades[0].CurrentGrade)
}

func TestGetAllAssignmentGrades(t *testing.T) {
	t.Parallel()

	t.Run("derives submitted and sorts graded first", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/courses/8/students/submissions", r.URL.Path)
			assert.Equal(t, []string{"self"}, r.URL.Query()["student_ids[]"])
			assert.ElementsMatch(t, []string{"assignment", "submission_comments"}, r.URL.Query()["include[]"])
			fmt.Fprint(w, `[
				{"assignment_id": 1, "workflow_state": "unsubmitted",
				 "assignment": {"name": "late hw", "due_at": "2026-01-01T00:00:00Z"}},
				{"assignment_id": 2, "workflow_state": "graded", "score": 9.0, "grade": "A",
				 "assignment": {"name": "quiz 2", "due_at": "2026-03-01T00:00:00Z", "points_possible": 10}},
				{"assignment_id": 3, "workflow_state": "graded", "score": 8.0, "grade": "B",
				 "assignment": {"name": "quiz 1", "due_at": "2026-02-01T00:00:00Z", "points_possible": 10}},
				{"assignment_id": 4, "workflow_state": "submitted",
				 "assignment": {"name": "pending"}}
			]`)
		}))

		grades, err := client.GetAllAssignmentGrades(context.Background(), 8)
		require.NoError(t, err)
		require.Len(t, grades, 4)

		// Graded entries first, ascending by due date; ungraded after, with
		// the blank due date sorting before the dated one.
		assert.Equal(t, 3, grades[0].AssignmentID)
		assert.Equal(t, 2, grades[1].AssignmentID)
		assert.Equal(t, 4, grades[2].AssignmentID)
		assert.Equal(t, 1, grades[3].AssignmentID)

		assert.False(t, grades[3].Submitted)
		assert.True(t, grades[2].Submitted)
		assert.True(t, grades[0].Submitted)
		assert.Equal(t, "quiz 1", grades[0].AssignmentName)
		require.NotNil(t, grades[0].Score)
		assert.Equal(t, 8.0, *grades[0].Score)
	})

	t.Run("flattens comments", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"assignment_id": 1, "workflow_state": "graded",
				"submission_comments": [
					{"author_name": "Grader", "comment": "Nice work", "created_at": "2026-02-05T12:00:00Z"}
				]}]`)
		}))

		grades, err := client.GetAllAssignmentGrades(context.Background(), 8)
		require.NoError(t, err)
		require.Len(t, grades, 1)
		require.Len(t, grades[0].Comments, 1)
		assert.Equal(t, "Grader", grades[0].Comments[0].Author)
		assert.Equal(t, "Nice work", grades[0].Comments[0].Comment)
	})
}
