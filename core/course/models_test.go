package course

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewAssignment(t *testing.T) {
	c := Course{ID: 42, Name: "CS101 Fall 2024"}

	t.Run("no due date", func(t *testing.T) {
		a := NewAssignment(c, RemoteAssignment{Name: "Project 1"})
		assert.Equal(t, "Project 1", a.Name)
		assert.Equal(t, "No due date set", a.DueDate)
		assert.Nil(t, a.DueDateISO)
		assert.Equal(t, 42, a.CourseID)
		assert.Equal(t, "CS101 Fall 2024", a.CourseName)
	})

	t.Run("unparseable due date degrades to no due date", func(t *testing.T) {
		a := NewAssignment(c, RemoteAssignment{Name: "Quiz", DueAt: strPtr("next tuesday")})
		assert.Equal(t, "No due date set", a.DueDate)
		assert.Nil(t, a.DueDateISO)
	})

	t.Run("valid due date yields a consistent pair", func(t *testing.T) {
		a := NewAssignment(c, RemoteAssignment{Name: "Homework 3", DueAt: strPtr("2024-10-06T23:59:00Z")})

		require.NotNil(t, a.DueDateISO)
		due, err := time.Parse(time.RFC3339, *a.DueDateISO)
		require.NoError(t, err)
		assert.True(t, due.Equal(time.Date(2024, time.October, 6, 23, 59, 0, 0, time.UTC)))

		// display and ISO both come from the same parsed timestamp
		assert.Equal(t, due.Local().Format(dueDateDisplayFormat), a.DueDate)
	})
}

func TestNewCourseAssignments(t *testing.T) {
	c := Course{ID: 7, Name: "MATH140 Fall 2024"}
	raw := []RemoteAssignment{
		{Name: "WebAssign 1", DueAt: strPtr("2024-09-13T04:59:00Z")},
		{Name: "WebAssign 2"},
	}

	got := NewCourseAssignments(c, raw)

	assert.Equal(t, 7, got.CourseID)
	assert.Equal(t, "MATH140 Fall 2024", got.CourseName)
	require.Len(t, got.Assignments, 2)
	assert.Equal(t, "WebAssign 1", got.Assignments[0].Name)
	assert.Equal(t, "WebAssign 2", got.Assignments[1].Name)
	for _, a := range got.Assignments {
		assert.Equal(t, got.CourseID, a.CourseID)
		assert.Equal(t, got.CourseName, a.CourseName)
	}
}

func TestNewCourseAssignments_empty(t *testing.T) {
	got := NewCourseAssignments(Course{ID: 1, Name: "x"}, nil)
	assert.NotNil(t, got.Assignments)
	assert.Empty(t, got.Assignments)
}
