package course

import "time"

// noDueDate is the display sentinel for assignments without a usable due date.
const noDueDate = "No due date set"

// dueDateDisplayFormat renders due dates for calendar display in server
// local time.
const dueDateDisplayFormat = "Jan 2, 2006, 3:04 PM"

type (
	// Course is a course as returned by the Canvas API. Immutable once fetched.
	Course struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	// RemoteAssignment is the raw Canvas assignment payload. due_at is null
	// for undated assignments; it is kept as a string so a malformed value
	// degrades to "no due date" instead of failing the whole page decode.
	RemoteAssignment struct {
		Name  string  `json:"name"`
		DueAt *string `json:"due_at"`
	}

	// Assignment is the normalized, calendar-ready record. DueDate and
	// DueDateISO are always derived from the same parsed timestamp; they
	// cannot disagree.
	Assignment struct {
		Name       string  `json:"name"`
		DueDate    string  `json:"dueDate"`
		DueDateISO *string `json:"dueDateIso"`
		CourseID   int     `json:"courseId"`
		CourseName string  `json:"courseName"`
	}

	// CourseAssignments is the per-course unit of the aggregation response,
	// assembled fresh on every request.
	CourseAssignments struct {
		CourseID    int          `json:"courseId"`
		CourseName  string       `json:"courseName"`
		Assignments []Assignment `json:"assignments"`
	}
)

// NewAssignment normalizes a raw Canvas assignment for course c.
func NewAssignment(c Course, raw RemoteAssignment) Assignment {
	a := Assignment{
		Name:       raw.Name,
		DueDate:    noDueDate,
		CourseID:   c.ID,
		CourseName: c.Name,
	}
	if raw.DueAt == nil {
		return a
	}
	due, err := time.Parse(time.RFC3339, *raw.DueAt)
	if err != nil {
		return a
	}
	iso := due.Format(time.RFC3339)
	a.DueDate = due.Local().Format(dueDateDisplayFormat)
	a.DueDateISO = &iso
	return a
}

// NewCourseAssignments normalizes all raw assignments of course c,
// preserving the API return order.
func NewCourseAssignments(c Course, raw []RemoteAssignment) CourseAssignments {
	assignments := make([]Assignment, 0, len(raw))
	for _, r := range raw {
		assignments = append(assignments, NewAssignment(c, r))
	}
	return CourseAssignments{
		CourseID:    c.ID,
		CourseName:  c.Name,
		Assignments: assignments,
	}
}
