package course

import (
	"fmt"
	"strings"
	"time"
)

// crossTermCourse is kept regardless of the active term; it spans semesters
// in the source account.
const crossTermCourse = "Organization of Programming Languages"

// TermLabel returns the academic term label for the given date:
// Jan-May "Spring", Jun-Sep "Summer", Oct-Dec "Fall", each suffixed with
// the calendar year.
func TermLabel(now time.Time) string {
	year := now.Year()
	switch m := now.Month(); {
	case m <= time.May:
		return fmt.Sprintf("Spring %d", year)
	case m <= time.September:
		return fmt.Sprintf("Summer %d", year)
	default:
		return fmt.Sprintf("Fall %d", year)
	}
}

// Selector decides which fetched courses take part in the aggregation.
// It must preserve input order and never mutate its input.
type Selector interface {
	Select(courses []Course, now time.Time) []Course
}

// TermSelector keeps courses whose name contains the active term label or
// one of the allow-listed names. Plain substring matching: a course named
// for another term that merely mentions the label is kept too. Intentional;
// it mirrors how the source account names its courses.
type TermSelector struct {
	allowList []string
}

var _ Selector = (*TermSelector)(nil)

// NewTermSelector builds a selector with the given allow-listed course
// names; with none given, the default cross-term course is allow-listed.
func NewTermSelector(allow ...string) *TermSelector {
	if len(allow) == 0 {
		allow = []string{crossTermCourse}
	}
	return &TermSelector{allowList: allow}
}

func (s *TermSelector) Select(courses []Course, now time.Time) []Course {
	label := TermLabel(now)
	kept := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Name == "" {
			continue
		}
		if strings.Contains(c.Name, label) || s.allowed(c.Name) {
			kept = append(kept, c)
		}
	}
	return kept
}

func (s *TermSelector) allowed(name string) bool {
	for _, a := range s.allowList {
		if strings.Contains(name, a) {
			return true
		}
	}
	return false
}
