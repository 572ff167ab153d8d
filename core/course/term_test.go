package course

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func TestTermLabel(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"january is spring", date(2024, time.January), "Spring 2024"},
		{"may is spring", date(2024, time.May), "Spring 2024"},
		{"june is summer", date(2024, time.June), "Summer 2024"},
		{"september is summer", date(2024, time.September), "Summer 2024"},
		{"october is fall", date(2024, time.October), "Fall 2024"},
		{"november is fall", date(2024, time.November), "Fall 2024"},
		{"december is fall", date(2025, time.December), "Fall 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TermLabel(tt.now))
		})
	}
}

func TestTermSelector_Select(t *testing.T) {
	now := date(2024, time.November) // "Fall 2024"
	courses := []Course{
		{ID: 1, Name: "CS101 Fall 2024"},
		{ID: 2, Name: "CS102 Spring 2024"},
		{ID: 3, Name: "CMSC330 Organization of Programming Languages"},
		{ID: 4, Name: ""},
		{ID: 5, Name: "MATH140 Fall 2024"},
	}

	sel := NewTermSelector()
	got := sel.Select(courses, now)

	want := []Course{courses[0], courses[2], courses[4]}
	assert.Equal(t, want, got, "keeps term matches and allow-listed courses, in input order")

	// filtering is idempotent
	assert.Equal(t, got, sel.Select(got, now))

	// input not mutated
	assert.Equal(t, "CS102 Spring 2024", courses[1].Name)
}

func TestTermSelector_Select_customAllowList(t *testing.T) {
	now := date(2024, time.November)
	courses := []Course{
		{ID: 1, Name: "Advanced Basket Weaving"},
		{ID: 2, Name: "CMSC330 Organization of Programming Languages"},
	}

	sel := NewTermSelector("Basket Weaving")
	got := sel.Select(courses, now)

	assert.Equal(t, []Course{courses[0]}, got, "custom allow-list replaces the default")
}

func TestTermSelector_Select_noMatches(t *testing.T) {
	sel := NewTermSelector()
	got := sel.Select([]Course{{ID: 1, Name: "CS102 Spring 2024"}}, date(2024, time.November))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
