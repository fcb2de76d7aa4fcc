package view

import (
	"testing"

	"luminax_client/internal/model"
	"luminax_client/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func catalog() []model.Course {
	return []model.Course{
		{ID: "1", Title: "Python for Data Science", Category: "Data Science", Price: 49.99, Duration: "10 hours", Featured: true,
			Instructor: model.InstructorSummary{Name: "Ada Byron"}},
		{ID: "2", Title: "JavaScript Basics", Category: "Web Development", Price: 19.99, Duration: "5 hours", Featured: true,
			Instructor: model.InstructorSummary{Name: "Grace Python"}},
		{ID: "3", Title: "Advanced Python", Category: "Programming", Price: 89, Duration: "20h", Featured: false},
	}
}

func ids(courses []model.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterCourses_TitleSearch(t *testing.T) {
	courses := catalog()[:2]
	got := FilterCourses(courses, "python", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Python for Data Science", got[0].Title)
}

func TestFilterCourses_CategoryAndOrder(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, ids(FilterCourses(catalog(), "PYTHON", "")))
	assert.Equal(t, []string{"3"}, ids(FilterCourses(catalog(), "python", "Programming")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterCourses(catalog(), "", "")))
	assert.Empty(t, FilterCourses(catalog(), "", "Cooking"))
}

func TestFilterCoursesWithInstructor(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterCoursesWithInstructor(catalog(), "python", "")))
	assert.Equal(t, []string{"1", "3"}, ids(FilterCourses(catalog(), "python", "")))
}

func TestSearchResultsUsesSnapshot(t *testing.T) {
	s := state.Apply(state.Initial(), state.SetCourses{Courses: catalog()})
	s = state.Apply(s, state.SetSearchQuery{Query: "basics"})
	assert.Equal(t, []string{"2"}, ids(SearchResults(s)))
}

func TestFeatured(t *testing.T) {
	var courses []model.Course
	for i := 0; i < 10; i++ {
		courses = append(courses, model.Course{ID: string(rune('a' + i)), Featured: i%3 != 0})
	}
	got := Featured(courses, DefaultFeaturedLimit)
	assert.Equal(t, []string{"b", "c", "e", "f", "h", "i"}, ids(got))
	assert.Empty(t, Featured(courses, 0))
	assert.Empty(t, Featured(courses, -1))
}

func TestCategoriesAndFind(t *testing.T) {
	assert.Equal(t, []string{"Data Science", "Web Development", "Programming"}, Categories(catalog()))

	c, ok := FindCourse(catalog(), "2")
	assert.True(t, ok)
	assert.Equal(t, "JavaScript Basics", c.Title)
	_, ok = FindCourse(catalog(), "404")
	assert.False(t, ok)
}

func TestComputeTotals(t *testing.T) {
	cart := []model.CartItem{
		{CourseID: "1", Course: model.Course{ID: "1", Price: 49.99}},
		{CourseID: "2", Course: model.Course{ID: "2", Price: 19.99}},
	}
	totals := ComputeTotals(cart, DefaultTaxRate)
	assert.Equal(t, 2, totals.ItemCount)
	assert.InDelta(t, 69.98, totals.Subtotal, 1e-9)
	assert.InDelta(t, 6.998, totals.Tax, 1e-9)
	assert.InDelta(t, 76.978, totals.Total, 1e-9)

	d := totals.Display()
	assert.Equal(t, "$69.98", d.Subtotal)
	assert.Equal(t, "$7.00", d.Tax)
	assert.Equal(t, "$76.98", d.Total)

	empty := ComputeTotals(nil, DefaultTaxRate)
	assert.Equal(t, "$0.00", empty.Display().Total)
}

func TestDiscountPercent(t *testing.T) {
	_, ok := DiscountPercent(model.Course{Price: 10})
	assert.False(t, ok)
	_, ok = DiscountPercent(model.Course{Price: 10, OriginalPrice: price(10)})
	assert.False(t, ok)

	pct, ok := DiscountPercent(model.Course{Price: 49.99, OriginalPrice: price(99.99)})
	assert.True(t, ok)
	assert.Equal(t, 50, pct)
}

func TestRosterAndStats(t *testing.T) {
	s := state.Apply(state.Initial(), state.SetCourses{Courses: catalog()})
	s = state.Apply(s, state.SetEnrollments{Enrollments: []model.Enrollment{
		{ID: "e1", UserID: "U", CourseID: "1", Status: model.EnrollmentActive},
		{ID: "e2", UserID: "U", CourseID: "2", Status: model.EnrollmentCompleted, Progress: 100},
		{ID: "e3", UserID: "U", CourseID: "removed", Status: model.EnrollmentActive},
		{ID: "e4", UserID: "other", CourseID: "3", Status: model.EnrollmentActive},
	}})

	roster := Roster(s, "U")
	require.Len(t, roster, 2)
	assert.Equal(t, "e1", roster[0].Enrollment.ID)

	assert.Equal(t, RosterStats{Total: 2, Active: 1, Completed: 1, TotalHours: 15}, Stats(roster))
	assert.Empty(t, Roster(s, ""))
}

func TestFilterRoster(t *testing.T) {
	roster := []RosterEntry{
		{Course: catalog()[0], Enrollment: model.Enrollment{Status: model.EnrollmentActive}},
		{Course: catalog()[1], Enrollment: model.Enrollment{Status: model.EnrollmentCompleted}},
	}
	assert.Len(t, FilterRoster(roster, "", TabAll), 2)
	assert.Len(t, FilterRoster(roster, "python", TabAll), 2)
	assert.Len(t, FilterRoster(roster, "python", TabCompleted), 1)
	assert.Len(t, FilterRoster(roster, "javascript", TabActive), 0)
	assert.Equal(t, TabAll, ParseRosterTab("bogus"))
	assert.Equal(t, TabActive, ParseRosterTab("active"))
}

func TestIndexFlags(t *testing.T) {
	s := state.Apply(state.Initial(), state.SetUser{User: &model.User{ID: "U"}})
	s = state.Apply(s, state.SetEnrollments{Enrollments: []model.Enrollment{
		{UserID: "U", CourseID: "1"},
		{UserID: "other", CourseID: "2"},
	}})
	s = state.Apply(s, state.AddToCart{Course: catalog()[2]})

	idx := NewIndex(s)
	assert.Equal(t, CourseFlags{IsEnrolled: true, Status: StatusEnrolled}, idx.Flags("1"))
	assert.Equal(t, CourseFlags{Status: StatusAvailable}, idx.Flags("2"))
	assert.Equal(t, CourseFlags{IsInCart: true, Status: StatusInCart}, idx.Flags("3"))

	anonymous := NewIndex(state.Apply(s, state.SetUser{User: nil}))
	assert.False(t, anonymous.IsEnrolled("1"))
	assert.True(t, anonymous.IsInCart("3"))
}

func TestCurriculumNavToggle(t *testing.T) {
	var nav CurriculumNav
	nav = nav.Toggle("m1")
	assert.True(t, nav.IsExpanded("m1"))
	nav = nav.Toggle("m2")
	assert.False(t, nav.IsExpanded("m1"))
	assert.True(t, nav.IsExpanded("m2"))
	nav = nav.Toggle("m2")
	assert.Equal(t, CurriculumNav{}, nav)
	assert.False(t, nav.IsExpanded(""))
}

func TestCourseDetailTabs(t *testing.T) {
	c := model.Course{
		ID:            "1",
		Price:         10,
		OriginalPrice: price(20),
		Instructor:    model.InstructorSummary{ID: "i1", Name: "Ada"},
		Curriculum: []model.Module{
			{ID: "m1", Lessons: []model.Lesson{{ID: "l1"}, {ID: "l2"}}},
			{ID: "m2", Lessons: []model.Lesson{{ID: "l3"}}},
		},
	}
	reviews := []model.Review{{ID: "r1", CourseID: "1"}, {ID: "r2", CourseID: "2"}}
	idx := NewIndex(state.Initial())

	overview := NewCourseDetail(c, idx, ParseDetailTab(""), CurriculumNav{}, reviews)
	assert.Equal(t, TabOverview, overview.Tab)
	assert.True(t, overview.HasDiscount)
	assert.Equal(t, 50, overview.DiscountPercent)
	assert.Nil(t, overview.Curriculum)
	assert.Nil(t, overview.Reviews)

	curriculum := NewCourseDetail(c, idx, TabCurriculum, CurriculumNav{}.Toggle("m2"), reviews)
	require.Len(t, curriculum.Curriculum, 2)
	assert.False(t, curriculum.Curriculum[0].Expanded)
	assert.True(t, curriculum.Curriculum[1].Expanded)
	assert.Equal(t, 2, curriculum.Curriculum[0].LessonCount)

	instructor := NewCourseDetail(c, idx, TabInstructor, CurriculumNav{}, reviews)
	require.NotNil(t, instructor.Instructor)
	assert.Equal(t, "Ada", instructor.Instructor.Name)

	rv := NewCourseDetail(c, idx, TabReviews, CurriculumNav{}, reviews)
	require.Len(t, rv.Reviews, 1)
	assert.Equal(t, "r1", rv.Reviews[0].ID)
}
