package state

import (
	"time"

	"luminax_client/internal/model"
)

// Action 封闭的动作集合，只有本包内的类型可以实现
type Action interface {
	Name() string
	isAction()
}

type SetUser struct{ User *model.User }

type SetCourses struct{ Courses []model.Course }

type AddToCart struct{ Course model.Course }

type RemoveFromCart struct{ CourseID string }

type ClearCart struct{}

type SetEnrollments struct{ Enrollments []model.Enrollment }

type AddEnrollment struct{ Enrollment model.Enrollment }

type ToggleDarkMode struct{}

type SetSearchQuery struct{ Query string }

type SetSelectedCategory struct{ Category string }

type SetLoading struct{ Loading bool }

// CompleteLesson 记录课时完成。At 由调用方给出，归约本身不读时钟
type CompleteLesson struct {
	EnrollmentID string
	LessonID     string
	TotalLessons int
	At           time.Time
}

func (SetUser) Name() string             { return "SET_USER" }
func (SetCourses) Name() string          { return "SET_COURSES" }
func (AddToCart) Name() string           { return "ADD_TO_CART" }
func (RemoveFromCart) Name() string      { return "REMOVE_FROM_CART" }
func (ClearCart) Name() string           { return "CLEAR_CART" }
func (SetEnrollments) Name() string      { return "SET_ENROLLMENTS" }
func (AddEnrollment) Name() string       { return "ADD_ENROLLMENT" }
func (ToggleDarkMode) Name() string      { return "TOGGLE_DARK_MODE" }
func (SetSearchQuery) Name() string      { return "SET_SEARCH_QUERY" }
func (SetSelectedCategory) Name() string { return "SET_SELECTED_CATEGORY" }
func (SetLoading) Name() string          { return "SET_LOADING" }
func (CompleteLesson) Name() string      { return "COMPLETE_LESSON" }

func (SetUser) isAction()             {}
func (SetCourses) isAction()          {}
func (AddToCart) isAction()           {}
func (RemoveFromCart) isAction()      {}
func (ClearCart) isAction()           {}
func (SetEnrollments) isAction()      {}
func (AddEnrollment) isAction()       {}
func (ToggleDarkMode) isAction()      {}
func (SetSearchQuery) isAction()      {}
func (SetSelectedCategory) isAction() {}
func (SetLoading) isAction()          {}
func (CompleteLesson) isAction()      {}
