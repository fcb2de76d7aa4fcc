package state

import (
	"luminax_client/internal/model"
)

// Apply 纯函数归约：相同的 (state, action) 总是得到相同结果，未识别的动作原样返回
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		s.User = a.User
	case SetCourses:
		s.Courses = a.Courses
	case AddToCart:
		return addToCart(s, a.Course)
	case RemoveFromCart:
		return removeFromCart(s, a.CourseID)
	case ClearCart:
		if len(s.Cart) == 0 {
			return s
		}
		s.Cart = nil
	case SetEnrollments:
		s.Enrollments = a.Enrollments
	case AddEnrollment:
		return addEnrollment(s, a.Enrollment)
	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	case SetSearchQuery:
		s.SearchQuery = a.Query
	case SetSelectedCategory:
		s.SelectedCategory = a.Category
	case SetLoading:
		s.Loading = a.Loading
	case CompleteLesson:
		return completeLesson(s, a)
	}
	return s
}

func addToCart(s State, course model.Course) State {
	// 已在购物车或当前用户已选课时不做任何修改
	if s.inCart(course.ID) || s.enrolled(s.UserID(), course.ID) {
		return s
	}
	cart := make([]model.CartItem, len(s.Cart), len(s.Cart)+1)
	copy(cart, s.Cart)
	s.Cart = append(cart, model.CartItem{CourseID: course.ID, Course: course})
	return s
}

func removeFromCart(s State, courseID string) State {
	if !s.inCart(courseID) {
		return s
	}
	cart := make([]model.CartItem, 0, len(s.Cart)-1)
	for _, item := range s.Cart {
		if item.CourseID != courseID {
			cart = append(cart, item)
		}
	}
	if len(cart) == 0 {
		cart = nil
	}
	s.Cart = cart
	return s
}

func addEnrollment(s State, e model.Enrollment) State {
	enrollments := make([]model.Enrollment, len(s.Enrollments), len(s.Enrollments)+1)
	copy(enrollments, s.Enrollments)
	s.Enrollments = append(enrollments, e)

	// 当前用户选课后该课程不能继续留在购物车
	if s.User != nil && e.UserID == s.User.ID {
		return removeFromCart(s, e.CourseID)
	}
	return s
}

func completeLesson(s State, a CompleteLesson) State {
	if a.TotalLessons <= 0 {
		return s
	}
	idx := -1
	for i := range s.Enrollments {
		if s.Enrollments[i].ID == a.EnrollmentID {
			idx = i
			break
		}
	}
	if idx < 0 || s.Enrollments[idx].HasCompleted(a.LessonID) {
		return s
	}

	e := s.Enrollments[idx]
	lessons := make([]string, len(e.CompletedLessons), len(e.CompletedLessons)+1)
	copy(lessons, e.CompletedLessons)
	e.CompletedLessons = append(lessons, a.LessonID)

	e.Progress = len(e.CompletedLessons) * 100 / a.TotalLessons
	if e.Progress >= 100 {
		at := a.At
		e.Progress = 100
		e.Status = model.EnrollmentCompleted
		e.CompletedAt = &at
	}

	enrollments := make([]model.Enrollment, len(s.Enrollments))
	copy(enrollments, s.Enrollments)
	enrollments[idx] = e
	s.Enrollments = enrollments
	return s
}
