package view

import "luminax_client/internal/state"

// CourseStatus 当前用户视角下单门课程的购物车/选课状态
type CourseStatus string

const (
	StatusAvailable CourseStatus = "available"
	StatusInCart    CourseStatus = "in_cart"
	StatusEnrolled  CourseStatus = "enrolled"
)

type CourseFlags struct {
	IsEnrolled bool         `json:"isEnrolled"`
	IsInCart   bool         `json:"isInCart"`
	Status     CourseStatus `json:"status"`
}

type enrollmentKey struct {
	userID   string
	courseID string
}

// Index 针对一个快照建立的查找表，课程列表渲染时避免逐条扫描账本
type Index struct {
	userID   string
	cart     map[string]struct{}
	enrolled map[enrollmentKey]struct{}
}

func NewIndex(s state.State) *Index {
	idx := &Index{
		userID:   s.UserID(),
		cart:     make(map[string]struct{}, len(s.Cart)),
		enrolled: make(map[enrollmentKey]struct{}, len(s.Enrollments)),
	}
	for _, item := range s.Cart {
		idx.cart[item.CourseID] = struct{}{}
	}
	for _, e := range s.Enrollments {
		idx.enrolled[enrollmentKey{e.UserID, e.CourseID}] = struct{}{}
	}
	return idx
}

// IsEnrolled 未登录时总是 false
func (i *Index) IsEnrolled(courseID string) bool {
	if i.userID == "" {
		return false
	}
	_, ok := i.enrolled[enrollmentKey{i.userID, courseID}]
	return ok
}

func (i *Index) IsInCart(courseID string) bool {
	_, ok := i.cart[courseID]
	return ok
}

func (i *Index) Flags(courseID string) CourseFlags {
	f := CourseFlags{
		IsEnrolled: i.IsEnrolled(courseID),
		IsInCart:   i.IsInCart(courseID),
		Status:     StatusAvailable,
	}
	switch {
	case f.IsEnrolled:
		f.Status = StatusEnrolled
	case f.IsInCart:
		f.Status = StatusInCart
	}
	return f
}
