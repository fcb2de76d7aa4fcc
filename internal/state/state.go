// Package state 应用状态容器：唯一的可变聚合，所有修改都经过 Apply。
package state

import "luminax_client/internal/model"

// State 某一时刻的状态快照。快照之间共享底层切片，任何修改都必须产生新切片。
type State struct {
	User             *model.User        `json:"user"`
	Courses          []model.Course     `json:"courses"`
	Cart             []model.CartItem   `json:"cart"`
	Enrollments      []model.Enrollment `json:"enrollments"`
	DarkMode         bool               `json:"darkMode"`
	SearchQuery      string             `json:"searchQuery"`
	SelectedCategory string             `json:"selectedCategory"`
	Loading          bool               `json:"loading"`
}

// Initial 进程启动时的空状态
func Initial() State {
	return State{}
}

// UserID 当前用户ID，未登录时为空
func (s State) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

func (s State) inCart(courseID string) bool {
	for _, item := range s.Cart {
		if item.CourseID == courseID {
			return true
		}
	}
	return false
}

func (s State) enrolled(userID, courseID string) bool {
	if userID == "" {
		return false
	}
	for _, e := range s.Enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return true
		}
	}
	return false
}
