package model

// CartItem 加入购物车时的课程快照
type CartItem struct {
	CourseID string `json:"courseId"`
	Course   Course `json:"course"`
}
