package service

import (
	"context"
	"time"

	"luminax_client/internal/model"
	"luminax_client/internal/notify"
	"luminax_client/internal/state"
	"luminax_client/internal/util"
	"luminax_client/internal/view"
	"luminax_client/pkg/logger"

	"go.uber.org/zap"
)

// CartService 购物车业务规则：加入前依次检查登录、已选课、已在购物车
type CartService struct {
	Store    *state.Store
	Notifier notify.Notifier
	TaxRate  float64
	Clock    func() time.Time
	NewID    func() string
}

func NewCartService(store *state.Store, notifier notify.Notifier, taxRate float64) *CartService {
	return &CartService{
		Store:    store,
		Notifier: notifier,
		TaxRate:  taxRate,
		Clock:    time.Now,
		NewID:    model.GenerateUUID,
	}
}

func (s *CartService) reject(err error, message string) error {
	logger.Log.Info("cart action rejected", zap.Error(err))
	s.Notifier.Error(message)
	return err
}

// AddToCart 规则检查全部通过才派发 AddToCart
func (s *CartService) AddToCart(course model.Course) error {
	snap := s.Store.State()
	if snap.User == nil {
		return s.reject(util.ErrAuthRequired, "Please login to add courses to cart")
	}

	idx := view.NewIndex(snap)
	if idx.IsEnrolled(course.ID) {
		return s.reject(util.ErrAlreadyEnrolled, "You are already enrolled in this course")
	}
	if idx.IsInCart(course.ID) {
		return s.reject(util.ErrAlreadyInCart, "Course is already in your cart")
	}

	s.Store.Dispatch(state.AddToCart{Course: course})
	s.Notifier.Success("Course added to cart")
	return nil
}

// AddToCartByID 课程不存在时不发通知，由展示层显示占位页
func (s *CartService) AddToCartByID(courseID string) error {
	course, ok := view.FindCourse(s.Store.State().Courses, courseID)
	if !ok {
		return util.ErrCourseNotFound
	}
	return s.AddToCart(course)
}

// EnrollNow 立即报名：未在购物车时加入，随后进入结算
func (s *CartService) EnrollNow(courseID string) error {
	snap := s.Store.State()
	course, ok := view.FindCourse(snap.Courses, courseID)
	if !ok {
		return util.ErrCourseNotFound
	}
	if snap.User == nil {
		return s.reject(util.ErrAuthRequired, "Please login to enroll in courses")
	}

	idx := view.NewIndex(snap)
	if idx.IsEnrolled(courseID) {
		return s.reject(util.ErrAlreadyEnrolled, "You are already enrolled in this course")
	}
	if !idx.IsInCart(courseID) {
		s.Store.Dispatch(state.AddToCart{Course: course})
	}
	return nil
}

// Remove 不在购物车中时同样视为成功
func (s *CartService) Remove(courseID string) {
	s.Store.Dispatch(state.RemoveFromCart{CourseID: courseID})
	s.Notifier.Success("Course removed from cart")
}

func (s *CartService) Clear() {
	s.Store.Dispatch(state.ClearCart{})
}

func (s *CartService) Items() []model.CartItem {
	return s.Store.State().Cart
}

func (s *CartService) Totals() view.Totals {
	return view.ComputeTotals(s.Store.State().Cart, s.TaxRate)
}

// Checkout 购物车中每门课生成一条选课记录，然后清空购物车
func (s *CartService) Checkout(ctx context.Context) ([]model.Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := s.Store.State()
	if snap.User == nil {
		return nil, s.reject(util.ErrAuthRequired, "Please login to enroll in courses")
	}
	if len(snap.Cart) == 0 {
		return nil, s.reject(util.ErrEmptyCart, "Your cart is empty")
	}

	idx := view.NewIndex(snap)
	now := s.Clock()
	var created []model.Enrollment
	for _, item := range snap.Cart {
		if idx.IsEnrolled(item.CourseID) {
			continue
		}
		e := model.Enrollment{
			ID:               s.NewID(),
			UserID:           snap.User.ID,
			CourseID:         item.CourseID,
			Progress:         0,
			CompletedLessons: []string{},
			EnrolledAt:       now,
			Status:           model.EnrollmentActive,
		}
		s.Store.Dispatch(state.AddEnrollment{Enrollment: e})
		created = append(created, e)
	}
	s.Store.Dispatch(state.ClearCart{})

	logger.Log.Info("checkout completed", zap.String("user", snap.User.ID), zap.Int("enrollments", len(created)))
	s.Notifier.Success("Enrollment successful! Start learning now.")
	return created, nil
}
