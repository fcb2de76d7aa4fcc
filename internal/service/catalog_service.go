package service

import (
	"context"
	"fmt"
	"sync"

	"luminax_client/internal/model"
	"luminax_client/internal/repository"
	"luminax_client/internal/state"
	"luminax_client/internal/util"
	"luminax_client/internal/view"
	"luminax_client/pkg/logger"
	"luminax_client/pkg/tracing"

	"go.uber.org/zap"
)

// CatalogService 课程目录：加载种子、搜索、推荐与详情
type CatalogService struct {
	Store         *state.Store
	Seeds         repository.SeedRepository
	Users         *repository.UserRepository
	FeaturedLimit int

	mu      sync.RWMutex
	reviews []model.Review
}

func NewCatalogService(store *state.Store, seeds repository.SeedRepository, users *repository.UserRepository, featuredLimit int) *CatalogService {
	return &CatalogService{
		Store:         store,
		Seeds:         seeds,
		Users:         users,
		FeaturedLimit: featuredLimit,
	}
}

func (s *CatalogService) load(ctx context.Context) (*model.Seed, error) {
	ctx, span := tracing.Start(ctx, "catalog.load")
	defer span.End()

	seed, err := s.Seeds.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog seed: %w", err)
	}

	s.Store.Dispatch(state.SetCourses{Courses: seed.Courses})
	s.Users.Replace(seed.Users)
	s.mu.Lock()
	s.reviews = seed.Reviews
	s.mu.Unlock()
	return seed, nil
}

// Bootstrap 启动时加载目录和种子选课记录
func (s *CatalogService) Bootstrap(ctx context.Context) error {
	seed, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.Store.Dispatch(state.SetEnrollments{Enrollments: seed.Enrollments})
	logger.Log.Info("Catalog loaded",
		zap.Int("courses", len(seed.Courses)),
		zap.Int("users", len(seed.Users)),
		zap.Int("enrollments", len(seed.Enrollments)))
	return nil
}

// Reload 种子文件变化后重新加载目录，保留本进程内的选课记录
func (s *CatalogService) Reload(ctx context.Context) error {
	seed, err := s.load(ctx)
	if err != nil {
		logger.Log.Error("Catalog reload failed", zap.Error(err))
		return err
	}
	logger.Log.Info("Catalog reloaded", zap.Int("courses", len(seed.Courses)))
	return nil
}

func (s *CatalogService) Courses() []model.Course {
	return s.Store.State().Courses
}

func (s *CatalogService) Featured() []model.Course {
	return view.Featured(s.Store.State().Courses, s.FeaturedLimit)
}

// Search 使用快照中的搜索词和分类
func (s *CatalogService) Search() []model.Course {
	return view.SearchResults(s.Store.State())
}

// SearchWithInstructor 讲师姓名匹配也算命中
func (s *CatalogService) SearchWithInstructor() []model.Course {
	snap := s.Store.State()
	return view.FilterCoursesWithInstructor(snap.Courses, snap.SearchQuery, snap.SelectedCategory)
}

func (s *CatalogService) SetSearchQuery(q string) {
	s.Store.Dispatch(state.SetSearchQuery{Query: q})
}

func (s *CatalogService) SetSelectedCategory(category string) {
	s.Store.Dispatch(state.SetSelectedCategory{Category: category})
}

func (s *CatalogService) Categories() []string {
	return view.Categories(s.Store.State().Courses)
}

func (s *CatalogService) Course(id string) (model.Course, error) {
	c, ok := view.FindCourse(s.Store.State().Courses, id)
	if !ok {
		return model.Course{}, util.ErrCourseNotFound
	}
	return c, nil
}

func (s *CatalogService) Reviews(courseID string) []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return view.CourseReviews(s.reviews, courseID)
}

func (s *CatalogService) Flags(courseID string) view.CourseFlags {
	return view.NewIndex(s.Store.State()).Flags(courseID)
}

// Detail 课程详情，标签和展开状态由调用方持有
func (s *CatalogService) Detail(id string, tab view.DetailTab, nav view.CurriculumNav) (view.CourseDetail, error) {
	snap := s.Store.State()
	c, ok := view.FindCourse(snap.Courses, id)
	if !ok {
		return view.CourseDetail{}, util.ErrCourseNotFound
	}
	return view.NewCourseDetail(c, view.NewIndex(snap), tab, nav, s.Reviews(id)), nil
}
