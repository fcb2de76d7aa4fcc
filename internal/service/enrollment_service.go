package service

import (
	"time"

	"luminax_client/internal/model"
	"luminax_client/internal/notify"
	"luminax_client/internal/state"
	"luminax_client/internal/util"
	"luminax_client/internal/view"
	"luminax_client/pkg/logger"

	"go.uber.org/zap"
)

// EnrollmentService 我的课程与学习进度
type EnrollmentService struct {
	Store    *state.Store
	Notifier notify.Notifier
	Clock    func() time.Time
}

func NewEnrollmentService(store *state.Store, notifier notify.Notifier) *EnrollmentService {
	return &EnrollmentService{Store: store, Notifier: notifier, Clock: time.Now}
}

type MyCourses struct {
	Entries []view.RosterEntry `json:"entries"`
	Stats   view.RosterStats   `json:"stats"`
	Tab     view.RosterTab     `json:"tab"`
	Query   string             `json:"query"`
}

// MyCourses 统计基于完整名单，筛选只影响列表
func (s *EnrollmentService) MyCourses(query string, tab view.RosterTab) (MyCourses, error) {
	snap := s.Store.State()
	if snap.User == nil {
		return MyCourses{}, util.ErrAuthRequired
	}
	roster := view.Roster(snap, snap.User.ID)
	entries := view.FilterRoster(roster, query, tab)
	if entries == nil {
		entries = []view.RosterEntry{}
	}
	return MyCourses{
		Entries: entries,
		Stats:   view.Stats(roster),
		Tab:     tab,
		Query:   query,
	}, nil
}

func (s *EnrollmentService) find(snap state.State, enrollmentID string) (model.Enrollment, bool) {
	for _, e := range snap.Enrollments {
		if e.ID == enrollmentID {
			return e, true
		}
	}
	return model.Enrollment{}, false
}

// CompleteLesson 标记课时完成，进度、状态与完成时间同步更新
func (s *EnrollmentService) CompleteLesson(enrollmentID, lessonID string) (model.Enrollment, error) {
	snap := s.Store.State()
	if snap.User == nil {
		return model.Enrollment{}, util.ErrAuthRequired
	}

	e, ok := s.find(snap, enrollmentID)
	if !ok || e.UserID != snap.User.ID {
		return model.Enrollment{}, util.ErrEnrollmentNotFound
	}
	course, ok := view.FindCourse(snap.Courses, e.CourseID)
	if !ok {
		return model.Enrollment{}, util.ErrCourseNotFound
	}
	if !course.HasLesson(lessonID) {
		return model.Enrollment{}, util.ErrLessonNotFound
	}

	next := s.Store.Dispatch(state.CompleteLesson{
		EnrollmentID: enrollmentID,
		LessonID:     lessonID,
		TotalLessons: course.TotalLessons(),
		At:           s.Clock(),
	})
	updated, _ := s.find(next, enrollmentID)

	logger.Log.Info("Lesson completed",
		zap.String("enrollment", enrollmentID),
		zap.String("lesson", lessonID),
		zap.Int("progress", updated.Progress))
	if updated.Status == model.EnrollmentCompleted && e.Status != model.EnrollmentCompleted {
		s.Notifier.Success("Congratulations! You completed " + course.Title)
	} else {
		s.Notifier.Success("Lesson marked as complete")
	}
	return updated, nil
}
