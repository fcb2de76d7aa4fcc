package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentPaused    EnrollmentStatus = "paused"
)

type Enrollment struct {
	ID               string           `json:"id" yaml:"id"`
	UserID           string           `json:"userId" yaml:"userId"`
	CourseID         string           `json:"courseId" yaml:"courseId"`
	Progress         int              `json:"progress" yaml:"progress"` // 0-100
	CompletedLessons []string         `json:"completedLessons" yaml:"completedLessons"`
	EnrolledAt       time.Time        `json:"enrolledAt" yaml:"enrolledAt"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Status           EnrollmentStatus `json:"status" yaml:"status"`
}

// Consistent status=completed、completedAt 已设置、progress=100 三者同真同假
func (e *Enrollment) Consistent() bool {
	completed := e.Status == EnrollmentCompleted
	return completed == (e.CompletedAt != nil) && completed == (e.Progress == 100)
}

// HasCompleted 课时是否已完成
func (e *Enrollment) HasCompleted(lessonID string) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
