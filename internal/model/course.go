package model

import "time"

type CourseLevel string

const (
	Beginner     CourseLevel = "Beginner"
	Intermediate CourseLevel = "Intermediate"
	Advanced     CourseLevel = "Advanced"
)

type LessonType string

const (
	LessonVideo LessonType = "video"
	LessonText  LessonType = "text"
	LessonQuiz  LessonType = "quiz"
)

// InstructorSummary 课程内嵌的讲师快照，不随讲师资料更新
type InstructorSummary struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
	Bio    string `json:"bio" yaml:"bio"`
}

type Resource struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Type  string `json:"type" yaml:"type"` // pdf, zip, link
	URL   string `json:"url" yaml:"url"`
}

type Lesson struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Duration  string     `json:"duration" yaml:"duration"`
	Type      LessonType `json:"type" yaml:"type"`
	VideoURL  string     `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
	Content   string     `json:"content,omitempty" yaml:"content,omitempty"`
	Resources []Resource `json:"resources,omitempty" yaml:"resources,omitempty"`
}

type Module struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Duration string   `json:"duration" yaml:"duration"`
	Lessons  []Lesson `json:"lessons" yaml:"lessons"`
}

type Course struct {
	ID               string            `json:"id" yaml:"id"`
	Title            string            `json:"title" yaml:"title"`
	Description      string            `json:"description" yaml:"description"`
	ShortDescription string            `json:"shortDescription" yaml:"shortDescription"`
	Thumbnail        string            `json:"thumbnail" yaml:"thumbnail"`
	Price            float64           `json:"price" yaml:"price"`
	OriginalPrice    *float64          `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Category         string            `json:"category" yaml:"category"`
	Level            CourseLevel       `json:"level" yaml:"level"`
	Duration         string            `json:"duration" yaml:"duration"` // 例如 "42 hours"
	LessonsCount     int               `json:"lessonsCount" yaml:"lessonsCount"`
	StudentsCount    int               `json:"studentsCount" yaml:"studentsCount"`
	Rating           float64           `json:"rating" yaml:"rating"`
	ReviewsCount     int               `json:"reviewsCount" yaml:"reviewsCount"`
	Instructor       InstructorSummary `json:"instructor" yaml:"instructor"`
	WhatYouWillLearn []string          `json:"whatYouWillLearn,omitempty" yaml:"whatYouWillLearn,omitempty"`
	Requirements     []string          `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Curriculum       []Module          `json:"curriculum" yaml:"curriculum"`
	Tags             []string          `json:"tags" yaml:"tags"`
	Featured         bool              `json:"featured" yaml:"featured"`
	CreatedAt        time.Time         `json:"createdAt" yaml:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt" yaml:"updatedAt"`
}

// TotalLessons 统计课程大纲中的课时数量
func (c *Course) TotalLessons() int {
	n := 0
	for _, m := range c.Curriculum {
		n += len(m.Lessons)
	}
	return n
}

// HasLesson 判断课时是否属于该课程
func (c *Course) HasLesson(lessonID string) bool {
	for _, m := range c.Curriculum {
		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return true
			}
		}
	}
	return false
}
