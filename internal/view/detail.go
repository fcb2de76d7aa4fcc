package view

import (
	"luminax_client/internal/model"
)

type ModuleView struct {
	model.Module
	Expanded    bool `json:"expanded"`
	LessonCount int  `json:"lessonCount"`
}

// CourseDetail 课程详情页，只计算当前标签需要的子视图
type CourseDetail struct {
	Course          model.Course             `json:"course"`
	Flags           CourseFlags              `json:"flags"`
	DiscountPercent int                      `json:"discountPercent,omitempty"`
	HasDiscount     bool                     `json:"hasDiscount"`
	Tab             DetailTab                `json:"tab"`
	Navigation      CurriculumNav            `json:"navigation"`
	Curriculum      []ModuleView             `json:"curriculum,omitempty"`
	Instructor      *model.InstructorSummary `json:"instructor,omitempty"`
	Reviews         []model.Review           `json:"reviews,omitempty"`
}

func NewCourseDetail(c model.Course, idx *Index, tab DetailTab, nav CurriculumNav, reviews []model.Review) CourseDetail {
	d := CourseDetail{
		Course:     c,
		Flags:      idx.Flags(c.ID),
		Tab:        tab,
		Navigation: nav,
	}
	d.DiscountPercent, d.HasDiscount = DiscountPercent(c)

	switch tab {
	case TabCurriculum:
		d.Curriculum = make([]ModuleView, 0, len(c.Curriculum))
		for _, m := range c.Curriculum {
			d.Curriculum = append(d.Curriculum, ModuleView{
				Module:      m,
				Expanded:    nav.IsExpanded(m.ID),
				LessonCount: len(m.Lessons),
			})
		}
	case TabInstructor:
		instructor := c.Instructor
		d.Instructor = &instructor
	case TabReviews:
		d.Reviews = CourseReviews(reviews, c.ID)
	}
	return d
}

// CourseReviews 过滤出某门课程的评价
func CourseReviews(reviews []model.Review, courseID string) []model.Review {
	var out []model.Review
	for _, r := range reviews {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out
}
