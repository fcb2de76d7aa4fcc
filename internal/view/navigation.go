package view

// CurriculumNav 课程大纲中当前展开的模块，空字符串表示全部折叠
type CurriculumNav struct {
	Expanded string `json:"expanded"`
}

// Toggle 再次选择已展开的模块会将其折叠，选择其他模块则展开该模块
func (n CurriculumNav) Toggle(moduleID string) CurriculumNav {
	if n.Expanded == moduleID {
		return CurriculumNav{}
	}
	return CurriculumNav{Expanded: moduleID}
}

func (n CurriculumNav) IsExpanded(moduleID string) bool {
	return moduleID != "" && n.Expanded == moduleID
}

type DetailTab string

const (
	TabOverview   DetailTab = "overview"
	TabCurriculum DetailTab = "curriculum"
	TabInstructor DetailTab = "instructor"
	TabReviews    DetailTab = "reviews"
)

// ParseDetailTab 无法识别时回到概览页
func ParseDetailTab(s string) DetailTab {
	switch DetailTab(s) {
	case TabCurriculum, TabInstructor, TabReviews:
		return DetailTab(s)
	}
	return TabOverview
}
