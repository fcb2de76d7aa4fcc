// Package view 从状态快照计算的只读投影，不持有也不修改任何状态。
package view

import (
	"strings"

	"luminax_client/internal/model"
	"luminax_client/internal/state"
)

const DefaultFeaturedLimit = 6

// FilterCourses 标题不区分大小写的子串匹配，分类非空时还需分类相等，保持目录顺序
func FilterCourses(courses []model.Course, query, category string) []model.Course {
	return filter(courses, query, category, false)
}

// FilterCoursesWithInstructor 同 FilterCourses，但讲师姓名匹配也算命中
func FilterCoursesWithInstructor(courses []model.Course, query, category string) []model.Course {
	return filter(courses, query, category, true)
}

func filter(courses []model.Course, query, category string, instructor bool) []model.Course {
	q := strings.ToLower(query)
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if category != "" && c.Category != category {
			continue
		}
		if !matches(c, q, instructor) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c model.Course, lowerQuery string, instructor bool) bool {
	if lowerQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Title), lowerQuery) {
		return true
	}
	return instructor && strings.Contains(strings.ToLower(c.Instructor.Name), lowerQuery)
}

// SearchResults 使用快照中的搜索词和分类过滤目录
func SearchResults(s state.State) []model.Course {
	return FilterCourses(s.Courses, s.SearchQuery, s.SelectedCategory)
}

// Featured 按目录顺序取前 limit 门推荐课程
func Featured(courses []model.Course, limit int) []model.Course {
	if limit < 0 {
		limit = 0
	}
	out := make([]model.Course, 0, limit)
	for _, c := range courses {
		if len(out) >= limit {
			break
		}
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

// FindCourse 按ID查找课程
func FindCourse(courses []model.Course, id string) (model.Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// Categories 目录中出现过的分类，按首次出现顺序
func Categories(courses []model.Course) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range courses {
		if c.Category == "" {
			continue
		}
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}
