package view

import (
	"strings"

	"luminax_client/internal/model"
	"luminax_client/internal/state"
	"luminax_client/internal/util"
)

type RosterEntry struct {
	Course     model.Course     `json:"course"`
	Enrollment model.Enrollment `json:"enrollment"`
}

type RosterStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Completed  int `json:"completed"`
	TotalHours int `json:"totalHours"`
}

// Roster 用户的选课记录与课程关联，目录中已不存在的课程直接丢弃
func Roster(s state.State, userID string) []RosterEntry {
	if userID == "" {
		return nil
	}
	byID := make(map[string]model.Course, len(s.Courses))
	for _, c := range s.Courses {
		if _, ok := byID[c.ID]; !ok {
			byID[c.ID] = c
		}
	}

	var out []RosterEntry
	for _, e := range s.Enrollments {
		if e.UserID != userID {
			continue
		}
		c, ok := byID[e.CourseID]
		if !ok {
			continue
		}
		out = append(out, RosterEntry{Course: c, Enrollment: e})
	}
	return out
}

// Stats 总时长取每门课 duration 开头的整数小时数
func Stats(roster []RosterEntry) RosterStats {
	st := RosterStats{Total: len(roster)}
	for _, r := range roster {
		switch r.Enrollment.Status {
		case model.EnrollmentActive:
			st.Active++
		case model.EnrollmentCompleted:
			st.Completed++
		}
		st.TotalHours += util.LeadingInt(r.Course.Duration)
	}
	return st
}

// RosterTab 我的课程页的标签
type RosterTab string

const (
	TabAll       RosterTab = "all"
	TabActive    RosterTab = "active"
	TabCompleted RosterTab = "completed"
)

func ParseRosterTab(s string) RosterTab {
	switch RosterTab(s) {
	case TabActive, TabCompleted:
		return RosterTab(s)
	}
	return TabAll
}

// FilterRoster 标题或讲师姓名匹配，并按标签过滤状态
func FilterRoster(roster []RosterEntry, query string, tab RosterTab) []RosterEntry {
	q := strings.ToLower(query)
	out := make([]RosterEntry, 0, len(roster))
	for _, r := range roster {
		if !matches(r.Course, q, true) {
			continue
		}
		switch tab {
		case TabActive:
			if r.Enrollment.Status != model.EnrollmentActive {
				continue
			}
		case TabCompleted:
			if r.Enrollment.Status != model.EnrollmentCompleted {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
