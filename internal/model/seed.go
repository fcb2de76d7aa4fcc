package model

// Seed 启动时一次性加载的目录与选课数据
type Seed struct {
	Users       []User       `json:"users" yaml:"users"`
	Courses     []Course     `json:"courses" yaml:"courses"`
	Enrollments []Enrollment `json:"enrollments" yaml:"enrollments"`
	Reviews     []Review     `json:"reviews" yaml:"reviews"`
	Categories  []string     `json:"categories" yaml:"categories"`
}
