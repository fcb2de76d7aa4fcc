package model

import (
	"time"
)

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

type User struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	Avatar    string    `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Role      UserRole  `json:"role" yaml:"role"`
	Bio       string    `json:"bio,omitempty" yaml:"bio,omitempty"`
	Website   string    `json:"website,omitempty" yaml:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Valid 角色是否在允许范围内
func (r UserRole) Valid() bool {
	switch r {
	case Student, Instructor, Admin:
		return true
	}
	return false
}
