package model

import "time"

type Review struct {
	ID         string    `json:"id" yaml:"id"`
	UserID     string    `json:"userId" yaml:"userId"`
	CourseID   string    `json:"courseId" yaml:"courseId"`
	Rating     int       `json:"rating" yaml:"rating"`
	Comment    string    `json:"comment" yaml:"comment"`
	UserName   string    `json:"userName" yaml:"userName"`
	UserAvatar string    `json:"userAvatar" yaml:"userAvatar"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
}
