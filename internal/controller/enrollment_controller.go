package controller

import (
	"luminax_client/internal/service"
	"luminax_client/internal/util"
	"luminax_client/internal/view"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Enrollments *service.EnrollmentService
}

func NewEnrollmentController(enrollments *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments}
}

// MyCourses ?q=&tab=all|active|completed
func (c *EnrollmentController) MyCourses(ctx *gin.Context) {
	mine, err := c.Enrollments.MyCourses(ctx.Query("q"), view.ParseRosterTab(ctx.Query("tab")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, mine)
}

func (c *EnrollmentController) CompleteLesson(ctx *gin.Context) {
	e, err := c.Enrollments.CompleteLesson(ctx.Param("id"), ctx.Param("lessonId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, e)
}
