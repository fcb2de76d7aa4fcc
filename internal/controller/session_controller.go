package controller

import (
	"luminax_client/internal/model"
	"luminax_client/internal/service"
	"luminax_client/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Session *service.SessionService
}

func NewSessionController(session *service.SessionService) *SessionController {
	return &SessionController{Session: session}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DemoLoginRequest struct {
	Role string `json:"role" binding:"required"`
}

func (c *SessionController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.Session.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

func (c *SessionController) DemoLogin(ctx *gin.Context) {
	var req DemoLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.Session.DemoLogin(model.UserRole(req.Role))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

func (c *SessionController) Register(ctx *gin.Context) {
	var req service.RegisterInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.Session.Register(ctx.Request.Context(), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

func (c *SessionController) Logout(ctx *gin.Context) {
	c.Session.Logout()
	util.Success(ctx, nil)
}

func (c *SessionController) Me(ctx *gin.Context) {
	user := c.Session.Current()
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
