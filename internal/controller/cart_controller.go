package controller

import (
	"luminax_client/internal/model"
	"luminax_client/internal/service"
	"luminax_client/internal/util"
	"luminax_client/internal/view"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart *service.CartService
}

func NewCartController(cart *service.CartService) *CartController {
	return &CartController{Cart: cart}
}

type AddToCartRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

type CartResponse struct {
	Items   []model.CartItem   `json:"items"`
	Totals  view.Totals        `json:"totals"`
	Display view.DisplayTotals `json:"display"`
}

func (c *CartController) response() CartResponse {
	items := c.Cart.Items()
	if items == nil {
		items = []model.CartItem{}
	}
	totals := c.Cart.Totals()
	return CartResponse{Items: items, Totals: totals, Display: totals.Display()}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	util.Success(ctx, c.response())
}

func (c *CartController) AddToCart(ctx *gin.Context) {
	var req AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Cart.AddToCartByID(req.CourseID); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, c.response())
}

func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	c.Cart.Remove(ctx.Param("courseId"))
	util.Success(ctx, c.response())
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	c.Cart.Clear()
	util.Success(ctx, c.response())
}

// EnrollNow 加入购物车后由前端跳转到结算页
func (c *CartController) EnrollNow(ctx *gin.Context) {
	if err := c.Cart.EnrollNow(ctx.Param("id")); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, c.response())
}

func (c *CartController) Checkout(ctx *gin.Context) {
	enrollments, err := c.Cart.Checkout(ctx.Request.Context())
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, enrollments)
}
