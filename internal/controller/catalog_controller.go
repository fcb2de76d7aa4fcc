package controller

import (
	"luminax_client/internal/service"
	"luminax_client/internal/util"
	"luminax_client/internal/view"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *service.CatalogService
}

func NewCatalogController(catalog *service.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

type SearchRequest struct {
	Query    *string `json:"query"`
	Category *string `json:"category"`
}

// ListCourses 按当前搜索词和分类返回课程，instructor=true 时同时匹配讲师姓名
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	if q, ok := ctx.GetQuery("q"); ok {
		c.Catalog.SetSearchQuery(q)
	}
	if category, ok := ctx.GetQuery("category"); ok {
		c.Catalog.SetSelectedCategory(category)
	}
	if ctx.Query("instructor") == "true" {
		util.Success(ctx, c.Catalog.SearchWithInstructor())
		return
	}
	util.Success(ctx, c.Catalog.Search())
}

// UpdateSearch 只更新请求中给出的字段
func (c *CatalogController) UpdateSearch(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Query != nil {
		c.Catalog.SetSearchQuery(*req.Query)
	}
	if req.Category != nil {
		c.Catalog.SetSelectedCategory(*req.Category)
	}
	util.Success(ctx, c.Catalog.Search())
}

func (c *CatalogController) Featured(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Featured())
}

func (c *CatalogController) Categories(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Categories())
}

// GetCourseDetail ?tab=curriculum&expanded=m1&toggle=m2
func (c *CatalogController) GetCourseDetail(ctx *gin.Context) {
	nav := view.CurriculumNav{Expanded: ctx.Query("expanded")}
	if toggle := ctx.Query("toggle"); toggle != "" {
		nav = nav.Toggle(toggle)
	}

	detail, err := c.Catalog.Detail(ctx.Param("id"), view.ParseDetailTab(ctx.Query("tab")), nav)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

func (c *CatalogController) GetCourseFlags(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.Catalog.Course(id); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, c.Catalog.Flags(id))
}

func (c *CatalogController) GetCourseReviews(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.Catalog.Course(id); err != nil {
		util.FromError(ctx, err)
		return
	}
	reviews := c.Catalog.Reviews(id)
	if reviews == nil {
		util.Success(ctx, []struct{}{})
		return
	}
	util.Success(ctx, reviews)
}
