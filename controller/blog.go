package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// BlogController 定义公开读取路径（访客侧）控制器的结构体。
// 与写路径分开注册，这组路由不要求认证。
type BlogController struct {
	postService     service.PostService
	postListService service.PostListService
}

// NewBlogController 构造函数，用于创建 BlogController 实例
func NewBlogController(postService service.PostService, postListService service.PostListService) *BlogController {
	return &BlogController{
		postService:     postService,
		postListService: postListService,
	}
}

// ListPublishedPosts 获取已发布文章列表 (公开)
// @Summary      获取已发布文章列表 (公开)
// @Description  按发布时间倒序返回已发布文章，支持关键词搜索（标题/正文/摘要，大小写不敏感）和分类过滤（"all" 或省略表示全部）。
// @Tags         blog (博客公开接口)
// @Accept       json
// @Produce      json
// @Param        search query string false "搜索关键词 (最大长度 255)" maxLength(255)
// @Param        category query string false "分类精确过滤，省略或传 all 表示不过滤" maxLength(100)
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含文章列表和数量"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts [get]
func (ctrl *BlogController) ListPublishedPosts(c *gin.Context) {
	var req dto.ListPublishedPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	listVO, err := ctrl.postListService.ListPublished(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取文章列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, listVO, "文章列表获取成功")
}

// GetPostBySlug 按 slug 获取单篇已发布文章 (公开)
// @Summary      按 slug 获取文章详情 (公开)
// @Description  通过 URL slug 检索一篇已发布文章。草稿与定时发布的文章对该接口不可见，返回 404。
// @Tags         blog (博客公开接口)
// @Accept       json
// @Produce      json
// @Param        slug path string true "文章 slug"
// @Success      200 {object} vo.BlogPostResponseWrapper "文章详情检索成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在或未发布"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/slug/{slug} [get]
func (ctrl *BlogController) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "slug 不能为空")
		return
	}

	postVO, err := ctrl.postService.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在或未发布")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索文章详情失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, postVO, "文章详情检索成功")
}

// RegisterRoutes 注册 BlogController 的路由
func (ctrl *BlogController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPublishedPosts)        // GET /api/v1/blog/posts
		posts.GET("/slug/:slug", ctrl.GetPostBySlug)  // GET /api/v1/blog/posts/slug/:slug
	}
}
