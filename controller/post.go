package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// PostController 定义文章写路径（作者侧）控制器的结构体
type PostController struct {
	postService     service.PostService // 服务层接口，通过依赖注入传入
	postListService service.PostListService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService, postListService service.PostListService) *PostController {
	return &PostController{
		postService:     postService,
		postListService: postListService,
	}
}

// currentUserID 从 gin.Context 中取出网关透传的用户ID。
// 返回 false 时已写出 401 响应，调用方直接 return 即可。
func currentUserID(c *gin.Context) (string, bool) {
	userIDValue, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息 (Context Key Not Found)")
		return "", false
	}
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID (Invalid UserID in Context)")
		return "", false
	}
	return userID, true
}

// respondPostWriteError 统一映射写路径的服务层错误。
func respondPostWriteError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, commonerrors.ErrUserNotLoggedIn):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户未授权")
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		// 不存在与无权限统一呈现为 404，避免探测文章归属。
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "文章不存在")
	case errors.Is(err, myErrors.ErrSlugConflict):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "slug 已被占用: "+err.Error())
	case errors.Is(err, myErrors.ErrTitleRequired),
		errors.Is(err, myErrors.ErrSlugEmpty),
		errors.Is(err, myErrors.ErrInvalidStatus):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg+": "+err.Error())
	}
}

// CreatePost 处理创建文章的 HTTP 请求
// @Summary      创建新文章
// @Description  以当前登录用户为作者创建一篇文章。slug 缺省时由标题派生；status 缺省为 draft。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "文章创建请求"
// @Success      200 {object} vo.BlogPostResponseWrapper "文章创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已被占用"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		respondPostWriteError(c, err, "创建文章失败")
		return
	}
	response.RespondSuccess(c, postVO, "文章创建成功")
}

// UpdatePost 处理更新文章的 HTTP 请求
// @Summary      更新指定文章
// @Description  对当前登录用户本人的文章执行局部更新。请求体中省略的字段保持原值；状态进入 published 时由服务端落章发布时间。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "文章 ID (UUID)"
// @Param        request body dto.UpdatePostRequest true "文章更新补丁"
// @Success      200 {object} vo.BlogPostResponseWrapper "文章更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在或不属于当前用户"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	postID := c.Param("post_id")
	if postID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "文章 ID 不能为空")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.UpdatePost(c.Request.Context(), userID, postID, &req)
	if err != nil {
		respondPostWriteError(c, err, "更新文章失败")
		return
	}
	response.RespondSuccess(c, postVO, "文章更新成功")
}

// DeletePost 处理删除文章的 HTTP 请求
// @Summary      删除指定文章
// @Description  删除当前登录用户本人的文章。删除是幂等的：文章不存在时同样返回成功。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "文章 ID (UUID)"
// @Success      200 {object} vo.BaseResponseWrapper "文章删除成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	postID := c.Param("post_id")
	if postID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "文章 ID 不能为空")
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		respondPostWriteError(c, err, "删除文章失败")
		return
	}
	response.RespondSuccess[any](c, nil, "文章删除成功")
}

// GetMyPosts 获取当前用户自己的文章列表
// @Summary      获取我的文章列表
// @Description  获取当前登录用户的全部文章（含草稿与定时发布），按创建时间倒序。UserID 从请求上下文中获取。
// @Tags         posts (文章)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含文章列表和数量"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权或认证失败"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/posts/mine [get]
func (ctrl *PostController) GetMyPosts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	listVO, err := ctrl.postListService.ListMine(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrUserNotLoggedIn) {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户未授权")
		} else {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取我的文章列表失败: "+err.Error())
		}
		return
	}
	response.RespondSuccess(c, listVO, "我的文章列表获取成功")
}

// UploadThumbnail 处理缩略图上传的 HTTP 请求
// @Summary      上传文章缩略图
// @Description  上传一张缩略图到对象存储并返回公开访问 URL。slug 参数用于组织存储路径，文章尚未创建时可省略。
// @Tags         posts (文章)
// @Accept       multipart/form-data
// @Produce      json
// @Param        slug formData string false "关联文章的 slug (可选)"
// @Param        file formData file true "图片文件"
// @Success      200 {object} vo.UploadThumbnailResponseWrapper "上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或文件处理错误"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "上传时发生内部服务器错误"
// @Router       /api/v1/blog/posts/thumbnail [post]
func (ctrl *PostController) UploadThumbnail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "获取上传文件失败: "+err.Error())
		return
	}
	slugScope := c.PostForm("slug")

	uploadVO, err := ctrl.postService.UploadThumbnail(c.Request.Context(), userID, slugScope, fileHeader)
	if err != nil {
		respondPostWriteError(c, err, "上传缩略图失败")
		return
	}
	response.RespondSuccess(c, uploadVO, "缩略图上传成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST("", ctrl.CreatePost)                  // POST /api/v1/blog/posts
		posts.PUT("/:post_id", ctrl.UpdatePost)          // PUT /api/v1/blog/posts/:post_id
		posts.DELETE("/:post_id", ctrl.DeletePost)       // DELETE /api/v1/blog/posts/:post_id
		posts.GET("/mine", ctrl.GetMyPosts)              // GET /api/v1/blog/posts/mine
		posts.POST("/thumbnail", ctrl.UploadThumbnail)   // POST /api/v1/blog/posts/thumbnail
	}
}
