package handler

import (
	"net/http"
	"strconv"

	"board/internal/pkg"
	"board/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type CreatePostReq struct {
	Author   string `json:"author" binding:"notblank,min=2,max=20"`
	Password string `json:"password" binding:"notblank,min=4,max=20"`
	Title    string `json:"title" binding:"notblank,max=100"`
	Content  string `json:"content" binding:"notblank,max=5000"`
}

type UpdatePostReq struct {
	Password string `json:"password" binding:"notblank"`
	Title    string `json:"title" binding:"notblank,max=100"`
	Content  string `json:"content" binding:"notblank,max=5000"`
}

type DeletePostReq struct {
	Password string `json:"password" binding:"notblank"`
}

// ListPosts GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	sizeStr := c.Query("size")
	if sizeStr == "" {
		sizeStr = c.DefaultQuery("pageSize", "10")
	}
	size, _ := strconv.Atoi(sizeStr)

	result, err := h.svc.ListPosts(page, size)
	if err != nil {
		c.Error(err)
		return
	}
	pkg.Success(c, http.StatusOK, result)
}

// GetPost GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	detail, err := h.svc.GetPost(id)
	if err != nil {
		c.Error(err)
		return
	}
	pkg.Success(c, http.StatusOK, detail)
}

// CreatePost POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(pkg.InvalidInput(pkg.FieldErrorsFrom(err)))
		return
	}

	detail, err := h.svc.CreatePost(req.Author, req.Password, req.Title, req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	pkg.Success(c, http.StatusCreated, detail)
}

// UpdatePost PUT /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(pkg.InvalidInput(pkg.FieldErrorsFrom(err)))
		return
	}

	detail, err := h.svc.UpdatePost(id, req.Password, req.Title, req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	pkg.Success(c, http.StatusOK, detail)
}

// DeletePost DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req DeletePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(pkg.InvalidInput(pkg.FieldErrorsFrom(err)))
		return
	}

	if err := h.svc.DeletePost(id, req.Password); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func postID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(pkg.InvalidInput([]pkg.FieldError{{Field: "id", Reason: "must be a positive integer"}}))
		return 0, false
	}
	return id, true
}
