package handlers

import (
	"net/http"
	"strconv"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post authored by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}

	post := &models.Post{
		AuthorID: currentUserID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: category,
		Status:   models.StatusActive,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// ListPosts lists active posts, newest first
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	posts, total, err := h.postRepository.ListActivePosts((page-1)*limit, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts, "total": total, "page": page})
}

// GetPost fetches an active post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetActivePostByID(postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost updates a post; authors may only edit their own
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetActivePostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.AuthorID != currentUserID {
		return httpError(apperrors.Permission("you can only edit your own posts"))
	}

	if req.Content != "" {
		post.Content = req.Content
	}
	if req.ImageURL != "" {
		post.ImageURL = req.ImageURL
	}
	if req.Category != "" {
		post.Category = req.Category
	}
	if err := h.postRepository.UpdatePost(post); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost soft-deletes a post; author or elevated privilege only. The row
// stays addressable for audit paths.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetActivePostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.AuthorID != currentUserID && !isElevated(c) {
		return httpError(apperrors.Permission("you can only delete your own posts"))
	}

	if _, err := h.postRepository.SoftDeletePost(postID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Post deleted"})
}
