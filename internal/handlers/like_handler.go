package handlers

import (
	"net/http"

	"github.com/s4shantanu/socialconnect/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagementService *services.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagementService *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.LikePost)
	g.DELETE("/posts/:post_id/like", h.UnlikePost)
	g.GET("/posts/:post_id/like_status", h.GetLikeStatus)
}

// LikePost handles liking a post. Liking twice returns 200 with an
// "already liked" detail rather than a conflict.
func (h *LikeHandler) LikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	result, err := h.engagementService.Like(c.Request().Context(), currentUserID, postID)
	if err != nil {
		return httpError(err)
	}

	if result.AlreadyLiked {
		return c.JSON(http.StatusOK, echo.Map{"liked": true, "detail": "already liked"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"liked": true})
}

// UnlikePost handles unliking a post; no prior like is a no-op.
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := h.engagementService.Unlike(c.Request().Context(), currentUserID, postID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": false})
}

// GetLikeStatus reports whether the authenticated user has liked the post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	liked, err := h.engagementService.LikeStatus(c.Request().Context(), currentUserID, postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}
