package handlers

import (
	"net/http"

	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile and user-directory HTTP requests
type ProfileHandler struct {
	store *repositories.Store
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(store *repositories.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/me", h.GetMyProfile)
	g.PUT("/profiles/me", h.UpdateMyProfile)
	g.GET("/profiles/:id", h.GetProfile)
	g.GET("/users", h.ListUsers)
}

// GetMyProfile returns the caller's profile, creating it on first access
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return h.respondWithProfile(c, currentUserID)
}

// UpdateMyProfile updates the caller's display attributes
func (h *ProfileHandler) UpdateMyProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.store.Profiles.GetOrCreateByUserID(currentUserID)
	if err != nil {
		return httpError(err)
	}

	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Website != "" {
		profile.Website = req.Website
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Visibility != "" {
		profile.Visibility = req.Visibility
	}
	if err := h.store.Profiles.UpdateProfile(profile); err != nil {
		return httpError(err)
	}
	return h.respondWithProfile(c, currentUserID)
}

// GetProfile returns a user's profile with relation counts
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	return h.respondWithProfile(c, userID)
}

// ListUsers lists active users, optionally filtered by username substring
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	users, err := h.store.Users.ListActiveUsers(c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *ProfileHandler) respondWithProfile(c echo.Context, userID uint) error {
	user, err := h.store.Users.GetUserByID(userID)
	if err != nil {
		return httpError(err)
	}
	profile, err := h.store.Profiles.GetOrCreateByUserID(userID)
	if err != nil {
		return httpError(err)
	}

	followers, err := h.store.Follows.GetFollowersCount(userID)
	if err != nil {
		return httpError(err)
	}
	following, err := h.store.Follows.GetFollowingCount(userID)
	if err != nil {
		return httpError(err)
	}
	posts, err := h.store.Posts.CountActiveByAuthor(userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, models.ProfileResponse{
		Profile:        *profile,
		Username:       user.Username,
		FollowersCount: followers,
		FollowingCount: following,
		PostsCount:     posts,
	})
}
