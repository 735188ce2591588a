package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"alumnihub/internal/auth"
	"alumnihub/internal/errors"
	"alumnihub/internal/service"
)

// AdminHandler handles the admin-only moderation and user management endpoints.
type AdminHandler struct {
	postService service.PostService
	userService service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(postService service.PostService, userService service.UserService) *AdminHandler {
	return &AdminHandler{postService: postService, userService: userService}
}

// PendingPosts godoc
// @Summary List posts awaiting moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Post
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/posts/pending [get]
func (h *AdminHandler) PendingPosts(c echo.Context) error {
	posts, err := h.postService.ListPending(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// ApprovePost godoc
// @Summary Approve a post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/posts/{id}/approve [put]
func (h *AdminHandler) ApprovePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	post, err := h.postService.Approve(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// RejectPost godoc
// @Summary Reject a post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/posts/{id}/reject [put]
func (h *AdminHandler) RejectPost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	post, err := h.postService.Reject(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	skip, limit := pageParams(c)
	users, err := h.userService.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// ToggleUserActive godoc
// @Summary Toggle a user's active flag
// @Description Admins cannot toggle their own account.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id}/toggle-active [put]
func (h *AdminHandler) ToggleUserActive(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := h.userService.ToggleActive(c.Request().Context(), auth.CurrentUser(c), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}
