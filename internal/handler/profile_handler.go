package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"alumnihub/internal/auth"
	"alumnihub/internal/errors"
	"alumnihub/internal/service"
)

// ProfileHandler handles alumni profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfile godoc
// @Summary Create the caller's alumni profile
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProfileInput true "Profile fields"
// @Success 201 {object} model.AlumniProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /alumni/profile [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var input service.ProfileInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Create(c.Request().Context(), auth.CurrentUser(c), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, profile)
}

// GetMyProfile godoc
// @Summary Get the caller's alumni profile
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AlumniProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /alumni/profile [get]
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	profile, err := h.profileService.GetMine(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary Patch the caller's alumni profile
// @Description Only fields present in the body are changed.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProfileInput true "Fields to change"
// @Success 200 {object} model.AlumniProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /alumni/profile [put]
func (h *ProfileHandler) UpdateMyProfile(c echo.Context) error {
	var input service.ProfileInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.UpdateMine(c.Request().Context(), auth.CurrentUser(c), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// ListProfiles godoc
// @Summary List alumni profiles
// @Tags alumni
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} model.AlumniProfile
// @Router /alumni/profiles [get]
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	skip, limit := pageParams(c)
	profiles, err := h.profileService.List(c.Request().Context(), skip, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetProfile godoc
// @Summary Get an alumni profile by ID
// @Tags alumni
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} model.AlumniProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /alumni/profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	profile, err := h.profileService.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}
