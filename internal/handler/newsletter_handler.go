package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"alumnihub/internal/errors"
	"alumnihub/internal/service"
)

// NewsletterHandler handles newsletter endpoints.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// SubscribeRequest represents a newsletter subscription request.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Idempotent; a previously unsubscribed email is reactivated.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Email"
// @Success 201 {object} service.SubscribeResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.newsletterService.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, result)
}

// Subscribers godoc
// @Summary List active newsletter subscribers
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.NewsletterSubscriber
// @Failure 403 {object} errors.ErrorResponse
// @Router /newsletter/subscribers [get]
func (h *NewsletterHandler) Subscribers(c echo.Context) error {
	subscribers, err := h.newsletterService.ListActive(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, subscribers)
}

// Unsubscribe godoc
// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Produce json
// @Param email path string true "Subscriber email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /newsletter/unsubscribe/{email} [delete]
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	email := c.Param("email")

	if err := h.newsletterService.Unsubscribe(c.Request().Context(), email); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully unsubscribed from newsletter"})
}
