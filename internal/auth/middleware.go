package auth

import (
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"alumnihub/internal/errors"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// currentUserKey is the echo context key under which the resolved user is stored.
const currentUserKey = "currentUser"

// emailFromContext extracts the email claim from the token parsed by the
// echo-jwt middleware, which stores it under the "user" context key.
// echo-jwt parses with jwt/v5, so the claims arrive as v5 MapClaims even
// though tokens are issued with jwt/v4.
func emailFromContext(c echo.Context) (string, bool) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", false
	}
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}

// CurrentUser returns the user resolved by LoadUser or OptionalUser, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

// LoadUser resolves the validated JWT claims to a user row and stores it in
// the request context. Runs after the echo-jwt middleware, which has already
// verified signature and expiry. A token whose email no longer maps to a
// user is rejected the same way as a malformed one.
func LoadUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := emailFromContext(c)
			if !ok {
				httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			user, err := userRepo.FindByEmail(c.Request().Context(), email)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireActive rejects requests from deactivated accounts.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsActive {
				httpErr := errors.MapErrorToHTTP(errors.ErrInactiveAccount)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests from non-admin accounts. Implies RequireActive.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsActive {
				httpErr := errors.MapErrorToHTTP(errors.ErrInactiveAccount)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsAdmin() {
				httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// OptionalUser resolves a bearer token when one is present but never fails
// the request. Public routes use it to grant admins extra visibility.
func OptionalUser(jwtService *JWTService, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return next(c)
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return next(c)
			}
			user, err := userRepo.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				return next(c)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}
