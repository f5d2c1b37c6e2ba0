package http

import (
	"net/http"
	"strings"

	"pizzeria/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "staffClaims"

// StaffAuth returns middleware that requires a valid staff token in the
// Authorization header (Bearer scheme) or, for websocket upgrades where
// browsers cannot set headers, in the "token" query parameter.
func StaffAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				token = ctx.QueryParam("token")
			}
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing credentials",
				})
			}

			claims, err := auth.ValidateToken(secret, token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// StaffClaims retrieves the authenticated staff claims set by StaffAuth.
func StaffClaims(ctx echo.Context) *auth.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*auth.Claims)
	return claims
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimPrefix(header, prefix)
	}
	return ""
}
