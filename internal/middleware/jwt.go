package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/chefgpt/backend/internal/utils" // shared access token parsing
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject into the request context.  The provided
// secret must match the one used when issuing tokens.  This middleware
// should wrap protected routes so that handlers can read the
// authenticated user via `c.Get("user_id")` (a uint64).
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // The same parsing path is used by the WebSocket auth
            // handshake, so HTTP and socket auth accept identical tokens.
            uid, err := utils.ParseAccess(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            c.Set("user_id", uid)
            return next(c)
        }
    }
}

// UserID extracts the authenticated user's ID placed into the context by
// JWTAuth.  The second return value is false when the route was reached
// without the middleware (or with a malformed value).
func UserID(c echo.Context) (uint64, bool) {
    uid, ok := c.Get("user_id").(uint64)
    return uid, ok
}
