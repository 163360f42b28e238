package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/chefgpt/backend/internal/handler"    // import the handlers that implement business logic
	"github.com/chefgpt/backend/internal/middleware" // import middleware for JWT authentication and caching
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check, the about string and
// the recipe-generation stub.
func RegisterRoutes(e *echo.Echo) {
	// This endpoint can be used by load balancers or monitoring systems
	// to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
	e.GET("/about", handler.About)
	e.POST("/generate-recipe", handler.GenerateRecipe)
}

// RegisterAuth registers all authentication-related routes and their
// middleware.  Unauthenticated operations live under /v1/auth, while
// protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rem *handler.ReminderHandler, inv *handler.InventoryHandler, jwtSecret string) {
	// Operations that do not require an existing session: register,
	// login, refresh, logout.  Each handler is responsible for
	// generating or exchanging tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  All handlers
	// registered on this group execute the JWTAuth middleware before
	// being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	// The caller's cleaning schedule.  Marking a task done is the only
	// way a schedule moves forward.
	auth.GET("/reminders", rem.GetMine)
	auth.POST("/reminders", rem.Create)
	auth.POST("/reminders/:task/done", rem.MarkDone)
	// The caller's ingredient inventory.
	auth.GET("/inventory", inv.ListMine)
}

// RegisterPublic registers the unauthenticated recipe API.  These are
// the endpoints the web frontend calls directly; they accept and
// return plain JSON and apply no JWT middleware.  The recipe listing
// goes through the Redis response cache when one is configured.
func RegisterPublic(e *echo.Echo, r *handler.RecipeHandler, inv *handler.InventoryHandler, cache echo.MiddlewareFunc) {
	e.POST("/save-recipe", r.SaveRecipe)
	e.GET("/get-recipes", r.GetRecipes, cache)
	e.POST("/rate-recipe", r.RateRecipe)
	e.GET("/recipes/:id/rating", r.GetRecipeRating)
	e.POST("/update-inventory", inv.UpdateInventory)
}

// RegisterWS registers the WebSocket endpoint carrying the real-time
// notification channel.
func RegisterWS(e *echo.Echo, ws *handler.WSHandler) {
	e.GET("/ws", ws.Serve)
}
