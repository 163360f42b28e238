package handler

import (
    "fmt"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
)

// About returns a short identification string for the service.
func About(c echo.Context) error {
    return c.String(http.StatusOK, "About ChefGPT")
}

type generateRecipeReq struct {
    Ingredients string `json:"ingredients"`
    Mood        string `json:"mood"`
}

// GenerateRecipe is a placeholder for AI-assisted recipe generation.
// It echoes the request back as a canned string; a real model
// integration is out of scope for this service.
func GenerateRecipe(c echo.Context) error {
    var req generateRecipeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(req.Ingredients) == "" || strings.TrimSpace(req.Mood) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "ingredients/mood required"})
    }
    recipe := fmt.Sprintf("Recipe based on ingredients: %s and mood: %s", req.Ingredients, req.Mood)
    return c.JSON(http.StatusOK, echo.Map{"recipe": recipe})
}
