package handler

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/chefgpt/backend/internal/config"
    "github.com/chefgpt/backend/internal/model"
    "github.com/chefgpt/backend/internal/rating"
    "github.com/chefgpt/backend/internal/repository"
)

// RecipeHandler bundles dependencies for recipe and rating endpoints.
type RecipeHandler struct {
    Cfg     config.Config
    Recipes *repository.RecipeRepo
    Ratings *repository.RatingRepo
}

func NewRecipeHandler(cfg config.Config, rec *repository.RecipeRepo, rat *repository.RatingRepo) *RecipeHandler {
    return &RecipeHandler{Cfg: cfg, Recipes: rec, Ratings: rat}
}

// ----- DTOs -----

type saveRecipeReq struct {
    Title          string   `json:"title"`
    Ingredients    string   `json:"ingredients"`
    Instructions   string   `json:"instructions"`
    FiberGrams     *float64 `json:"fiber_grams"`
    SugarGrams     *float64 `json:"sugar_grams"`
    NutritionScore *float64 `json:"nutrition_score"`
    UserID         *uint64  `json:"user_id"`
}

type rateRecipeReq struct {
    Score    *int   `json:"score"` // pointer so a missing score is distinguishable from 0
    UserID   uint64 `json:"user_id"`
    RecipeID uint64 `json:"recipe_id"`
}

type recipeResp struct {
    ID            uint64   `json:"id"`
    Title         string   `json:"title"`
    Ingredients   string   `json:"ingredients"`
    Instructions  string   `json:"instructions"`
    AverageRating *float64 `json:"average_rating,omitempty"` // absent, not 0, when unrated
}

// SaveRecipe stores a new recipe.  Title, ingredients and instructions
// are required; nutrition fields and the owning user are optional.
func (h *RecipeHandler) SaveRecipe(c echo.Context) error {
    var req saveRecipeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Title = strings.TrimSpace(req.Title)
    if req.Title == "" || strings.TrimSpace(req.Ingredients) == "" || strings.TrimSpace(req.Instructions) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/ingredients/instructions required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    _, err := h.Recipes.Create(ctx, &model.Recipe{
        Title:          req.Title,
        Ingredients:    req.Ingredients,
        Instructions:   req.Instructions,
        FiberGrams:     req.FiberGrams,
        SugarGrams:     req.SugarGrams,
        NutritionScore: req.NutritionScore,
        UserID:         req.UserID,
    })
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save recipe failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Recipe saved successfully!"})
}

// GetRecipes lists all recipes with their current aggregate rating.
// The average is recomputed from the rating rows on every request so
// it always reflects the scores present at query time.
func (h *RecipeHandler) GetRecipes(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    recipes, err := h.Recipes.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list recipes failed"})
    }

    out := make([]recipeResp, 0, len(recipes))
    for _, rec := range recipes {
        resp := recipeResp{
            ID:           rec.ID,
            Title:        rec.Title,
            Ingredients:  rec.Ingredients,
            Instructions: rec.Instructions,
        }
        scores, err := h.Ratings.ScoresByRecipe(ctx, rec.ID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load ratings failed"})
        }
        if avg, ok := rating.Average(scores); ok {
            resp.AverageRating = &avg
        }
        out = append(out, resp)
    }
    return c.JSON(http.StatusOK, out)
}

// RateRecipe records one user's score for a recipe.  Scores outside
// the configured bounds are rejected rather than stored unvalidated.
func (h *RecipeHandler) RateRecipe(c echo.Context) error {
    var req rateRecipeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Score == nil || req.UserID == 0 || req.RecipeID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "score/user_id/recipe_id required"})
    }
    if *req.Score < h.Cfg.RatingMin || *req.Score > h.Cfg.RatingMax {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "error": "score out of range",
            "min":   h.Cfg.RatingMin,
            "max":   h.Cfg.RatingMax,
        })
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if _, err := h.Ratings.Create(ctx, *req.Score, req.UserID, req.RecipeID); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user or recipe not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save rating failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Rating submitted successfully!"})
}

// GetRecipeRating returns the aggregate rating of one recipe.  The
// average is null when the recipe has no ratings yet.
func (h *RecipeHandler) GetRecipeRating(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid recipe id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if _, err := h.Recipes.GetByID(ctx, id); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load recipe failed"})
    }
    scores, err := h.Ratings.ScoresByRecipe(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load ratings failed"})
    }

    var avgPtr *float64
    if avg, ok := rating.Average(scores); ok {
        avgPtr = &avg
    }
    return c.JSON(http.StatusOK, echo.Map{
        "recipe_id":      id,
        "average_rating": avgPtr, // null when unrated
        "ratings":        len(scores),
    })
}
