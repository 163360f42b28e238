package model

import "time"

// Recipe mirrors a row of the `recipes` table.  Ingredients and
// instructions are free text; the nutrition fields are optional and
// stay nil when the author did not supply them.  UserID is nullable
// because a recipe may be saved without an account (ownerless).
//
// Fields:
//  ID             – primary key identifier.
//  Title          – recipe title.
//  Ingredients    – ingredient list as entered by the author.
//  Instructions   – preparation steps.
//  FiberGrams     – fiber content in grams (nullable).
//  SugarGrams     – sugar content in grams (nullable).
//  NutritionScore – overall nutrition score (nullable).
//  UserID         – owning user (nullable).
//  CreatedAt      – creation timestamp.
type Recipe struct {
    ID             uint64    // recipes.id
    Title          string    // recipes.title
    Ingredients    string    // recipes.ingredients
    Instructions   string    // recipes.instructions
    FiberGrams     *float64  // recipes.fiber_grams (nullable)
    SugarGrams     *float64  // recipes.sugar_grams (nullable)
    NutritionScore *float64  // recipes.nutrition_score (nullable)
    UserID         *uint64   // recipes.user_id (nullable)
    CreatedAt      time.Time // recipes.created_at
}

// Rating records a single user's score for a recipe.  The aggregate
// rating of a recipe is never stored; it is recomputed from these
// rows on demand.
//
// Fields:
//  ID        – primary key identifier.
//  Score     – integer score within the configured bounds.
//  UserID    – user who rated.
//  RecipeID  – recipe being rated.
//  CreatedAt – creation timestamp.
type Rating struct {
    ID        uint64    // ratings.id
    Score     int       // ratings.score
    UserID    uint64    // ratings.user_id
    RecipeID  uint64    // ratings.recipe_id
    CreatedAt time.Time // ratings.created_at
}
