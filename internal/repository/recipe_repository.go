package repository

import (
    "context"
    "database/sql"

    "github.com/chefgpt/backend/internal/model"
)

// RecipeRepo provides persistence for recipes.  All timestamp fields
// are assumed to be stored in UTC.
type RecipeRepo struct {
    db *sql.DB
}

// NewRecipeRepo returns a new RecipeRepo bound to the given database.
func NewRecipeRepo(db *sql.DB) *RecipeRepo { return &RecipeRepo{db: db} }

// Create inserts a recipe row and returns its generated ID.  Nil
// nutrition fields and a nil UserID become SQL NULLs.  A UserID
// referencing a missing user yields ErrNotFound.
func (r *RecipeRepo) Create(ctx context.Context, rec *model.Recipe) (uint64, error) {
    const q = `INSERT INTO recipes (title, ingredients, instructions, fiber_grams, sugar_grams, nutrition_score, user_id)
VALUES (?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q,
        rec.Title, rec.Ingredients, rec.Instructions,
        rec.FiberGrams, rec.SugarGrams, rec.NutritionScore, rec.UserID)
    if err != nil {
        if isFKViolation(err) {
            return 0, ErrNotFound
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// List returns all recipes ordered by insertion.
func (r *RecipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
    const q = `SELECT id, title, ingredients, instructions, fiber_grams, sugar_grams, nutrition_score, user_id, created_at
FROM recipes ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []model.Recipe
    for rows.Next() {
        var (
            rec            model.Recipe
            fiber, sugar   sql.NullFloat64
            score          sql.NullFloat64
            userID         sql.NullInt64
        )
        if err := rows.Scan(&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions,
            &fiber, &sugar, &score, &userID, &rec.CreatedAt); err != nil {
            return nil, err
        }
        if fiber.Valid {
            v := fiber.Float64
            rec.FiberGrams = &v
        }
        if sugar.Valid {
            v := sugar.Float64
            rec.SugarGrams = &v
        }
        if score.Valid {
            v := score.Float64
            rec.NutritionScore = &v
        }
        if userID.Valid {
            v := uint64(userID.Int64)
            rec.UserID = &v
        }
        out = append(out, rec)
    }
    return out, rows.Err()
}

// GetByID fetches one recipe.  Missing rows yield ErrNotFound.
func (r *RecipeRepo) GetByID(ctx context.Context, id uint64) (model.Recipe, error) {
    const q = `SELECT id, title, ingredients, instructions, fiber_grams, sugar_grams, nutrition_score, user_id, created_at
FROM recipes WHERE id = ? LIMIT 1`
    var (
        rec          model.Recipe
        fiber, sugar sql.NullFloat64
        score        sql.NullFloat64
        userID       sql.NullInt64
    )
    err := r.db.QueryRowContext(ctx, q, id).Scan(&rec.ID, &rec.Title, &rec.Ingredients,
        &rec.Instructions, &fiber, &sugar, &score, &userID, &rec.CreatedAt)
    if err == sql.ErrNoRows {
        return model.Recipe{}, ErrNotFound
    }
    if err != nil {
        return model.Recipe{}, err
    }
    if fiber.Valid {
        v := fiber.Float64
        rec.FiberGrams = &v
    }
    if sugar.Valid {
        v := sugar.Float64
        rec.SugarGrams = &v
    }
    if score.Valid {
        v := score.Float64
        rec.NutritionScore = &v
    }
    if userID.Valid {
        v := uint64(userID.Int64)
        rec.UserID = &v
    }
    return rec, nil
}
