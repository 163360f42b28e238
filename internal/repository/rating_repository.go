package repository

import (
    "context"
    "database/sql"
)

// RatingRepo persists individual recipe scores.  Aggregates are never
// stored here; callers recompute them from the raw scores so that the
// mean always reflects whatever ratings exist at query time.
type RatingRepo struct {
    db *sql.DB
}

// NewRatingRepo returns a new RatingRepo bound to the given database.
func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{db: db} }

// Create inserts a rating row and returns its generated ID.  A score
// referencing a missing user or recipe yields ErrNotFound.
func (r *RatingRepo) Create(ctx context.Context, score int, userID, recipeID uint64) (uint64, error) {
    res, err := r.db.ExecContext(ctx,
        "INSERT INTO ratings (score, user_id, recipe_id) VALUES (?,?,?)",
        score, userID, recipeID)
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

// ScoresByRecipe returns the raw scores of all ratings for one recipe.
// A recipe with no ratings yields an empty slice, not an error.
func (r *RatingRepo) ScoresByRecipe(ctx context.Context, recipeID uint64) ([]int, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT score FROM ratings WHERE recipe_id=? ORDER BY id", recipeID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var scores []int
    for rows.Next() {
        var s int
        if err := rows.Scan(&s); err != nil {
            return nil, err
        }
        scores = append(scores, s)
    }
    return scores, rows.Err()
}
