package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/chefgpt/backend/internal/model"
)

// InventoryRepo persists a user's ingredient inventory, one row per
// ingredient name.
type InventoryRepo struct {
    db *sql.DB
}

// NewInventoryRepo returns a new InventoryRepo bound to the given database.
func NewInventoryRepo(db *sql.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// AddItems inserts one inventory row per ingredient name for the user,
// all within a single transaction so a partial write never survives.
// Quantity is left NULL.  Empty names are skipped.  A missing user
// yields ErrNotFound.
func (r *InventoryRepo) AddItems(ctx context.Context, userID uint64, ingredients []string) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    for _, name := range ingredients {
        name = strings.TrimSpace(name)
        if name == "" {
            continue
        }
        if _, err := tx.ExecContext(ctx,
            "INSERT INTO inventory (user_id, ingredient) VALUES (?,?)",
            userID, name); err != nil {
            _ = tx.Rollback()
            if isFKViolation(err) {
                return ErrNotFound
            }
            return err
        }
    }
    return tx.Commit()
}

// ListByUser returns all inventory rows belonging to one user.
func (r *InventoryRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Inventory, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id, ingredient, quantity, user_id, created_at FROM inventory WHERE user_id=? ORDER BY id",
        userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []model.Inventory
    for rows.Next() {
        var (
            item model.Inventory
            qty  sql.NullFloat64
        )
        if err := rows.Scan(&item.ID, &item.Ingredient, &qty, &item.UserID, &item.CreatedAt); err != nil {
            return nil, err
        }
        if qty.Valid {
            v := qty.Float64
            item.Quantity = &v
        }
        out = append(out, item)
    }
    return out, rows.Err()
}
