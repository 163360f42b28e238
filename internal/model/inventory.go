package model

import "time"

// Inventory represents one ingredient a user has at home, one row
// per ingredient name.  Quantity is nullable; the update-inventory
// endpoint records names only and leaves it unset.
//
// Fields:
//  ID         – primary key identifier.
//  Ingredient – ingredient name.
//  Quantity   – amount on hand (nullable).
//  UserID     – owning user.
//  CreatedAt  – creation timestamp.
type Inventory struct {
    ID         uint64    // inventory.id
    Ingredient string    // inventory.ingredient
    Quantity   *float64  // inventory.quantity (nullable)
    UserID     uint64    // inventory.user_id
    CreatedAt  time.Time // inventory.created_at
}
