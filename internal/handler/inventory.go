package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/chefgpt/backend/internal/middleware"
    "github.com/chefgpt/backend/internal/repository"
)

// InventoryHandler bundles dependencies for inventory endpoints.
type InventoryHandler struct {
    Inventory *repository.InventoryRepo
}

func NewInventoryHandler(inv *repository.InventoryRepo) *InventoryHandler {
    return &InventoryHandler{Inventory: inv}
}

type updateInventoryReq struct {
    UserID      uint64   `json:"user_id"`
    Ingredients []string `json:"ingredients"`
}

type inventoryItemResp struct {
    ID         uint64    `json:"id"`
    Ingredient string    `json:"ingredient"`
    Quantity   *float64  `json:"quantity,omitempty"`
    CreatedAt  time.Time `json:"created_at"`
}

// UpdateInventory appends one inventory row per ingredient name for the
// given user.  Quantities are not tracked on this path and stay unset.
func (h *InventoryHandler) UpdateInventory(c echo.Context) error {
    var req updateInventoryReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.UserID == 0 || len(req.Ingredients) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id/ingredients required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Inventory.AddItems(ctx, req.UserID, req.Ingredients); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update inventory failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Inventory updated successfully!"})
}

// ListMine returns the authenticated user's inventory rows.
func (h *InventoryHandler) ListMine(c echo.Context) error {
    uid, ok := middleware.UserID(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Inventory.ListByUser(ctx, uid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list inventory failed"})
    }
    out := make([]inventoryItemResp, 0, len(items))
    for _, item := range items {
        out = append(out, inventoryItemResp{
            ID:         item.ID,
            Ingredient: item.Ingredient,
            Quantity:   item.Quantity,
            CreatedAt:  item.CreatedAt,
        })
    }
    return c.JSON(http.StatusOK, out)
}
