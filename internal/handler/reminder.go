package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/chefgpt/backend/internal/middleware"
    "github.com/chefgpt/backend/internal/reminder"
    "github.com/chefgpt/backend/internal/repository"
)

// ReminderHandler exposes the authenticated user's cleaning schedule.
type ReminderHandler struct {
    Svc *reminder.Service
}

func NewReminderHandler(svc *reminder.Service) *ReminderHandler {
    return &ReminderHandler{Svc: svc}
}

type taskResp struct {
    LastCleaned time.Time `json:"last_cleaned"`
    NextDue     time.Time `json:"next_due"`
    Due         bool      `json:"due"`
}

type reminderResp struct {
    Stove  taskResp `json:"stove"`
    Fridge taskResp `json:"fridge"`
}

func toReminderResp(st reminder.State, now time.Time) reminderResp {
    return reminderResp{
        Stove: taskResp{
            LastCleaned: st.Stove.LastCleaned,
            NextDue:     st.Stove.NextDue,
            Due:         reminder.IsDue(st.Stove, now),
        },
        Fridge: taskResp{
            LastCleaned: st.Fridge.LastCleaned,
            NextDue:     st.Fridge.NextDue,
            Due:         reminder.IsDue(st.Fridge, now),
        },
    }
}

// GetMine returns the caller's schedule with due flags evaluated now.
func (h *ReminderHandler) GetMine(c echo.Context) error {
    uid, ok := middleware.UserID(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Svc.Get(ctx, uid)
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "no reminder"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reminder failed"})
    }
    return c.JSON(http.StatusOK, toReminderResp(st, time.Now().UTC()))
}

// Create initializes the caller's schedule if it does not exist yet.
// Accounts registered through /v1/auth/register already have one; this
// covers users created before reminders existed.
func (h *ReminderHandler) Create(c echo.Context) error {
    uid, ok := middleware.UserID(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Svc.Create(ctx, uid)
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reminder failed"})
    }
    return c.JSON(http.StatusCreated, toReminderResp(st, time.Now().UTC()))
}

// MarkDone records that the caller cleaned one task.  The path
// parameter names the task kind (stove or fridge).
func (h *ReminderHandler) MarkDone(c echo.Context) error {
    uid, ok := middleware.UserID(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    kind, err := reminder.ParseTaskKind(c.Param("task"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown task kind"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Svc.MarkDone(ctx, uid, kind)
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "no reminder"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update reminder failed"})
    }
    return c.JSON(http.StatusOK, toReminderResp(st, time.Now().UTC()))
}
