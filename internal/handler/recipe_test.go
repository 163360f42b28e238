package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/chefgpt/backend/internal/config"
	"github.com/chefgpt/backend/internal/repository"
)

func newRecipeHandlerWithMock(t *testing.T) (*RecipeHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	h := NewRecipeHandler(
		config.Config{RatingMin: 1, RatingMax: 5},
		repository.NewRecipeRepo(db),
		repository.NewRatingRepo(db),
	)
	return h, mock, func() { _ = db.Close() }
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestSaveRecipeMissingFields(t *testing.T) {
	h, _, done := newRecipeHandlerWithMock(t)
	defer done()
	e := echo.New()

	rec := doJSON(t, e, http.MethodPost, "/save-recipe",
		`{"ingredients":"eggs","instructions":"whisk"}`, h.SaveRecipe)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestSaveRecipeOK(t *testing.T) {
	h, mock, done := newRecipeHandlerWithMock(t)
	defer done()
	e := echo.New()

	mock.ExpectExec("INSERT INTO recipes").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doJSON(t, e, http.MethodPost, "/save-recipe",
		`{"title":"Omelette","ingredients":"eggs","instructions":"whisk and fry"}`, h.SaveRecipe)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Recipe saved successfully!") {
		t.Fatalf("missing confirmation message: %s", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRateRecipeScoreOutOfRange(t *testing.T) {
	h, _, done := newRecipeHandlerWithMock(t)
	defer done()
	e := echo.New()

	for _, body := range []string{
		`{"score":0,"user_id":1,"recipe_id":2}`,
		`{"score":6,"user_id":1,"recipe_id":2}`,
		`{"user_id":1,"recipe_id":2}`,
	} {
		rec := doJSON(t, e, http.MethodPost, "/rate-recipe", body, h.RateRecipe)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: want 400, got %d", body, rec.Code)
		}
	}
}

func TestRateRecipeOK(t *testing.T) {
	h, mock, done := newRecipeHandlerWithMock(t)
	defer done()
	e := echo.New()

	mock.ExpectExec("INSERT INTO ratings").
		WithArgs(4, uint64(1), uint64(2)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doJSON(t, e, http.MethodPost, "/rate-recipe",
		`{"score":4,"user_id":1,"recipe_id":2}`, h.RateRecipe)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRateRecipeUnknownReference(t *testing.T) {
	h, mock, done := newRecipeHandlerWithMock(t)
	defer done()
	e := echo.New()

	mock.ExpectExec("INSERT INTO ratings").
		WillReturnError(errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"))

	rec := doJSON(t, e, http.MethodPost, "/rate-recipe",
		`{"score":4,"user_id":1,"recipe_id":999}`, h.RateRecipe)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestGetRecipesIncludesAverage(t *testing.T) {
	h, mock, done := newRecipeHandlerWithMock(t)
	defer done()
	e := echo.New()

	cols := []string{"id", "title", "ingredients", "instructions",
		"fiber_grams", "sugar_grams", "nutrition_score", "user_id", "created_at"}
	now := time.Now()
	mock.ExpectQuery("SELECT id, title, ingredients").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Omelette", "eggs", "whisk", nil, nil, nil, nil, now).
			AddRow(2, "Toast", "bread", "toast it", nil, nil, nil, nil, now))
	mock.ExpectQuery("SELECT score FROM ratings").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(4).AddRow(5).AddRow(3))
	mock.ExpectQuery("SELECT score FROM ratings").
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"score"}))

	rec := doJSON(t, e, http.MethodGet, "/get-recipes", "", h.GetRecipes)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"average_rating":4`) {
		t.Fatalf("rated recipe must carry its mean: %s", body)
	}
	// the unrated recipe omits the field entirely instead of reporting 0
	if strings.Contains(body, `"average_rating":0`) {
		t.Fatalf("unrated recipe must not report a zero mean: %s", body)
	}
}
