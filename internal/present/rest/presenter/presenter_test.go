package presenter

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/causewayhq/causeway/internal/domain"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ValidationError{Field: "amount", Reason: "must be positive"}, http.StatusBadRequest},
		{domain.NotFoundError{Resource: "campaign"}, http.StatusNotFound},
		{domain.AuthorizationError{Reason: "not the owner"}, http.StatusForbidden},
		{domain.StateError{Entity: "withdrawal", Reason: "not pending"}, http.StatusConflict},
		{domain.ConflictError{Reason: "already exists"}, http.StatusConflict},
		{fmt.Errorf("database on fire"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := Error(c, tc.err); err != nil {
			t.Fatalf("Error returned %v", err)
		}
		if rec.Code != tc.want {
			t.Errorf("%v: expected status %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Error(c, fmt.Errorf("dsn=postgres://admin:hunter2@db")); err != nil {
		t.Fatalf("Error returned %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" || strings.Contains(body, "hunter2") {
		t.Errorf("internal error detail leaked: %s", body)
	}
}
