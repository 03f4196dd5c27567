package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quynhnga171088/user-management/internal/core/domain"
	"github.com/quynhnga171088/user-management/internal/core/ports"
)

type stubUserService struct {
	getAllFn  func(ctx context.Context) ([]domain.User, error)
	getByIDFn func(ctx context.Context, id string) (*domain.User, error)
	createFn  func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn  func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubUserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.getAllFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:        "665f1c9e2ab79c0012345678",
		Name:      "Alice",
		Email:     "alice@example.com",
		Roles:     []domain.Role{domain.RoleAdmin},
		Active:    true,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		getAllFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{*sampleUser()}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/api/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0]["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp.Data[0]["password_hash"]; leaked {
		t.Fatalf("password hash leaked in listing")
	}
}

func TestUserHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			if id != "665f1c9e2ab79c0012345678" {
				return nil, domain.ErrUserNotFound
			}
			return sampleUser(), nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("665f1c9e2ab79c0012345678")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newAuthContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Create(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Active == nil || *in.Active {
				t.Fatalf("expected explicit active=false, got %v", in.Active)
			}
			u := sampleUser()
			u.Active = false
			return u, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/users",
		`{"name":"Alice","email":"alice@example.com","password":"pass12345","roles":["admin"],"active":false}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["active"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/api/users",
		`{"name":"NoPassword","email":"x@x.com"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if id != "665f1c9e2ab79c0012345678" || in.Name != "Renamed" {
				t.Fatalf("unexpected update: id=%s in=%+v", id, in)
			}
			u := sampleUser()
			u.Name = in.Name
			return u, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthContext(t, http.MethodPut, "/", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("665f1c9e2ab79c0012345678")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Renamed"`) {
		t.Fatalf("updated name missing from response: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id string) error {
			if deleted != "" {
				return domain.ErrUserNotFound
			}
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newAuthContext(t, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("665f1c9e2ab79c0012345678")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "665f1c9e2ab79c0012345678" {
		t.Fatalf("service not called with id, got %q", deleted)
	}

	c, _ = newAuthContext(t, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("665f1c9e2ab79c0012345678")
	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
