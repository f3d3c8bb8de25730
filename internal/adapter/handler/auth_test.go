package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/meetpulse-team/meetpulse/internal/adapter/dto/auth"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/usecase/auth"
	"github.com/meetpulse-team/meetpulse/pkg/jwt"
	pkgvalidator "github.com/meetpulse-team/meetpulse/pkg/validator"
)

type fakeEmployeeRepo struct {
	byName map[string]*entities.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *entities.Employee) error {
	if _, exists := f.byName[employee.Name]; exists {
		return entities.ErrEmployeeAlreadyExists
	}
	f.byName[employee.Name] = employee
	return nil
}

func (f *fakeEmployeeRepo) FindByName(_ context.Context, name string) (*entities.Employee, error) {
	employee, ok := f.byName[name]
	if !ok {
		return nil, entities.ErrEmployeeNotFound
	}
	return employee, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]*entities.Employee, error) {
	out := make([]*entities.Employee, 0, len(f.byName))
	for _, employee := range f.byName {
		out = append(out, employee)
	}
	return out, nil
}

func newAuthTestEnv() (*echo.Echo, *Auth) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	repo := &fakeEmployeeRepo{byName: map[string]*entities.Employee{
		"John Doe":     {ID: 1, Name: "John Doe", Role: "employee"},
		"Jane Manager": {ID: 2, Name: "Jane Manager", Role: "manager"},
	}}
	jwtManager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	service := auth.NewService(repo, jwtManager, zap.NewNop())
	return e, NewAuth(service)
}

func postJSON(e *echo.Echo, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestLogin_Success(t *testing.T) {
	e, h := newAuthTestEnv()
	rec, c := postJSON(e, "/v1/auth/login", `{"name":"John Doe","role":"employee"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["access_token"] == "" {
		t.Fatal("expected access token in response")
	}
	if resp["token_type"] != "Bearer" {
		t.Fatalf("unexpected token type %v", resp["token_type"])
	}
}

func TestLogin_UnknownEmployee(t *testing.T) {
	e, h := newAuthTestEnv()
	rec, c := postJSON(e, "/v1/auth/login", `{"name":"Nobody","role":"employee"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	e, h := newAuthTestEnv()
	// John Doe was onboarded as employee; acting as manager is refused
	// before a token is ever minted.
	rec, c := postJSON(e, "/v1/auth/login", `{"name":"John Doe","role":"manager"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestLogin_InvalidRole(t *testing.T) {
	e, h := newAuthTestEnv()
	_, c := postJSON(e, "/v1/auth/login", `{"name":"John Doe","role":"root"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
}

func TestRefresh_RoundTrip(t *testing.T) {
	e, h := newAuthTestEnv()

	rec, c := postJSON(e, "/v1/auth/login", `{"name":"Jane Manager","role":"manager"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	var login authdto.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if login.RefreshToken == "" {
		t.Fatal("expected refresh token in login response")
	}

	rec2, c2 := postJSON(e, "/v1/auth/refresh", `{"refresh_token":"`+login.RefreshToken+`"}`)
	if err := h.RefreshToken(c2); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec2.Code, rec2.Body.String())
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	e, h := newAuthTestEnv()
	rec, c := postJSON(e, "/v1/auth/refresh", `{"refresh_token":"not-a-token"}`)

	if err := h.RefreshToken(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
