package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const testSecret = "test-access-token-secret"

type fakeRoleFinder struct {
	role  string
	err   error
	calls int
}

func (f *fakeRoleFinder) FindRoleByEmail(ctx context.Context, email string) (string, error) {
	f.calls++
	return f.role, f.err
}

func signToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newGuardedApp(finder RoleFinder, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		VerifyJWT(testSecret),
		RequireRoles(finder, "", allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"email": TokenEmail(c)})
		})
	return app
}

func doGet(t *testing.T, app *fiber.App, bearer string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(body)
}

// A missing credential is rejected by the identity gate before the role gate
// ever runs: 401, and the role finder is never consulted.
func TestVerifyJWTMissingBearer(t *testing.T) {
	finder := &fakeRoleFinder{role: "admin"}
	app := newGuardedApp(finder, "admin")

	resp, body := doGet(t, app, "")

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if !strings.Contains(body, "unauthorized access") {
		t.Errorf("body = %s, want unauthorized access message", body)
	}
	if finder.calls != 0 {
		t.Errorf("role finder consulted %d times before identity was verified", finder.calls)
	}
}

func TestVerifyJWTGarbageToken(t *testing.T) {
	finder := &fakeRoleFinder{role: "admin"}
	app := newGuardedApp(finder, "admin")

	resp, _ := doGet(t, app, "not.a.jwt")

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if finder.calls != 0 {
		t.Errorf("role finder consulted %d times for a garbage token", finder.calls)
	}
}

func TestVerifyJWTExpiredToken(t *testing.T) {
	finder := &fakeRoleFinder{role: "admin"}
	app := newGuardedApp(finder, "admin")

	// Expired well past the 30s clock skew allowance.
	token := signToken(t, "admin@example.com", time.Now().Add(-time.Hour))
	resp, _ := doGet(t, app, token)

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestVerifyJWTWrongSignature(t *testing.T) {
	finder := &fakeRoleFinder{role: "admin"}
	app := newGuardedApp(finder, "admin")

	claims := jwt.MapClaims{"email": "admin@example.com", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	resp, _ := doGet(t, app, token)

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

// A valid credential whose stored role is not in the allow list is a 403,
// distinct from the 401 the identity gate issues.
func TestRequireRolesForbidden(t *testing.T) {
	finder := &fakeRoleFinder{role: "student"}
	app := newGuardedApp(finder, "admin")

	token := signToken(t, "student@example.com", time.Now().Add(time.Hour))
	resp, body := doGet(t, app, token)

	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
	if !strings.Contains(body, "forbidden access") {
		t.Errorf("body = %s, want forbidden access message", body)
	}
	if finder.calls != 1 {
		t.Errorf("role finder calls = %d, want 1", finder.calls)
	}
}

func TestRequireRolesAllowed(t *testing.T) {
	finder := &fakeRoleFinder{role: "admin"}
	app := newGuardedApp(finder, "admin", "instructor")

	token := signToken(t, "Admin@Example.com", time.Now().Add(time.Hour))
	resp, body := doGet(t, app, token)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, body)
	}
	// The identity the handler sees is the lowercased email claim.
	if !strings.Contains(body, "admin@example.com") {
		t.Errorf("body = %s, want lowercased email identity", body)
	}
}

// An identity with no users row is forbidden, not a server error.
func TestRequireRolesUnknownUser(t *testing.T) {
	finder := &fakeRoleFinder{err: gorm.ErrRecordNotFound}
	app := newGuardedApp(finder, "admin")

	token := signToken(t, "ghost@example.com", time.Now().Add(time.Hour))
	resp, _ := doGet(t, app, token)

	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}
