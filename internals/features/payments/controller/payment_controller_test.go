package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"artsadventure_backend/internals/features/payments/model"
	"artsadventure_backend/internals/features/payments/service"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

// recordingStore counts mutations; every step succeeds.
type recordingStore struct {
	inserted []*model.PaymentModel
	calls    int
}

func (s *recordingStore) InsertPayment(ctx context.Context, p *model.PaymentModel) error {
	s.calls++
	s.inserted = append(s.inserted, p)
	return nil
}

func (s *recordingStore) DeleteSelection(ctx context.Context, selectionID uuid.UUID) (int64, error) {
	s.calls++
	return 1, nil
}

func (s *recordingStore) IncrementEnrolled(ctx context.Context, classID uuid.UUID) (int64, error) {
	s.calls++
	return 1, nil
}

func (s *recordingStore) DecrementAvailableSeats(ctx context.Context, classID uuid.UUID) (int64, error) {
	s.calls++
	return 1, nil
}

func (s *recordingStore) FindClassOwnerEmail(ctx context.Context, classID uuid.UUID) (string, error) {
	s.calls++
	return "instructor@example.com", nil
}

func (s *recordingStore) IncrementInstructorStudents(ctx context.Context, email string) (int64, error) {
	s.calls++
	return 1, nil
}

// newSettleApp mounts SettlePayment behind a stand-in identity gate that
// injects the given verified email.
func newSettleApp(store service.Store, verifiedEmail string) *fiber.App {
	ctl := &PaymentController{Settlement: service.NewSettlementService(store)}
	app := fiber.New()
	app.Post("/payments",
		func(c *fiber.Ctx) error {
			c.Locals(authMw.LocUserEmail, verifiedEmail)
			return c.Next()
		},
		ctl.SettlePayment)
	return app
}

func postPayments(t *testing.T, app *fiber.App, body string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(b)
}

func TestSettlePaymentHappyPath(t *testing.T) {
	store := &recordingStore{}
	app := newSettleApp(store, "student@example.com")

	body := `{
		"email": "student@example.com",
		"amount": 49.99,
		"classId": "` + uuid.NewString() + `",
		"selectedClassId": "` + uuid.NewString() + `",
		"transactionId": "pi_123"
	}`
	resp, respBody := postPayments(t, app, body)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, respBody)
	}
	for _, key := range []string{"insertResult", "deleteResult", "updateResult", "updateSeatsResult", "updateInstructorResult"} {
		if !strings.Contains(respBody, key) {
			t.Errorf("response missing %s: %s", key, respBody)
		}
	}
	if len(store.inserted) != 1 {
		t.Fatalf("payments inserted = %d, want 1", len(store.inserted))
	}
	if got := store.inserted[0].PaymentEmail; got != "student@example.com" {
		t.Errorf("payment email = %q", got)
	}
}

// A malformed class reference is rejected before any storage mutation.
func TestSettlePaymentMalformedClassID(t *testing.T) {
	store := &recordingStore{}
	app := newSettleApp(store, "student@example.com")

	body := `{
		"email": "student@example.com",
		"amount": 49.99,
		"classId": "not-a-uuid",
		"selectedClassId": "` + uuid.NewString() + `"
	}`
	resp, respBody := postPayments(t, app, body)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 (body: %s)", resp.StatusCode, respBody)
	}
	if !strings.Contains(respBody, "Invalid classId reference") {
		t.Errorf("body = %s, want classId reference error", respBody)
	}
	if store.calls != 0 {
		t.Errorf("store touched %d times for a malformed reference", store.calls)
	}
}

// The verified identity has to own the payment it settles.
func TestSettlePaymentIdentityMismatch(t *testing.T) {
	store := &recordingStore{}
	app := newSettleApp(store, "someoneelse@example.com")

	body := `{
		"email": "student@example.com",
		"amount": 49.99,
		"classId": "` + uuid.NewString() + `",
		"selectedClassId": "` + uuid.NewString() + `"
	}`
	resp, respBody := postPayments(t, app, body)

	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403 (body: %s)", resp.StatusCode, respBody)
	}
	if store.calls != 0 {
		t.Errorf("store touched %d times for a mismatched identity", store.calls)
	}
}

func TestSettlePaymentValidation(t *testing.T) {
	store := &recordingStore{}
	app := newSettleApp(store, "student@example.com")

	// amount must be positive
	body := `{
		"email": "student@example.com",
		"amount": 0,
		"classId": "` + uuid.NewString() + `",
		"selectedClassId": "` + uuid.NewString() + `"
	}`
	resp, _ := postPayments(t, app, body)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if store.calls != 0 {
		t.Errorf("store touched %d times for an invalid body", store.calls)
	}
}
