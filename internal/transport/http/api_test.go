package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/memory"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
	"github.com/fortistravel/fortis-tourism-backend/internal/service"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

type testAPI struct {
	e     *echo.Echo
	store *memory.Store
	auth  *service.AuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := memory.NewSeededStore()
	jwt := util.NewJWTManager("test-secret", time.Hour)
	auth := service.NewAuthService(store.Users(), store.Sessions(), jwt, time.Hour, "")
	destinations := service.NewDestinationService(store.Destinations(), nil, service.DestinationServiceConfig{})
	bookings := service.NewBookingService(store.Bookings(), store.Destinations())
	wishlist := service.NewWishlistService(store.Wishlist(), store.Destinations())
	stats := service.NewStatsService(store.Bookings(), store.Users())

	e := NewRouter([]string{"*"})
	RegisterAuth(e, auth)
	RegisterDestinations(e, auth, destinations)
	RegisterBookings(e, auth, bookings)
	RegisterWishlist(e, auth, wishlist)
	RegisterStats(e, auth, stats)

	return &testAPI{e: e, store: store, auth: auth}
}

func (a *testAPI) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func (a *testAPI) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	rec, _ := a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"password": "password1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, body := a.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": "password1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login: missing token in %v", body)
	}
	return token
}

func (a *testAPI) adminToken(t *testing.T) string {
	t.Helper()

	hash, salt, err := util.DerivePassword("admin-pass1")
	if err != nil {
		t.Fatalf("DerivePassword returned error: %v", err)
	}
	if _, err := a.store.Users().Create(context.Background(), ports.NewUser{
		Email:        "admin@example.com",
		Username:     "admin",
		PasswordHash: hash,
		PasswordSalt: salt,
		IsAdmin:      true,
	}); err != nil {
		t.Fatalf("create admin returned error: %v", err)
	}

	rec, body := a.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "admin@example.com",
		"password": "admin-pass1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	return token
}

func (a *testAPI) parisID(t *testing.T) string {
	t.Helper()

	matches, err := a.store.Destinations().Search(context.Background(), "paris")
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected seeded Paris, got %v / %v", matches, err)
	}
	return matches[0].ID.String()
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.request(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["ok"] != true {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestPublicDestinationRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.request(t, http.MethodGet, "/api/v1/destinations", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list, _ := body["destinations"].([]any)
	if len(list) != 4 {
		t.Fatalf("expected 4 seeded destinations, got %d", len(list))
	}

	rec, body = api.request(t, http.MethodGet, "/api/v1/destinations?category=beaches", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list, _ = body["destinations"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected one beach destination, got %d", len(list))
	}

	rec, _ = api.request(t, http.MethodGet, "/api/v1/destinations?category=volcanic", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d", rec.Code)
	}

	rec, body = api.request(t, http.MethodPost, "/api/v1/search", "", map[string]any{"query": "fuji"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list, _ = body["destinations"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected one match for fuji, got %d", len(list))
	}

	rec, _ = api.request(t, http.MethodGet, "/api/v1/destinations/not-a-uuid", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)

	token := api.registerAndLogin(t, "flow@example.com")

	rec, body := api.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}
	user, _ := body["user"].(map[string]any)
	if user["email"] != "flow@example.com" {
		t.Fatalf("unexpected me payload: %v", body)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatal("password hash must not appear in responses")
	}

	// Duplicate registration answers 409.
	rec, _ = api.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "flow@example.com",
		"password": "password2",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}

	// Logout revokes the token immediately.
	rec, _ = api.request(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	rec, _ = api.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestProfileUpdate(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "profile@example.com")

	rec, body := api.request(t, http.MethodPut, "/api/v1/auth/me", token, map[string]any{
		"first_name":  "Ana",
		"preferences": []string{"adventure"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user, _ := body["user"].(map[string]any)
	if user["first_name"] != "Ana" {
		t.Fatalf("expected updated first name, got %v", user["first_name"])
	}

	rec, _ = api.request(t, http.MethodPut, "/api/v1/auth/me", token, map[string]any{
		"username": "   ",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank username, got %d", rec.Code)
	}
}

func TestAdminUserList(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin(t, "one@example.com")
	adminToken := api.adminToken(t)

	rec, body := api.request(t, http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	users, _ := body["users"].([]any)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/bookings"},
		{http.MethodGet, "/api/v1/wishlist"},
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/admin/stats"},
	} {
		rec, _ := api.request(t, route.method, route.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, rec.Code)
		}
	}
}

func TestBookingFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "booker@example.com")
	parisID := api.parisID(t)

	rec, body := api.request(t, http.MethodPost, "/api/v1/bookings", token, map[string]any{
		"destinationId": parisID,
		"startDate":     "2026-10-01",
		"endDate":       "2026-10-08",
		"travelers":     2,
		"contactEmail":  "booker@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create booking: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	booking, _ := body["booking"].(map[string]any)
	if booking["total_price"] != float64(5000) {
		t.Fatalf("expected total 5000, got %v", booking["total_price"])
	}
	bookingID, _ := booking["id"].(string)

	rec, body = api.request(t, http.MethodGet, "/api/v1/bookings", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list bookings: expected 200, got %d", rec.Code)
	}
	if list, _ := body["bookings"].([]any); len(list) != 1 {
		t.Fatalf("expected one booking, got %d", len(list))
	}

	// Another user cannot read it.
	otherToken := api.registerAndLogin(t, "other@example.com")
	rec, _ = api.request(t, http.MethodGet, "/api/v1/bookings/"+bookingID, otherToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for stranger, got %d", rec.Code)
	}

	rec, body = api.request(t, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%s/cancel", bookingID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	booking, _ = body["booking"].(map[string]any)
	if booking["status"] != string(domain.BookingCancelled) {
		t.Fatalf("expected cancelled, got %v", booking["status"])
	}

	rec, _ = api.request(t, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%s/cancel", bookingID), token, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second cancel, got %d", rec.Code)
	}
}

func TestWishlistFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t, "wisher@example.com")
	parisID := api.parisID(t)

	rec, _ := api.request(t, http.MethodPost, "/api/v1/wishlist/"+parisID, token, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("save: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, _ = api.request(t, http.MethodPost, "/api/v1/wishlist/"+parisID, token, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate save, got %d", rec.Code)
	}

	rec, body := api.request(t, http.MethodGet, "/api/v1/wishlist", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	if list, _ := body["wishlist"].([]any); len(list) != 1 {
		t.Fatalf("expected one entry, got %d", len(list))
	}

	rec, _ = api.request(t, http.MethodDelete, "/api/v1/wishlist/"+parisID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}

	// Removing again is not an error.
	rec, _ = api.request(t, http.MethodDelete, "/api/v1/wishlist/"+parisID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected idempotent remove to answer 200, got %d", rec.Code)
	}
}

func TestAdminRoutesGating(t *testing.T) {
	api := newTestAPI(t)
	userToken := api.registerAndLogin(t, "regular@example.com")

	rec, _ := api.request(t, http.MethodGet, "/api/v1/admin/stats", userToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	adminToken := api.adminToken(t)
	rec, body := api.request(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := body["stats"].(map[string]any); !ok {
		t.Fatalf("expected stats payload, got %v", body)
	}
}

func TestAdminDestinationCRUD(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.adminToken(t)

	rec, body := api.request(t, http.MethodPost, "/api/v1/admin/destinations", adminToken, map[string]any{
		"name":       "Petra",
		"country":    "Jordan",
		"category":   "historical",
		"price":      2100,
		"difficulty": "moderate",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	dest, _ := body["destination"].(map[string]any)
	destID, _ := dest["id"].(string)
	if destID == "" {
		t.Fatalf("missing destination id in %v", body)
	}

	rec, body = api.request(t, http.MethodPut, "/api/v1/admin/destinations/"+destID, adminToken, map[string]any{
		"price": 2400,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	dest, _ = body["destination"].(map[string]any)
	if dest["price"] != float64(2400) {
		t.Fatalf("expected updated price, got %v", dest["price"])
	}

	rec, _ = api.request(t, http.MethodDelete, "/api/v1/admin/destinations/"+destID, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec, _ = api.request(t, http.MethodGet, "/api/v1/destinations/"+destID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestAdminBookingStatusAndPayment(t *testing.T) {
	api := newTestAPI(t)
	userToken := api.registerAndLogin(t, "payer@example.com")
	adminToken := api.adminToken(t)
	parisID := api.parisID(t)

	rec, body := api.request(t, http.MethodPost, "/api/v1/bookings", userToken, map[string]any{
		"destinationId": parisID,
		"startDate":     "2026-11-01",
		"endDate":       "2026-11-05",
		"travelers":     1,
		"contactEmail":  "payer@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create booking: expected 201, got %d", rec.Code)
	}
	booking, _ := body["booking"].(map[string]any)
	bookingID, _ := booking["id"].(string)

	rec, body = api.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/bookings/%s/payment", bookingID), adminToken, map[string]any{
		"paymentStatus":   "paid",
		"paymentIntentId": "pi_456",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("payment: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	booking, _ = body["booking"].(map[string]any)
	if booking["payment_status"] != string(domain.PaymentPaid) {
		t.Fatalf("expected paid, got %v", booking["payment_status"])
	}
	if booking["status"] != string(domain.BookingConfirmed) {
		t.Fatalf("expected auto-confirmed booking, got %v", booking["status"])
	}

	rec, body = api.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/bookings/%s/status", bookingID), adminToken, map[string]any{
		"status": "completed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	booking, _ = body["booking"].(map[string]any)
	if booking["status"] != string(domain.BookingCompleted) {
		t.Fatalf("expected completed, got %v", booking["status"])
	}

	// Completed is terminal.
	rec, _ = api.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/bookings/%s/status", bookingID), adminToken, map[string]any{
		"status": "confirmed",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for terminal booking, got %d", rec.Code)
	}

	// Regular users cannot reach the admin booking routes.
	rec, _ = api.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/bookings/%s/status", bookingID), userToken, map[string]any{
		"status": "confirmed",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
}
