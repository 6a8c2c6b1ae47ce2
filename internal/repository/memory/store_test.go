package memory

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

func TestUserCreateEnforcesEmailUniqueness(t *testing.T) {
	store := NewStore()
	users := store.Users()
	ctx := context.Background()

	first, err := users.Create(ctx, ports.NewUser{Email: "amira@example.com", Username: "amira"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatal("expected a generated user ID")
	}

	if _, err := users.Create(ctx, ports.NewUser{Email: "amira@example.com", Username: "other"}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestUserUpdateAndStripeInfo(t *testing.T) {
	store := NewStore()
	users := store.Users()
	ctx := context.Background()

	user, err := users.Create(ctx, ports.NewUser{Email: "omar@example.com", Username: "omar"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	name := "Omar"
	prefs := []string{"beaches", "culture"}
	updated, err := users.Update(ctx, user.ID, domain.UserUpdate{FirstName: &name, Preferences: &prefs})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Omar" || len(updated.Preferences) != 2 {
		t.Fatalf("unexpected user after update: %+v", updated)
	}
	if updated.Username != "omar" {
		t.Fatalf("expected untouched username, got %q", updated.Username)
	}

	withStripe, err := users.UpdateStripeInfo(ctx, user.ID, "cus_1", "sub_1")
	if err != nil {
		t.Fatalf("UpdateStripeInfo returned error: %v", err)
	}
	if withStripe.StripeCustomerID == nil || *withStripe.StripeCustomerID != "cus_1" {
		t.Fatalf("expected stripe customer id, got %v", withStripe.StripeCustomerID)
	}
	if withStripe.StripeSubscriptionID == nil || *withStripe.StripeSubscriptionID != "sub_1" {
		t.Fatalf("expected stripe subscription id, got %v", withStripe.StripeSubscriptionID)
	}

	if _, err := users.Update(ctx, uuid.New(), domain.UserUpdate{FirstName: &name}); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for unknown user, got %v", err)
	}
}

func TestUserFindByEmailMiss(t *testing.T) {
	store := NewStore()

	_, err := store.Users().FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestDestinationSearchMatchesNameCountryDescription(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	byName, err := store.Destinations().Search(ctx, "paris")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Paris" {
		t.Fatalf("expected Paris, got %v", byName)
	}

	byCountry, err := store.Destinations().Search(ctx, "indonesia")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(byCountry) != 1 || byCountry[0].Name != "Bali" {
		t.Fatalf("expected Bali, got %v", byCountry)
	}

	none, err := store.Destinations().Search(ctx, "atlantis")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestDestinationListByCategory(t *testing.T) {
	store := NewSeededStore()

	luxury, err := store.Destinations().ListByCategory(context.Background(), domain.CategoryLuxury)
	if err != nil {
		t.Fatalf("ListByCategory returned error: %v", err)
	}
	if len(luxury) != 1 || luxury[0].Name != "Maldives" {
		t.Fatalf("expected Maldives, got %v", luxury)
	}
}

func TestDestinationUpdateMiss(t *testing.T) {
	store := NewStore()

	name := "Nowhere"
	_, err := store.Destinations().Update(context.Background(), uuid.New(), domain.DestinationFields{Name: &name})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestWishlistAddRejectsDuplicatePair(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	destinations, err := store.Destinations().List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	userID := uuid.New()

	if _, err := store.Wishlist().Add(ctx, userID, destinations[0].ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := store.Wishlist().Add(ctx, userID, destinations[0].ID); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate pair, got %v", err)
	}

	// Same destination for a different user is fine.
	if _, err := store.Wishlist().Add(ctx, uuid.New(), destinations[0].ID); err != nil {
		t.Fatalf("Add for second user returned error: %v", err)
	}
}

func TestWishlistRemoveMissingPair(t *testing.T) {
	store := NewStore()

	err := store.Wishlist().Remove(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestBookingStatsCountsAndGrossValue(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	bookings := store.Bookings()

	seed := []struct {
		status  domain.BookingStatus
		payment domain.PaymentStatus
		price   float64
	}{
		{domain.BookingPending, domain.PaymentPending, 1000},
		{domain.BookingConfirmed, domain.PaymentPaid, 2000},
		{domain.BookingCancelled, domain.PaymentFailed, 4000},
	}
	for _, b := range seed {
		if _, err := bookings.Create(ctx, ports.NewBooking{
			UserID:        uuid.New(),
			DestinationID: uuid.New(),
			Travelers:     1,
			TotalPrice:    b.price,
			Status:        b.status,
			PaymentStatus: b.payment,
		}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	stats, err := bookings.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 3 || stats.Confirmed != 1 || stats.Pending != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.GrossValue != 7000 {
		t.Fatalf("expected gross value 7000 including unpaid and cancelled, got %v", stats.GrossValue)
	}
}

func TestPaidRevenueWindow(t *testing.T) {
	store := NewStore()
	current := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	ctx := context.Background()
	bookings := store.Bookings()

	add := func(createdAt time.Time, payment domain.PaymentStatus, price float64) {
		current = createdAt
		if _, err := bookings.Create(ctx, ports.NewBooking{
			UserID:        uuid.New(),
			DestinationID: uuid.New(),
			Travelers:     1,
			TotalPrice:    price,
			Status:        domain.BookingConfirmed,
			PaymentStatus: payment,
		}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	add(time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), domain.PaymentPaid, 1800)
	add(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), domain.PaymentPaid, 2500)
	add(time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), domain.PaymentPending, 9999)

	total, err := bookings.PaidRevenue(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("PaidRevenue returned error: %v", err)
	}
	if total != 4300 {
		t.Fatalf("expected total paid revenue 4300, got %v", total)
	}

	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthRevenue, err := bookings.PaidRevenue(ctx, march, time.Time{})
	if err != nil {
		t.Fatalf("PaidRevenue returned error: %v", err)
	}
	if monthRevenue != 2500 {
		t.Fatalf("expected March revenue 2500, got %v", monthRevenue)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := NewStore()
	sessions := store.Sessions()
	ctx := context.Background()
	userID := uuid.New()

	created, err := sessions.CreateSession(ctx, userID, "token-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if !created.IsActive {
		t.Fatal("expected new session to be active")
	}

	found, err := sessions.FindActiveSession(ctx, "token-1")
	if err != nil {
		t.Fatalf("FindActiveSession returned error: %v", err)
	}
	if found.UserID != userID {
		t.Fatalf("expected session user %s, got %s", userID, found.UserID)
	}

	if err := sessions.DeactivateSession(ctx, "token-1"); err != nil {
		t.Fatalf("DeactivateSession returned error: %v", err)
	}
	if _, err := sessions.FindActiveSession(ctx, "token-1"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows after deactivation, got %v", err)
	}
}
