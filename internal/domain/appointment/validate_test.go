package appointment_test

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/garagedesk/garage-scheduler/internal/domain/appointment"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
	repo "github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
	"github.com/garagedesk/garage-scheduler/internal/store/treestore"
)

// seededRepo builds the appointment repository on an in-memory document
// store and tree store, with one shop, one client owning one car, and two
// services.
func seededRepo(t *testing.T) domain.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Service{}, &models.Appointment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tree := treestore.NewMemoryStore()
	bus := notify.NewMemoryBus()

	users := repo.NewUserTreeRepository(tree)
	clients := repo.NewClientTreeRepository(tree, bus)
	services := repo.NewServiceGormRepository(db, bus)

	ctx := context.Background()

	if err := users.Create(ctx, &models.User{ID: "shop1", Username: "garage", Email: "shop@example.com"}); err != nil {
		t.Fatalf("seed shop: %v", err)
	}
	if err := clients.Create(ctx, &models.Client{
		ID:              "c1",
		ServiceCenterID: "shop1",
		Name:            "Ada",
		Surname:         "Lovelace",
		Cars:            []models.Car{{ID: "car1", Brand: "Volvo", Model: "V60", Year: 2019}},
	}); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	for _, s := range []models.Service{
		{ID: "s1", ServiceCenterID: "shop1", Name: "Oil change", Price: 1000, DurationMin: 30},
		{ID: "s2", ServiceCenterID: "shop1", Name: "Tire swap", Price: 500, DurationMin: 45},
	} {
		svc := s
		if err := services.Create(ctx, &svc); err != nil {
			t.Fatalf("seed service: %v", err)
		}
	}

	return repo.NewAppointmentRepository(db, users, clients, services)
}

func validAppointment() *models.Appointment {
	return &models.Appointment{
		ServiceCenterID: "shop1",
		ClientID:        "c1",
		CarID:           "car1",
		ServiceIDs:      []string{"s1", "s2"},
		Date:            "2026-09-15",
		Time:            "10:30",
		DiscountPercent: 10,
	}
}

func TestValidateOrder(t *testing.T) {
	r := seededRepo(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.Appointment)
		code   string
	}{
		{"unknown shop", func(ap *models.Appointment) { ap.ServiceCenterID = "ghost" }, domain.CodeServiceCenterNotFound},
		{"unknown client", func(ap *models.Appointment) { ap.ClientID = "ghost" }, domain.CodeClientNotFound},
		{"unknown car", func(ap *models.Appointment) { ap.CarID = "ghost" }, domain.CodeCarNotFound},
		{"no services", func(ap *models.Appointment) { ap.ServiceIDs = nil }, domain.CodeNoServices},
		{"unknown service", func(ap *models.Appointment) { ap.ServiceIDs = []string{"s1", "ghost"} }, domain.CodeServiceNotFound},
		{"discount above range", func(ap *models.Appointment) { ap.DiscountPercent = 150 }, domain.CodeInvalidDiscount},
		{"negative discount", func(ap *models.Appointment) { ap.DiscountPercent = -1 }, domain.CodeInvalidDiscount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ap := validAppointment()
			tc.mutate(ap)

			_, err := domain.Validate(ctx, r, ap)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if httperr.KindOf(err) != httperr.KindValidation {
				t.Fatalf("expected validation kind, got %q", httperr.KindOf(err))
			}
			if !httperr.Is(err, tc.code) {
				t.Fatalf("expected code %q, got %v", tc.code, err)
			}
		})
	}
}

func TestValidateReturnsServicesInRequestOrder(t *testing.T) {
	r := seededRepo(t)

	ap := validAppointment()
	ap.ServiceIDs = []string{"s2", "s1"}

	services, err := domain.Validate(context.Background(), r, ap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 || services[0].ID != "s2" || services[1].ID != "s1" {
		t.Fatalf("services not in request order: %+v", services)
	}
}

func TestVerifyTotal(t *testing.T) {
	r := seededRepo(t)

	ap := validAppointment()
	services, err := domain.Validate(context.Background(), r, ap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ap.TotalPrice = 1350
	if err := domain.VerifyTotal(ap, services); err != nil {
		t.Fatalf("expected 1350 to verify: %v", err)
	}

	ap.TotalPrice = 1351
	if err := domain.VerifyTotal(ap, services); !httperr.Is(err, domain.CodeTotalPriceMismatch) {
		t.Fatalf("expected total_price_mismatch, got %v", err)
	}
}
