package repository_test

import (
	"context"
	"testing"

	repo "github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/treestore"
)

func TestUserRoundTripAndEmailIndex(t *testing.T) {
	r := repo.NewUserTreeRepository(treestore.NewMemoryStore())
	ctx := context.Background()

	u := models.User{Username: "garage", Email: "shop@example.com", Phone: "+4912345678"}
	if err := r.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected an assigned id")
	}

	got, err := r.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Username != "garage" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	byEmail, err := r.GetByEmail(ctx, "shop@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("email index broken: %+v", byEmail)
	}
}

func TestUserPasswordHashSurvivesStorage(t *testing.T) {
	r := repo.NewUserTreeRepository(treestore.NewMemoryStore())
	ctx := context.Background()

	u := models.User{
		Username:     "garage",
		Email:        "shop@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye",
	}
	if err := r.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.GetByEmail(ctx, "shop@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil {
		t.Fatal("expected user")
	}
	if got.PasswordHash != u.PasswordHash {
		t.Fatalf("password hash lost in storage: %q", got.PasswordHash)
	}
}

func TestUserEmailIndexFollowsUpdate(t *testing.T) {
	r := repo.NewUserTreeRepository(treestore.NewMemoryStore())
	ctx := context.Background()

	u := models.User{Username: "garage", Email: "old@example.com"}
	if err := r.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}

	u.Email = "new@example.com"
	if err := r.Update(ctx, &u); err != nil {
		t.Fatalf("update: %v", err)
	}

	if stale, _ := r.GetByEmail(ctx, "old@example.com"); stale != nil {
		t.Fatalf("stale email index entry survived: %+v", stale)
	}
	if fresh, _ := r.GetByEmail(ctx, "new@example.com"); fresh == nil || fresh.ID != u.ID {
		t.Fatalf("new email not indexed: %+v", fresh)
	}
}

func TestUserDeleteRemovesRecordAndIndex(t *testing.T) {
	r := repo.NewUserTreeRepository(treestore.NewMemoryStore())
	ctx := context.Background()

	u := models.User{Username: "garage", Email: "shop@example.com"}
	if err := r.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got, _ := r.GetByID(ctx, u.ID); got != nil {
		t.Fatalf("expected absence after delete, got %+v", got)
	}
	if got, _ := r.GetByEmail(ctx, "shop@example.com"); got != nil {
		t.Fatalf("expected index cleanup, got %+v", got)
	}
}
