package repository_test

import (
	"context"
	"testing"
	"time"

	repo "github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
	"github.com/garagedesk/garage-scheduler/internal/store/treestore"
)

func newClientRepo() (*repo.ClientTreeRepository, *treestore.MemoryStore) {
	tree := treestore.NewMemoryStore()
	return repo.NewClientTreeRepository(tree, notify.NewMemoryBus()), tree
}

func TestClientRoundTrip(t *testing.T) {
	r, _ := newClientRepo()
	ctx := context.Background()

	in := models.Client{
		ID:              "c1",
		ServiceCenterID: "shop1",
		Name:            "Ada",
		Surname:         "Lovelace",
		Birthdate:       "1990-12-10",
		Phone:           "+4912345678",
		Cars: []models.Car{
			{ID: "car1", Brand: "Volvo", Model: "V60", Year: 2019, EngineVolume: 2.0, HorsePower: 190},
		},
	}
	if err := r.Create(ctx, &in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.GetByID(ctx, "shop1", "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected client, got none")
	}
	if got.Name != in.Name || got.Surname != in.Surname || got.Birthdate != in.Birthdate {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Cars) != 1 || got.Cars[0] != in.Cars[0] {
		t.Errorf("cars did not survive round trip: %+v", got.Cars)
	}
}

func TestClientDeleteThenGet(t *testing.T) {
	r, _ := newClientRepo()
	ctx := context.Background()

	if err := r.Create(ctx, &models.Client{ID: "c1", ServiceCenterID: "shop1", Name: "Ada"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Delete(ctx, "shop1", "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := r.GetByID(ctx, "shop1", "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absence after delete, got %+v", got)
	}
}

func TestClientMalformedRecordReadsAsAbsent(t *testing.T) {
	r, tree := newClientRepo()
	ctx := context.Background()

	if err := tree.Set(ctx, "shops/shop1/clients/bad", []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := r.GetByID(ctx, "shop1", "bad")
	if err != nil {
		t.Fatalf("malformed record must not fail the read: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absence, got %+v", got)
	}
}

func TestClientPartialRecordDecodesWithDefaults(t *testing.T) {
	r, tree := newClientRepo()
	ctx := context.Background()

	if err := tree.Set(ctx, "shops/shop1/clients/p1", []byte(`{"id":"p1","name":"Ada"}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := r.GetByID(ctx, "shop1", "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected client, got none")
	}
	if got.Surname != "" || got.Phone != "" || len(got.Cars) != 0 {
		t.Errorf("missing fields must default to zero values: %+v", got)
	}
}

func TestClientDuplicateCarIDRejected(t *testing.T) {
	r, _ := newClientRepo()

	err := r.Create(context.Background(), &models.Client{
		ServiceCenterID: "shop1",
		Name:            "Ada",
		Cars: []models.Car{
			{ID: "car1", Brand: "Volvo"},
			{ID: "car1", Brand: "Saab"},
		},
	})
	if !httperr.Is(err, "duplicate_car_id") {
		t.Fatalf("expected duplicate_car_id, got %v", err)
	}
}

func TestClientCarsGetIDsAssigned(t *testing.T) {
	r, _ := newClientRepo()

	cl := models.Client{
		ServiceCenterID: "shop1",
		Name:            "Ada",
		Cars:            []models.Car{{Brand: "Volvo"}, {Brand: "Saab"}},
	}
	if err := r.Create(context.Background(), &cl); err != nil {
		t.Fatalf("create: %v", err)
	}
	if cl.Cars[0].ID == "" || cl.Cars[1].ID == "" || cl.Cars[0].ID == cl.Cars[1].ID {
		t.Fatalf("cars must get distinct ids: %+v", cl.Cars)
	}
}

func TestClientSubscribe(t *testing.T) {
	r, _ := newClientRepo()
	ctx := context.Background()

	if err := r.Create(ctx, &models.Client{ID: "c1", ServiceCenterID: "shop1", Name: "Ada"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// a client of another shop must never appear in shop1's snapshots
	if err := r.Create(ctx, &models.Client{ID: "x1", ServiceCenterID: "other", Name: "Mallory"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	sub := r.Subscribe(ctx, "shop1")
	defer sub.Cancel()

	first := mustSnapshot(t, sub.Updates())
	if len(first) != 1 || first[0].ID != "c1" {
		t.Fatalf("unexpected initial snapshot: %+v", first)
	}

	if err := r.Create(ctx, &models.Client{ID: "c2", ServiceCenterID: "shop1", Name: "Grace"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := mustSnapshot(t, sub.Updates())
	if len(second) != 2 {
		t.Fatalf("expected snapshot with both clients, got %+v", second)
	}
	for _, cl := range second {
		if cl.ServiceCenterID != "shop1" {
			t.Fatalf("snapshot leaked foreign record: %+v", cl)
		}
	}
}

func TestClientSubscribeCancelClosesStream(t *testing.T) {
	r, _ := newClientRepo()

	sub := r.Subscribe(context.Background(), "shop1")
	mustSnapshot(t, sub.Updates())

	sub.Cancel()

	select {
	case _, ok := <-sub.Updates():
		if ok {
			t.Fatal("expected closed stream after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close after cancel")
	}
}

func mustSnapshot[T any](t *testing.T, ch <-chan []T) []T {
	t.Helper()
	select {
	case snap, ok := <-ch:
		if !ok {
			t.Fatal("stream closed before snapshot arrived")
		}
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}
