package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
	"github.com/garagedesk/garage-scheduler/internal/store/treestore"
	"github.com/garagedesk/garage-scheduler/internal/stream"
)

func clientPrefix(shopID string) string {
	return "shops/" + shopID + "/clients/"
}

func clientPath(shopID, id string) string {
	return clientPrefix(shopID) + id
}

func clientsTopic(shopID string) string {
	return "clients:" + shopID
}

// ClientTreeRepository stores client records (cars embedded) at
// shops/{shopID}/clients/{id} and signals the shop topic after every write.
type ClientTreeRepository struct {
	tree treestore.Store
	bus  notify.Bus
}

func NewClientTreeRepository(tree treestore.Store, bus notify.Bus) *ClientTreeRepository {
	return &ClientTreeRepository{tree: tree, bus: bus}
}

func (r *ClientTreeRepository) Create(ctx context.Context, cl *models.Client) error {
	if cl.ID == "" {
		cl.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	cl.CreatedAt = now
	cl.UpdatedAt = now

	return r.put(ctx, cl)
}

func (r *ClientTreeRepository) GetByID(ctx context.Context, shopID, id string) (*models.Client, error) {
	raw, found, err := r.tree.Get(ctx, clientPath(shopID, id))
	if err != nil {
		return nil, httperr.Read("client_read_failed", err)
	}
	if !found {
		return nil, nil
	}

	var cl models.Client
	if err := json.Unmarshal(raw, &cl); err != nil {
		return nil, nil
	}
	return &cl, nil
}

func (r *ClientTreeRepository) Update(ctx context.Context, cl *models.Client) error {
	cl.UpdatedAt = time.Now().UTC()
	return r.put(ctx, cl)
}

func (r *ClientTreeRepository) Delete(ctx context.Context, shopID, id string) error {
	if err := r.tree.Delete(ctx, clientPath(shopID, id)); err != nil {
		return httperr.Write("client_delete_failed", err)
	}
	r.bus.Publish(ctx, clientsTopic(shopID))
	return nil
}

func (r *ClientTreeRepository) List(ctx context.Context, shopID string) ([]models.Client, error) {
	raws, err := r.tree.List(ctx, clientPrefix(shopID))
	if err != nil {
		return nil, httperr.Read("client_list_failed", err)
	}

	clients := make([]models.Client, 0, len(raws))
	for _, raw := range raws {
		var cl models.Client
		if err := json.Unmarshal(raw, &cl); err != nil {
			continue
		}
		clients = append(clients, cl)
	}

	sort.Slice(clients, func(i, j int) bool {
		a, b := clients[i], clients[j]
		if a.Surname != b.Surname {
			return a.Surname < b.Surname
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return clients, nil
}

// Subscribe streams full snapshots of the shop's client list. Cancelling the
// subscription or ctx releases the change listener.
func (r *ClientTreeRepository) Subscribe(ctx context.Context, shopID string) *stream.Subscription[models.Client] {
	signal, release := r.bus.Subscribe(ctx, clientsTopic(shopID))
	return stream.Open(ctx, signal, release, func(ctx context.Context) ([]models.Client, error) {
		return r.List(ctx, shopID)
	})
}

func (r *ClientTreeRepository) put(ctx context.Context, cl *models.Client) error {
	if err := normalizeCars(cl); err != nil {
		return err
	}

	raw, err := json.Marshal(cl)
	if err != nil {
		return httperr.Write("client_encode_failed", err)
	}
	if err := r.tree.Set(ctx, clientPath(cl.ServiceCenterID, cl.ID), raw); err != nil {
		return httperr.Write("client_write_failed", err)
	}
	r.bus.Publish(ctx, clientsTopic(cl.ServiceCenterID))
	return nil
}

// normalizeCars assigns ids to new cars and rejects duplicate ids within one
// client.
func normalizeCars(cl *models.Client) error {
	seen := make(map[string]bool, len(cl.Cars))
	for i := range cl.Cars {
		if cl.Cars[i].ID == "" {
			cl.Cars[i].ID = uuid.NewString()
		}
		if seen[cl.Cars[i].ID] {
			return httperr.Validation("duplicate_car_id")
		}
		seen[cl.Cars[i].ID] = true
	}
	return nil
}
