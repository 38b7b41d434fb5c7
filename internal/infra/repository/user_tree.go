package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/treestore"
)

func userPath(id string) string {
	return "users/" + id
}

func emailIndexPath(email string) string {
	return "index/user-emails/" + email
}

// storedUser is the storage representation of a User. The model hides the
// password hash from API responses with json:"-", so the blob written to the
// tree store needs its own codec or the hash would be silently dropped.
type storedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

func encodeUser(u *models.User) ([]byte, error) {
	return json.Marshal(storedUser{User: *u, PasswordHash: u.PasswordHash})
}

func decodeUser(raw []byte) (*models.User, bool) {
	var su storedUser
	if err := json.Unmarshal(raw, &su); err != nil {
		return nil, false
	}
	u := su.User
	u.PasswordHash = su.PasswordHash
	return &u, true
}

// UserTreeRepository stores shop-operator records at users/{id} in the tree
// store, with a secondary email index for login and uniqueness checks.
type UserTreeRepository struct {
	tree treestore.Store
}

func NewUserTreeRepository(tree treestore.Store) *UserTreeRepository {
	return &UserTreeRepository{tree: tree}
}

func (r *UserTreeRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := r.put(ctx, u); err != nil {
		return err
	}
	return r.indexEmail(ctx, u.Email, u.ID)
}

// GetByID returns (nil, nil) when the record is absent. Malformed stored data
// also reads as absent; only transport failures surface as errors.
func (r *UserTreeRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	raw, found, err := r.tree.Get(ctx, userPath(id))
	if err != nil {
		return nil, httperr.Read("user_read_failed", err)
	}
	if !found {
		return nil, nil
	}

	u, ok := decodeUser(raw)
	if !ok {
		return nil, nil
	}
	return u, nil
}

// FindIDByEmail returns "" when no user owns the address.
func (r *UserTreeRepository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	raw, found, err := r.tree.Get(ctx, emailIndexPath(email))
	if err != nil {
		return "", httperr.Read("user_read_failed", err)
	}
	if !found {
		return "", nil
	}
	return string(raw), nil
}

func (r *UserTreeRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	id, err := r.FindIDByEmail(ctx, email)
	if err != nil || id == "" {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update is a full-record overwrite, not a patch. A changed email re-points
// the index and drops the stale entry.
func (r *UserTreeRepository) Update(ctx context.Context, u *models.User) error {
	prev, err := r.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}

	u.UpdatedAt = time.Now().UTC()
	if err := r.put(ctx, u); err != nil {
		return err
	}

	if prev != nil && prev.Email != u.Email {
		if err := r.tree.Delete(ctx, emailIndexPath(prev.Email)); err != nil {
			return httperr.Write("user_write_failed", err)
		}
	}
	return r.indexEmail(ctx, u.Email, u.ID)
}

func (r *UserTreeRepository) Delete(ctx context.Context, id string) error {
	prev, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.tree.Delete(ctx, userPath(id)); err != nil {
		return httperr.Write("user_delete_failed", err)
	}
	if prev != nil {
		if err := r.tree.Delete(ctx, emailIndexPath(prev.Email)); err != nil {
			return httperr.Write("user_delete_failed", err)
		}
	}
	return nil
}

func (r *UserTreeRepository) put(ctx context.Context, u *models.User) error {
	raw, err := encodeUser(u)
	if err != nil {
		return httperr.Write("user_encode_failed", err)
	}
	if err := r.tree.Set(ctx, userPath(u.ID), raw); err != nil {
		return httperr.Write("user_write_failed", err)
	}
	return nil
}

func (r *UserTreeRepository) indexEmail(ctx context.Context, email, id string) error {
	if err := r.tree.Set(ctx, emailIndexPath(email), []byte(id)); err != nil {
		return httperr.Write("user_write_failed", err)
	}
	return nil
}
