package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
	"github.com/garagedesk/garage-scheduler/internal/store/notify"
	"github.com/garagedesk/garage-scheduler/internal/stream"
)

func servicesTopic(shopID string) string {
	return "services:" + shopID
}

// ServiceGormRepository stores the service catalog in the document store,
// filtered by shop.
type ServiceGormRepository struct {
	db  *gorm.DB
	bus notify.Bus
}

func NewServiceGormRepository(db *gorm.DB, bus notify.Bus) *ServiceGormRepository {
	return &ServiceGormRepository{db: db, bus: bus}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return httperr.Write("service_write_failed", err)
	}
	r.bus.Publish(ctx, servicesTopic(s.ServiceCenterID))
	return nil
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, shopID, id string) (*models.Service, error) {
	var s models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND service_center_id = ?", id, shopID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.Read("service_read_failed", err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	s.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return httperr.Write("service_write_failed", err)
	}
	r.bus.Publish(ctx, servicesTopic(s.ServiceCenterID))
	return nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, shopID, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND service_center_id = ?", id, shopID).
		Delete(&models.Service{}).Error
	if err != nil {
		return httperr.Write("service_delete_failed", err)
	}
	r.bus.Publish(ctx, servicesTopic(shopID))
	return nil
}

func (r *ServiceGormRepository) List(ctx context.Context, shopID string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("service_center_id = ?", shopID).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, httperr.Read("service_list_failed", err)
	}
	return services, nil
}

// ListByIDs resolves a set of service ids within one shop. Missing ids are
// simply absent from the result; callers decide whether that is an error.
func (r *ServiceGormRepository) ListByIDs(ctx context.Context, shopID string, ids []string) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("service_center_id = ? AND id IN ?", shopID, ids).
		Find(&services).Error
	if err != nil {
		return nil, httperr.Read("service_list_failed", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) Subscribe(ctx context.Context, shopID string) *stream.Subscription[models.Service] {
	signal, release := r.bus.Subscribe(ctx, servicesTopic(shopID))
	return stream.Open(ctx, signal, release, func(ctx context.Context) ([]models.Service, error) {
		return r.List(ctx, shopID)
	})
}
