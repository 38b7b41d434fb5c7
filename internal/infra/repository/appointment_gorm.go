package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/garagedesk/garage-scheduler/internal/domain/appointment"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

// AppointmentRepository persists appointments in the document store and
// resolves referenced shop and client records from the tree store. It is the
// single implementation of the appointment domain's Repository.
type AppointmentRepository struct {
	db       *gorm.DB
	users    *UserTreeRepository
	clients  *ClientTreeRepository
	services *ServiceGormRepository
}

func NewAppointmentRepository(
	db *gorm.DB,
	users *UserTreeRepository,
	clients *ClientTreeRepository,
	services *ServiceGormRepository,
) *AppointmentRepository {
	return &AppointmentRepository{
		db:       db,
		users:    users,
		clients:  clients,
		services: services,
	}
}

// --------------------------------------------------
// Referenced records
// --------------------------------------------------

func (r *AppointmentRepository) GetServiceCenter(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return r.users.GetByID(ctx, id)
}

func (r *AppointmentRepository) GetClient(
	ctx context.Context,
	shopID string,
	clientID string,
) (*models.Client, error) {
	return r.clients.GetByID(ctx, shopID, clientID)
}

func (r *AppointmentRepository) ListServicesByIDs(
	ctx context.Context,
	shopID string,
	ids []string,
) ([]models.Service, error) {
	return r.services.ListByIDs(ctx, shopID, ids)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return httperr.Write("appointment_write_failed", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(
	ctx context.Context,
	shopID string,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND service_center_id = ?", id, shopID).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.Read("appointment_read_failed", err)
	}
	return &ap, nil
}

func (r *AppointmentRepository) Delete(
	ctx context.Context,
	shopID string,
	id string,
) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND service_center_id = ?", id, shopID).
		Delete(&models.Appointment{}).Error
	if err != nil {
		return httperr.Write("appointment_delete_failed", err)
	}
	return nil
}

func (r *AppointmentRepository) ListForDate(
	ctx context.Context,
	shopID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("service_center_id = ? AND date = ?", shopID, date).
		Order("time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, httperr.Read("appointment_list_failed", err)
	}
	return apps, nil
}

func (r *AppointmentRepository) ListForMonth(
	ctx context.Context,
	shopID string,
	year int,
	month int,
) ([]models.Appointment, error) {

	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("service_center_id = ? AND date LIKE ?", shopID, prefix+"%").
		Order("date ASC, time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, httperr.Read("appointment_list_failed", err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentRepository)(nil)
