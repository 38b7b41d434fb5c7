package appointment

import (
	"context"

	"github.com/garagedesk/garage-scheduler/internal/models"
)

// Repository is every lookup the appointment rules need, plus appointment
// persistence. Reads return (nil, nil) for absent records; errors are
// transport failures only.
type Repository interface {
	// -------- Referenced records --------
	GetServiceCenter(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetClient(
		ctx context.Context,
		shopID string,
		clientID string,
	) (*models.Client, error)

	ListServicesByIDs(
		ctx context.Context,
		shopID string,
		ids []string,
	) ([]models.Service, error)

	// -------- Appointments --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		shopID string,
		id string,
	) (*models.Appointment, error)

	Delete(
		ctx context.Context,
		shopID string,
		id string,
	) error

	ListForDate(
		ctx context.Context,
		shopID string,
		date string,
	) ([]models.Appointment, error)

	ListForMonth(
		ctx context.Context,
		shopID string,
		year int,
		month int,
	) ([]models.Appointment, error)
}
