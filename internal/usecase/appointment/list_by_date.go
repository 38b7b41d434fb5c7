package appointment

import (
	"context"

	domain "github.com/garagedesk/garage-scheduler/internal/domain/appointment"
	"github.com/garagedesk/garage-scheduler/internal/dates"
	"github.com/garagedesk/garage-scheduler/internal/dto"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	shopID string,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if !dates.ValidDate(date) {
		return nil, httperr.Validation("invalid_date")
	}

	appointments, err := uc.repo.ListForDate(ctx, shopID, date)
	if err != nil {
		return nil, err
	}

	return joinListing(ctx, uc.repo, shopID, appointments)
}

// joinListing resolves client and car names for display. The stored record
// only holds references; this is the read-time join.
func joinListing(
	ctx context.Context,
	repo domain.Repository,
	shopID string,
	appointments []models.Appointment,
) ([]dto.AppointmentListDTO, error) {

	clientCache := make(map[string]*models.Client)

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			Time:            ap.Time,
			ServiceIDs:      ap.ServiceIDs,
			TotalPrice:      ap.TotalPrice,
			DiscountPercent: ap.DiscountPercent,
			CreatedAt:       ap.CreatedAt,
		}

		client, cached := clientCache[ap.ClientID]
		if !cached {
			var err error
			client, err = repo.GetClient(ctx, shopID, ap.ClientID)
			if err != nil {
				return nil, err
			}
			clientCache[ap.ClientID] = client
		}

		if client != nil {
			item.ClientName = client.Name + " " + client.Surname
			if car, ok := client.CarByID(ap.CarID); ok {
				item.CarLabel = car.Brand + " " + car.Model
			}
		}

		out = append(out, item)
	}

	return out, nil
}
