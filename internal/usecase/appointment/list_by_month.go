package appointment

import (
	"context"

	domain "github.com/garagedesk/garage-scheduler/internal/domain/appointment"
	"github.com/garagedesk/garage-scheduler/internal/dto"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	shopID string,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 1 || month < 1 || month > 12 {
		return nil, httperr.Validation("invalid_month")
	}

	appointments, err := uc.repo.ListForMonth(ctx, shopID, year, month)
	if err != nil {
		return nil, err
	}

	return joinListing(ctx, uc.repo, shopID, appointments)
}
