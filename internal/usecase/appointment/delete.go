package appointment

import (
	"context"

	"github.com/garagedesk/garage-scheduler/internal/audit"
	domain "github.com/garagedesk/garage-scheduler/internal/domain/appointment"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	shopID string,
	appointmentID string,
) error {

	ap, err := uc.repo.GetByID(ctx, shopID, appointmentID)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.NotFound("appointment_not_found")
	}

	if err := uc.repo.Delete(ctx, shopID, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ServiceCenterID: shopID,
		UserID:          shopID,
		Action:          "appointment_deleted",
		Entity:          "appointment",
		EntityID:        ap.ID,
	})

	return nil
}
