package appointment

import (
	"context"

	"github.com/garagedesk/garage-scheduler/internal/audit"
	"github.com/garagedesk/garage-scheduler/internal/dates"
	domain "github.com/garagedesk/garage-scheduler/internal/domain/appointment"
	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceCenterID string

	ClientID   string
	CarID      string
	ServiceIDs []string

	Date string
	Time string

	DiscountPercent int

	// TotalPrice is optional. When non-zero it must match the computed total;
	// when zero the use case prices the appointment itself.
	TotalPrice int64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates every referential rule before issuing the write. The
// first failing rule is returned and nothing is persisted.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !dates.ValidDate(in.Date) || !dates.ValidTime(in.Time) {
		return nil, httperr.Validation("invalid_date_or_time")
	}

	ap := &models.Appointment{
		ServiceCenterID: in.ServiceCenterID,
		ClientID:        in.ClientID,
		CarID:           in.CarID,
		ServiceIDs:      in.ServiceIDs,
		Date:            in.Date,
		Time:            in.Time,
		DiscountPercent: in.DiscountPercent,
	}

	services, err := domain.Validate(ctx, uc.repo, ap)
	if err != nil {
		return nil, err
	}

	ap.TotalPrice = domain.TotalPrice(domain.Prices(services), ap.DiscountPercent)
	if in.TotalPrice != 0 && in.TotalPrice != ap.TotalPrice {
		return nil, httperr.Validation(domain.CodeTotalPriceMismatch)
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ServiceCenterID: in.ServiceCenterID,
		UserID:          in.ServiceCenterID,
		Action:          "appointment_created",
		Entity:          "appointment",
		EntityID:        ap.ID,
	})

	return ap, nil
}
