package appointment

import (
	"context"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

// Validation rule codes, in check order. The first failing rule is returned;
// later rules are not evaluated.
const (
	CodeServiceCenterNotFound = "service_center_not_found"
	CodeClientNotFound        = "client_not_found"
	CodeCarNotFound           = "car_not_found"
	CodeNoServices            = "no_services"
	CodeServiceNotFound       = "service_not_found"
	CodeInvalidDiscount       = "invalid_discount"
	CodeTotalPriceMismatch    = "total_price_mismatch"
)

// Validate runs the referential checks for an appointment before any write is
// issued: the shop exists, the client belongs to it, the car belongs to the
// client, every service belongs to the shop, and the discount is a sane
// percentage. It returns the referenced services so callers can price the
// appointment without a second fetch.
//
// The backing stores offer no cross-key transaction, so a record deleted
// between validation and write still races; see VerifyTotal for the price
// invariant on already-built records.
func Validate(
	ctx context.Context,
	repo Repository,
	ap *models.Appointment,
) ([]models.Service, error) {

	shop, err := repo.GetServiceCenter(ctx, ap.ServiceCenterID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.Validation(CodeServiceCenterNotFound)
	}

	client, err := repo.GetClient(ctx, ap.ServiceCenterID, ap.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.Validation(CodeClientNotFound)
	}

	if _, ok := client.CarByID(ap.CarID); !ok {
		return nil, httperr.Validation(CodeCarNotFound)
	}

	if len(ap.ServiceIDs) == 0 {
		return nil, httperr.Validation(CodeNoServices)
	}

	services, err := repo.ListServicesByIDs(ctx, ap.ServiceCenterID, ap.ServiceIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	// resolve in request order so pricing follows the booked sequence
	ordered := make([]models.Service, 0, len(ap.ServiceIDs))
	for _, id := range ap.ServiceIDs {
		s, ok := byID[id]
		if !ok {
			return nil, httperr.Validation(CodeServiceNotFound)
		}
		ordered = append(ordered, s)
	}

	if ap.DiscountPercent < 0 || ap.DiscountPercent > 100 {
		return nil, httperr.Validation(CodeInvalidDiscount)
	}

	return ordered, nil
}

// VerifyTotal checks the stored total against the documented rounding rule.
// Appointments built by the create use case always pass; this guards records
// priced by an external caller.
func VerifyTotal(ap *models.Appointment, services []models.Service) error {
	if ap.TotalPrice != TotalPrice(Prices(services), ap.DiscountPercent) {
		return httperr.Validation(CodeTotalPriceMismatch)
	}
	return nil
}
