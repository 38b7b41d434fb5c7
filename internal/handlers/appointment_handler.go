package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/httpresp"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
	ucAppointment "github.com/garagedesk/garage-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAppointment.CreateAppointment
	deleteUC      *ucAppointment.DeleteAppointment
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		deleteUC:      deleteUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID        string   `json:"client_id" binding:"required"`
	CarID           string   `json:"car_id" binding:"required"`
	ServiceIDs      []string `json:"service_ids" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	Time            string   `json:"time" binding:"required"`
	DiscountPercent int      `json:"discount_percent"`
	TotalPrice      int64    `json:"total_price"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ServiceCenterID: shopID,
		ClientID:        req.ClientID,
		CarID:           req.CarID,
		ServiceIDs:      req.ServiceIDs,
		Date:            req.Date,
		Time:            req.Time,
		DiscountPercent: req.DiscountPercent,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required")
		return
	}

	items, err := h.listByDateUC.Execute(c.Request.Context(), shopID, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_month", "year and month query parameters are required")
		return
	}

	items, err := h.listByMonthUC.Execute(c.Request.Context(), shopID, year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.deleteUC.Execute(c.Request.Context(), shopID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
