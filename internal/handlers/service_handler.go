package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/httpresp"
	"github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

type ServiceHandler struct {
	services *repository.ServiceGormRepository
}

func NewServiceHandler(services *repository.ServiceGormRepository) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	services, err := h.services.List(c.Request.Context(), shopID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	service, err := h.services.GetByID(c.Request.Context(), shopID, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if service == nil {
		httperr.NotFoundStatus(c, "service_not_found", "no such service")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		ServiceCenterID: shopID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMin:     req.DurationMin,
	}

	if err := h.services.Create(c.Request.Context(), &service); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	service, err := h.services.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if service == nil {
		httperr.NotFoundStatus(c, "service_not_found", "no such service")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMin = req.DurationMin

	if err := h.services.Update(c.Request.Context(), service); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.services.Delete(c.Request.Context(), shopID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
