package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/httpresp"
	"github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

type ClientHandler struct {
	clients *repository.ClientTreeRepository
}

func NewClientHandler(clients *repository.ClientTreeRepository) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// --------- Requests ---------

type ClientRequest struct {
	Name      string       `json:"name" binding:"required"`
	Surname   string       `json:"surname"`
	Birthdate string       `json:"birthdate"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Note      string       `json:"note"`
	Cars      []models.Car `json:"cars"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	clients, err := h.clients.List(c.Request.Context(), shopID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	client, err := h.clients.GetByID(c.Request.Context(), shopID, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if client == nil {
		httperr.NotFoundStatus(c, "client_not_found", "no such client")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client := models.Client{
		ServiceCenterID: shopID,
		Name:            req.Name,
		Surname:         req.Surname,
		Birthdate:       req.Birthdate,
		Email:           req.Email,
		Phone:           req.Phone,
		Note:            req.Note,
		Cars:            req.Cars,
	}

	if err := h.clients.Create(c.Request.Context(), &client); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, client)
}

// Update is a full-record overwrite: the submitted cars list replaces the
// stored one.
func (h *ClientHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	existing, err := h.clients.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if existing == nil {
		httperr.NotFoundStatus(c, "client_not_found", "no such client")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	existing.Name = req.Name
	existing.Surname = req.Surname
	existing.Birthdate = req.Birthdate
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Note = req.Note
	existing.Cars = req.Cars

	if err := h.clients.Update(c.Request.Context(), existing); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, existing)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.clients.Delete(c.Request.Context(), shopID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
