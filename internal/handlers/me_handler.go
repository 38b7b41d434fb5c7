package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/httpresp"
	"github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
)

type MeHandler struct {
	users *repository.UserTreeRepository
}

func NewMeHandler(users *repository.UserTreeRepository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if user == nil {
		httperr.NotFoundStatus(c, "user_not_found", "account no longer exists")
		return
	}

	httpresp.OK(c, user)
}

type UpdateMeRequest struct {
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if user == nil {
		httperr.NotFoundStatus(c, "user_not_found", "account no longer exists")
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}

// DeleteMe removes the account record only; owned collections are not
// cascaded.
func (h *MeHandler) DeleteMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.users.Delete(c.Request.Context(), userID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
