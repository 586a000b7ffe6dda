package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/metrics"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message" validate:"required"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// Submit accepts a contact form submission. Public, no authentication.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      422   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:        req.Name,
		Email:       req.Email,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// List returns inbox messages, newest first. Admin only. The archived query
// parameter selects the archive view; anything but "true" means the inbox.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        archived  query  bool  false  "List archived messages instead of the inbox"
// @Success      200  {array}  domain.ContactMessage
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	archived, _ := strconv.ParseBool(c.QueryParam("archived"))

	messages, err := h.service.List(c.Request().Context(), archived)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Get returns a single message. Admin only.
//
// @Summary      Get a contact message
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  domain.ContactMessage
// @Failure      404  {object}  map[string]string
// @Router       /api/contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	msg, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// MarkRead flags a message as read. Admin only.
//
// @Summary      Mark a message as read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  domain.ContactMessage
// @Failure      404  {object}  map[string]string
// @Router       /api/contact/{id}/read [put]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	msg, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

type archiveRequest struct {
	Archived bool `json:"archived"`
}

// SetArchived moves a message in or out of the archive. Admin only.
//
// @Summary      Archive or unarchive a message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Message id"
// @Param        body  body      archiveRequest  true  "Archive flag"
// @Success      200   {object}  domain.ContactMessage
// @Failure      404   {object}  map[string]string
// @Router       /api/contact/{id}/archive [put]
func (h *ContactHandler) SetArchived(c echo.Context) error {
	var req archiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	msg, err := h.service.SetArchived(c.Request().Context(), c.Param("id"), req.Archived)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// UnreadCount returns the number of unread inbox messages. Admin only.
//
// @Summary      Count unread messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Router       /api/contact/unread-count [get]
func (h *ContactHandler) UnreadCount(c echo.Context) error {
	count, err := h.service.UnreadCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}
