package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/middleware"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// CertificationHandler handles HTTP requests for certifications.
type CertificationHandler struct {
	service ports.CertificationService
}

func NewCertificationHandler(service ports.CertificationService) *CertificationHandler {
	return &CertificationHandler{service: service}
}

type certificationRequest struct {
	Title         string `json:"title" validate:"required"`
	TitleEn       string `json:"title_en"`
	Issuer        string `json:"issuer" validate:"required"`
	IssueDate     string `json:"issue_date"`
	CredentialID  string `json:"credential_id"`
	CredentialURL string `json:"credential_url"`
	DisplayOrder  int    `json:"display_order"`
	IsActive      bool   `json:"is_active"`
}

func (r certificationRequest) toInput() ports.CertificationInput {
	return ports.CertificationInput{
		Title:         r.Title,
		TitleEn:       r.TitleEn,
		Issuer:        r.Issuer,
		IssueDate:     r.IssueDate,
		CredentialID:  r.CredentialID,
		CredentialURL: r.CredentialURL,
		DisplayOrder:  r.DisplayOrder,
		IsActive:      r.IsActive,
	}
}

// List returns certifications visible to the caller.
//
// @Summary      List certifications
// @Tags         certifications
// @Produce      json
// @Success      200  {array}  domain.Certification
// @Router       /api/certifications [get]
func (h *CertificationHandler) List(c echo.Context) error {
	certifications, err := h.service.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certifications)
}

// Get returns a single certification by id.
//
// @Summary      Get a certification
// @Tags         certifications
// @Produce      json
// @Param        id   path      string  true  "Certification id"
// @Success      200  {object}  domain.Certification
// @Failure      404  {object}  map[string]string
// @Router       /api/certifications/{id} [get]
func (h *CertificationHandler) Get(c echo.Context) error {
	certification, err := h.service.Get(c.Request().Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certification)
}

// Create adds a new certification. Admin only.
//
// @Summary      Create a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      certificationRequest  true  "Certification details"
// @Success      201   {object}  domain.Certification
// @Failure      422   {object}  map[string]string
// @Router       /api/certifications [post]
func (h *CertificationHandler) Create(c echo.Context) error {
	var req certificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	certification, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, certification)
}

// Update replaces a certification document. Admin only.
//
// @Summary      Update a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Certification id"
// @Param        body  body      certificationRequest  true  "Certification details"
// @Success      200   {object}  domain.Certification
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/certifications/{id} [put]
func (h *CertificationHandler) Update(c echo.Context) error {
	var req certificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	certification, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certification)
}

// Delete removes a certification. Admin only.
//
// @Summary      Delete a certification
// @Tags         certifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Certification id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/certifications/{id} [delete]
func (h *CertificationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
