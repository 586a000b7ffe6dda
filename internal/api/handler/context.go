package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/middleware"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authenticate middleware.
// Handlers behind a mandatory gate call this; a nil principal there means the
// route was wired without the gate, which is a server bug, not a client error.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return p, nil
}

// bindAndValidate decodes the request body into req and runs struct
// validation. Malformed JSON is a 400; a well-formed body that fails
// validation rules is a 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
