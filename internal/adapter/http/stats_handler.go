package http

import (
	"net/http"

	"loanmarket-backend/internal/adapter/middleware"
	"loanmarket-backend/internal/usecase/stats"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct{ uc *stats.Usecase }

func NewStatsHandler(uc *stats.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

func (h *StatsHandler) Admin(c echo.Context) error {
	out, err := h.uc.Admin(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) Manager(c echo.Context) error {
	out, err := h.uc.Manager(c.Request().Context(), middleware.CallerEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) Borrower(c echo.Context) error {
	out, err := h.uc.Borrower(c.Request().Context(), middleware.CallerEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
