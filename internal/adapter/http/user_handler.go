package http

import (
	"net/http"
	"time"

	"loanmarket-backend/internal/adapter/middleware"
	"loanmarket-backend/internal/usecase/registry"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *registry.Usecase }

func NewUserHandler(uc *registry.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerUserReq struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Role  string `json:"role" validate:"role"`
}

// RegisterOrTouch backs POST /user: create on first sign-in, refresh
// last_logged_in on return visits.
func (h *UserHandler) RegisterOrTouch(c echo.Context) error {
	var req registerUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	usr, err := h.uc.RegisterOrTouch(c.Request().Context(), registry.RegisterInput{
		Email: req.Email, Name: req.Name, Image: req.Image, Role: req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

// OwnRole backs GET /user/role for the authenticated caller.
func (h *UserHandler) OwnRole(c echo.Context) error {
	role, err := h.uc.Role(c.Request().Context(), middleware.CallerEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"role": role})
}

func (h *UserHandler) GetByEmail(c echo.Context) error {
	usr, err := h.uc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

type setRoleReq struct {
	Role string `json:"role" validate:"required,role"`
}

func (h *UserHandler) SetRole(c echo.Context) error {
	var req setRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	usr, err := h.uc.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

type suspendReq struct {
	Reason      string    `json:"reason" validate:"required"`
	Feedback    string    `json:"feedback"`
	SuspendedAt time.Time `json:"suspendedAt"`
}

func (h *UserHandler) Suspend(c echo.Context) error {
	var req suspendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	usr, err := h.uc.Suspend(c.Request().Context(), c.Param("id"), registry.SuspendInput{
		Reason: req.Reason, Feedback: req.Feedback, SuspendedAt: req.SuspendedAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

// Reconcile backs POST /user/reconcile/:email — recomputes the counter
// cache from the applications table.
func (h *UserHandler) Reconcile(c echo.Context) error {
	usr, err := h.uc.Reconcile(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}
