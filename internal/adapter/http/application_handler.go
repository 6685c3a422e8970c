package http

import (
	"net/http"
	"strings"

	"loanmarket-backend/internal/adapter/middleware"
	appDomain "loanmarket-backend/internal/domain/application"
	"loanmarket-backend/internal/usecase/lifecycle"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *lifecycle.Usecase }

func NewApplicationHandler(uc *lifecycle.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	LoanID        string  `json:"loanId" validate:"required,hex32"`
	FirstName     string  `json:"firstName" validate:"required"`
	LastName      string  `json:"lastName" validate:"required"`
	ContactNumber string  `json:"contactNumber" validate:"required"`
	NIDOrPassport string  `json:"nidOrPassport" validate:"required"`
	IncomeSource  string  `json:"incomeSource" validate:"required"`
	MonthlyIncome float64 `json:"monthlyIncome" validate:"gt=0"`
	LoanAmount    float64 `json:"loanAmount" validate:"gt=0"`
	ReasonForLoan string  `json:"reasonForLoan" validate:"required"`
	Address       string  `json:"address" validate:"required"`
}

// Submit backs POST /apply-loans. The applicant is the authenticated
// caller; the body never chooses whose application this is.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.Submit(c.Request().Context(), lifecycle.SubmitInput{
		ProductID:     req.LoanID,
		UserEmail:     middleware.CallerEmail(c),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		NIDOrPassport: req.NIDOrPassport,
		IncomeSource:  req.IncomeSource,
		MonthlyIncome: req.MonthlyIncome,
		LoanAmount:    req.LoanAmount,
		ReasonForLoan: req.ReasonForLoan,
		Address:       req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// ListOwn backs GET /apply-loans/user/:email; the path email must match
// the caller.
func (h *ApplicationHandler) ListOwn(c echo.Context) error {
	email := strings.ToLower(c.Param("email"))
	if email != middleware.CallerEmail(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "may only list own applications"})
	}
	list, err := h.uc.ListByUser(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	a, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) ListAll(c echo.Context) error {
	list, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) ListPending(c echo.Context) error {
	list, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type decideReq struct {
	Status string `json:"status" validate:"required,decision"`
}

// Decide backs PATCH /apply-loans/:id (manager only, enforced upstream).
func (h *ApplicationHandler) Decide(c echo.Context) error {
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.Decide(c.Request().Context(), c.Param("id"), appDomain.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Cancel backs DELETE /apply-loans/:id; ownership is checked in the
// usecase against the caller's email.
func (h *ApplicationHandler) Cancel(c echo.Context) error {
	err := h.uc.Cancel(c.Request().Context(), c.Param("id"), middleware.CallerEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"cancelled": true})
}

func (h *ApplicationHandler) ListApproved(c echo.Context) error {
	list, err := h.uc.ListApproved(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) GetApproved(c echo.Context) error {
	rec, err := h.uc.GetApproved(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// RevokeApproval backs DELETE /approved-loans/:id. It drops only the
// archive record; the source application keeps its Approved status.
func (h *ApplicationHandler) RevokeApproval(c echo.Context) error {
	if err := h.uc.RevokeApproval(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"revoked": true})
}
