package http

import (
	"net/http"

	"loanmarket-backend/internal/usecase/lifecycle"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *lifecycle.Usecase }

func NewPaymentHandler(uc *lifecycle.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createCheckoutReq struct {
	// loanId is the application id being paid for, kept under its
	// historical wire name.
	LoanID        string `json:"loanId" validate:"required,hex32"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
}

// CreateCheckoutSession backs POST /create-checkout-session and returns
// the provider redirect URL. Nothing is written to the application here.
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req createCheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	sess, err := h.uc.InitiateFeePayment(c.Request().Context(), req.LoanID, req.CustomerEmail)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"url": sess.URL, "sessionId": sess.ID})
}

type payFeeReq struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

// PayFee backs PATCH /apply-loans/:id/pay-fee: flips the fee axis to Paid
// with the provider's payment reference.
func (h *PaymentHandler) PayFee(c echo.Context) error {
	var req payFeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.ConfirmFeePayment(c.Request().Context(), c.Param("id"), req.PaymentID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// PaymentDetails proxies the provider's session lookup.
func (h *PaymentHandler) PaymentDetails(c echo.Context) error {
	sess, err := h.uc.PaymentDetails(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}
