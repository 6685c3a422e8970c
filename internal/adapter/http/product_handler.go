package http

import (
	"net/http"
	"strconv"

	"loanmarket-backend/internal/adapter/middleware"
	productDomain "loanmarket-backend/internal/domain/product"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct{ uc *catalog.Usecase }

func NewProductHandler(uc *catalog.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type createProductReq struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
	Documents    string  `json:"documents"`
	Image        string  `json:"image"`
	Limit        float64 `json:"limit" validate:"gt=0"`
	EMI          string  `json:"emi"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	// Creator snapshot comes from the resolved caller, not the body.
	usr, _ := c.Get("user").(*userDomain.User)
	in := catalog.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		InterestRate: req.InterestRate,
		Documents:    req.Documents,
		Image:        req.Image,
		Limit:        req.Limit,
		EMI:          req.EMI,
		ManagerEmail: middleware.CallerEmail(c),
	}
	if usr != nil {
		in.ManagerName = usr.Name
		in.ManagerImage = usr.Image
	}

	p, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) ListAvailable(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	list, err := h.uc.ListAvailable(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ProductHandler) ListAll(c echo.Context) error {
	list, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type updateProductReq struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	InterestRate *float64 `json:"interestRate"`
	Documents    *string  `json:"documents"`
	Image        *string  `json:"image"`
	Limit        *float64 `json:"limit"`
	EMI          *string  `json:"emi"`
}

// Update has partial-patch semantics: absent fields stay as stored.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), productDomain.Patch{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		InterestRate: req.InterestRate,
		Documents:    req.Documents,
		Image:        req.Image,
		Limit:        req.Limit,
		EMI:          req.EMI,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type toggleAvailabilityReq struct {
	Availability string `json:"availability" validate:"required,availability"`
}

func (h *ProductHandler) ToggleAvailability(c echo.Context) error {
	var req toggleAvailabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.ToggleAvailability(c.Request().Context(), c.Param("id"), req.Availability)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
